package handler

import "github.com/bwmarrin/discordgo"

// Commands is the full slash-command set registered per guild.
func Commands() []*discordgo.ApplicationCommand {
	userOption := func(desc string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: desc,
			Required:    true,
		}
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "register_base_channel",
			Description: "Registers an existing voice channel as a base for temporary ones.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionChannel,
					Name:         "channel",
					Description:  "The existing voice channel to register as base",
					ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildVoice},
					Required:     true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "limit",
					Description: "User limit applied to spawned channels",
					Required:    true,
				},
			},
		},
		{
			Name:        "create_base_channel",
			Description: "Creates a new base voice channel used to generate temporary ones.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Name of the base channel to create",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "limit",
					Description: "User limit applied to spawned channels",
					Required:    true,
				},
			},
		},
		{
			Name:        "rename_base_channel",
			Description: "Renames an existing base channel.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionChannel,
					Name:         "channel",
					Description:  "The base channel to rename",
					ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildVoice},
					Required:     true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "New name for the channel",
					Required:    true,
				},
			},
		},
		{
			Name:        "delete_base_channel",
			Description: "Deletes a base voice channel used to generate temporary ones.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionChannel,
					Name:         "channel",
					Description:  "The base channel you want to delete",
					ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildVoice},
					Required:     true,
				},
			},
		},
		{
			Name:        "admin_role",
			Description: "Adds or removes a role with administrative privileges for managing temp channels.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "role",
					Description: "The role to add or remove as admin",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "action",
					Description: "Action to perform",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "add", Value: "add"},
						{Name: "remove", Value: "remove"},
					},
				},
			},
		},
		{
			Name:        "active_channels",
			Description: "Displays a list of active temporary voice channels (admins only).",
		},
		{
			Name:        "create_temp_channel",
			Description: "Creates a temporary custom voice channel.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Name of the voice channel",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "limit",
					Description: "Maximum number of users",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "private",
					Description: "Should the channel be private?",
				},
			},
		},
		{
			Name:        "claim",
			Description: "Claims ownership of the voice channel you are currently connected to.",
		},
		{
			Name:        "transfer",
			Description: "Transfers ownership of your temporary voice channel to another user.",
			Options:     []*discordgo.ApplicationCommandOption{userOption("New owner of the channel")},
		},
		{
			Name:        "rename",
			Description: "Renames your claimed temporary voice channel.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "New name for the channel",
					Required:    true,
				},
			},
		},
		{
			Name:        "private",
			Description: "Converts your temporary voice channel to private.",
		},
		{
			Name:        "public",
			Description: "Converts your temporary voice channel to public.",
		},
		{
			Name:        "add_user",
			Description: "Adds a user to your private voice channel.",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User to allow in the channel")},
		},
		{
			Name:        "remove_user",
			Description: "Revokes a user's access to your private voice channel.",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User to remove from the channel")},
		},
		{
			Name:        "ban",
			Description: "Prevents a user from joining your temporary voice channel.",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User to block")},
		},
		{
			Name:        "unban",
			Description: "Lifts a user's ban from your temporary voice channel.",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User to unblock")},
		},
		{
			Name:        "kick",
			Description: "Kicks a user from your temporary voice channel.",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User to kick")},
		},
		{
			Name:        "mute",
			Description: "Mutes a user in your temporary voice channel.",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User you want to mute")},
		},
		{
			Name:        "unmute",
			Description: "Unmutes a user in your temporary voice channel.",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User you want to unmute")},
		},
		{
			Name:        "deafen",
			Description: "Deafens a user in your temporary voice channel.",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User you want to deafen")},
		},
		{
			Name:        "undeafen",
			Description: "Undeafens a user in your temporary voice channel.",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User you want to undeafen")},
		},
		{
			Name:        "search",
			Description: "Find out which voice channel a user is connected to.",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User you want to search for")},
		},
		{
			Name:        "menu",
			Description: "Shows buttons for managing the temporary channel you are in.",
		},
		{
			Name:        "help",
			Description: "Shows the temporary channel commands.",
		},
	}
}
