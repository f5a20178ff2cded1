package handler

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"odyssey-voice/internal/service"
)

func (h *Handler) search(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	target := options(i)["user"].UserValue(s)

	result, outcome, _ := h.svc.Lookup(ctx, i.GuildID, i.Member.User.ID, target.ID)
	switch outcome {
	case service.OutcomeOK:
		respond(s, i, fmt.Sprintf("**%s** is in **%s** (<#%s>), %d connected.",
			target.Username, result.ChannelName, result.ChannelID, result.Occupancy))
	case service.OutcomeNotFound:
		respond(s, i, fmt.Sprintf("**%s** is not connected to any voice channel.", target.Username))
	case service.OutcomeForbidden:
		// no channel identity leaks to a requester that cannot see it
		respond(s, i, fmt.Sprintf("**%s** is connected to a private channel you do not have access to.", target.Username))
	default:
		respond(s, i, defaultMessage(outcome))
	}
}

const helpText = "**Temporary voice channels**\n" +
	"Join a spawn channel and a channel of your own is created for you. " +
	"It is deleted shortly after the last member leaves.\n\n" +
	"**Channel commands** (run while connected to a temporary channel)\n" +
	"`/claim` take ownership of an unowned channel\n" +
	"`/transfer` hand your channel to another member\n" +
	"`/rename` rename your channel\n" +
	"`/private` / `/public` toggle who may join\n" +
	"`/add_user` / `/remove_user` manage the whitelist of a private channel\n" +
	"`/ban` / `/unban` keep a member out of your channel\n" +
	"`/kick` / `/mute` / `/unmute` / `/deafen` / `/undeafen` moderate members\n" +
	"`/menu` buttons for the most common of the above\n\n" +
	"**Other**\n" +
	"`/search` find which voice channel a member is in\n\n" +
	"**Admin**\n" +
	"`/register_base_channel`, `/create_base_channel`, `/rename_base_channel`, " +
	"`/delete_base_channel`, `/create_temp_channel`, `/admin_role`, `/active_channels`"

func (h *Handler) help(_ context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	respond(s, i, helpText)
}
