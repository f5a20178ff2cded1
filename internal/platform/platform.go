package platform

import "context"

// Member is the engine's view of a guild member.
type Member struct {
	ID       string
	Username string
	// IsAdmin is true when the member holds the platform's Administrator
	// permission in the guild.
	IsAdmin bool
	RoleIDs []string
}

// ChannelCreate describes a voice channel to create.
type ChannelCreate struct {
	GuildID    string
	Name       string
	CategoryID string
	UserLimit  int
	// Private creates the channel with connect/view denied for everyone and
	// an explicit allow for OwnerID.
	Private bool
	OwnerID string
}

// Platform is the capability surface the engine needs from the hosting
// real-time platform. Services depend only on this interface; the discordgo
// session is wrapped by Discord in this package.
type Platform interface {
	// CreateVoiceChannel creates a voice channel and returns its id.
	CreateVoiceChannel(ctx context.Context, create ChannelCreate) (string, error)
	// DeleteChannel removes the channel. Deleting an already-gone channel is
	// an error the caller may ignore.
	DeleteChannel(ctx context.Context, channelID string) error
	// ChannelExists reports whether the channel still exists in the guild.
	ChannelExists(ctx context.Context, guildID, channelID string) (bool, error)
	// RenameChannel changes a channel's display name.
	RenameChannel(ctx context.Context, channelID, name string) error

	// Occupancy returns the number of members currently connected to the
	// voice channel.
	Occupancy(ctx context.Context, guildID, channelID string) (int, error)
	// CurrentLocation returns the id of the voice channel the member is
	// connected to, or "" if they are not in voice.
	CurrentLocation(ctx context.Context, guildID, userID string) (string, error)

	// MoveMember relocates a connected member into the channel.
	MoveMember(ctx context.Context, guildID, userID, channelID string) error
	// Disconnect drops the member from voice entirely.
	Disconnect(ctx context.Context, guildID, userID string) error
	// SetMute server-mutes or unmutes the member.
	SetMute(ctx context.Context, guildID, userID string, mute bool) error
	// SetDeaf server-deafens or undeafens the member.
	SetDeaf(ctx context.Context, guildID, userID string, deaf bool) error

	// SetEveryoneAccess rewrites the channel's default policy: allow grants
	// connect/view to the general population, deny removes both.
	SetEveryoneAccess(ctx context.Context, guildID, channelID string, allow bool) error
	// GrantMemberAccess adds an explicit connect/view allow for the member.
	GrantMemberAccess(ctx context.Context, channelID, userID string) error
	// GrantOwnerPermissions gives a member the owner permission set
	// (connect, mute, deafen, move).
	GrantOwnerPermissions(ctx context.Context, channelID, userID string) error
	// RevokeMemberOverwrite deletes the member's explicit overwrite.
	RevokeMemberOverwrite(ctx context.Context, channelID, userID string) error
	// CanView reports whether the member may view the channel under its
	// current permission configuration.
	CanView(ctx context.Context, channelID, userID string) (bool, error)

	// Member fetches the member's profile and role set.
	Member(ctx context.Context, guildID, userID string) (*Member, error)
	// NotifyMember sends the member a direct message.
	NotifyMember(ctx context.Context, userID, message string) error
}
