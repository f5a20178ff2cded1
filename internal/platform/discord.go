package platform

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const ownerPermissions = discordgo.PermissionVoiceConnect |
	discordgo.PermissionVoiceMuteMembers |
	discordgo.PermissionVoiceDeafenMembers |
	discordgo.PermissionVoiceMoveMembers

const accessPermissions = discordgo.PermissionVoiceConnect |
	discordgo.PermissionViewChannel

// Discord implements Platform on top of a discordgo session.
type Discord struct {
	session *discordgo.Session
}

// NewDiscord wraps an established discordgo session
func NewDiscord(session *discordgo.Session) *Discord {
	return &Discord{session: session}
}

func (d *Discord) CreateVoiceChannel(ctx context.Context, create ChannelCreate) (string, error) {
	data := discordgo.GuildChannelCreateData{
		Name:      create.Name,
		Type:      discordgo.ChannelTypeGuildVoice,
		UserLimit: create.UserLimit,
		ParentID:  create.CategoryID,
	}
	if create.Private {
		data.PermissionOverwrites = []*discordgo.PermissionOverwrite{
			{
				ID:   create.GuildID, // @everyone role id equals the guild id
				Type: discordgo.PermissionOverwriteTypeRole,
				Deny: accessPermissions,
			},
			{
				ID:    create.OwnerID,
				Type:  discordgo.PermissionOverwriteTypeMember,
				Allow: accessPermissions,
			},
		}
	}

	channel, err := d.session.GuildChannelCreateComplex(create.GuildID, data, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("create voice channel: %w", err)
	}
	return channel.ID, nil
}

func (d *Discord) DeleteChannel(ctx context.Context, channelID string) error {
	_, err := d.session.ChannelDelete(channelID, discordgo.WithContext(ctx))
	return err
}

func (d *Discord) ChannelExists(ctx context.Context, guildID, channelID string) (bool, error) {
	if _, err := d.session.State.Channel(channelID); err == nil {
		return true, nil
	}
	channel, err := d.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		if restErr, ok := err.(*discordgo.RESTError); ok && restErr.Response != nil && restErr.Response.StatusCode == 404 {
			return false, nil
		}
		return false, err
	}
	return channel.GuildID == guildID, nil
}

func (d *Discord) RenameChannel(ctx context.Context, channelID, name string) error {
	_, err := d.session.ChannelEdit(channelID, &discordgo.ChannelEdit{Name: name}, discordgo.WithContext(ctx))
	return err
}

func (d *Discord) Occupancy(ctx context.Context, guildID, channelID string) (int, error) {
	guild, err := d.session.State.Guild(guildID)
	if err != nil {
		return 0, fmt.Errorf("guild %s not in state: %w", guildID, err)
	}

	d.session.State.RLock()
	defer d.session.State.RUnlock()

	count := 0
	for _, vs := range guild.VoiceStates {
		if vs.ChannelID == channelID {
			count++
		}
	}
	return count, nil
}

func (d *Discord) CurrentLocation(ctx context.Context, guildID, userID string) (string, error) {
	vs, err := d.session.State.VoiceState(guildID, userID)
	if err != nil {
		if err == discordgo.ErrStateNotFound {
			return "", nil
		}
		return "", err
	}
	return vs.ChannelID, nil
}

func (d *Discord) MoveMember(ctx context.Context, guildID, userID, channelID string) error {
	return d.session.GuildMemberMove(guildID, userID, &channelID, discordgo.WithContext(ctx))
}

func (d *Discord) Disconnect(ctx context.Context, guildID, userID string) error {
	return d.session.GuildMemberMove(guildID, userID, nil, discordgo.WithContext(ctx))
}

func (d *Discord) SetMute(ctx context.Context, guildID, userID string, mute bool) error {
	return d.session.GuildMemberMute(guildID, userID, mute, discordgo.WithContext(ctx))
}

func (d *Discord) SetDeaf(ctx context.Context, guildID, userID string, deaf bool) error {
	return d.session.GuildMemberDeafen(guildID, userID, deaf, discordgo.WithContext(ctx))
}

func (d *Discord) SetEveryoneAccess(ctx context.Context, guildID, channelID string, allow bool) error {
	if allow {
		return d.session.ChannelPermissionSet(channelID, guildID,
			discordgo.PermissionOverwriteTypeRole, accessPermissions, 0, discordgo.WithContext(ctx))
	}
	return d.session.ChannelPermissionSet(channelID, guildID,
		discordgo.PermissionOverwriteTypeRole, 0, accessPermissions, discordgo.WithContext(ctx))
}

func (d *Discord) GrantMemberAccess(ctx context.Context, channelID, userID string) error {
	return d.session.ChannelPermissionSet(channelID, userID,
		discordgo.PermissionOverwriteTypeMember, accessPermissions, 0, discordgo.WithContext(ctx))
}

func (d *Discord) GrantOwnerPermissions(ctx context.Context, channelID, userID string) error {
	return d.session.ChannelPermissionSet(channelID, userID,
		discordgo.PermissionOverwriteTypeMember, ownerPermissions, 0, discordgo.WithContext(ctx))
}

func (d *Discord) RevokeMemberOverwrite(ctx context.Context, channelID, userID string) error {
	return d.session.ChannelPermissionDelete(channelID, userID, discordgo.WithContext(ctx))
}

func (d *Discord) CanView(ctx context.Context, channelID, userID string) (bool, error) {
	perms, err := d.session.UserChannelPermissions(userID, channelID)
	if err != nil {
		return false, err
	}
	return perms&discordgo.PermissionViewChannel != 0, nil
}

func (d *Discord) Member(ctx context.Context, guildID, userID string) (*Member, error) {
	member, err := d.session.State.Member(guildID, userID)
	if err != nil {
		member, err = d.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
		if err != nil {
			return nil, err
		}
	}

	name := member.User.Username
	if member.Nick != "" {
		name = member.Nick
	}

	return &Member{
		ID:       userID,
		Username: name,
		IsAdmin:  d.isAdmin(guildID, userID, member.Roles),
		RoleIDs:  member.Roles,
	}, nil
}

// isAdmin reports whether the member owns the guild or holds a role carrying
// the Administrator permission.
func (d *Discord) isAdmin(guildID, userID string, roleIDs []string) bool {
	guild, err := d.session.State.Guild(guildID)
	if err != nil {
		return false
	}
	if guild.OwnerID == userID {
		return true
	}
	for _, role := range guild.Roles {
		for _, held := range roleIDs {
			if role.ID == held && role.Permissions&discordgo.PermissionAdministrator != 0 {
				return true
			}
		}
	}
	return false
}

func (d *Discord) NotifyMember(ctx context.Context, userID, message string) error {
	channel, err := d.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return err
	}
	_, err = d.session.ChannelMessageSend(channel.ID, message, discordgo.WithContext(ctx))
	return err
}

// SubstituteName expands a base channel's name pattern for a member. A
// pattern containing "{user}" has it replaced with the member's display name;
// otherwise the channel is simply named after the member.
func SubstituteName(pattern, username string) string {
	if strings.Contains(pattern, "{user}") {
		return strings.ReplaceAll(pattern, "{user}", username)
	}
	return username
}
