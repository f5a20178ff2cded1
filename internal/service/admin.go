package service

import (
	"context"
	"fmt"

	"odyssey-voice/internal/logger"
	"odyssey-voice/internal/models"
	"odyssey-voice/internal/platform"
)

// RegisterBaseChannel registers an existing voice channel as a spawn point.
// Spawned channels are created under categoryID, normally the base channel's
// own parent. Re-registration updates the stored template.
func (s *Service) RegisterBaseChannel(ctx context.Context, guildID, requesterID, channelID, namePattern, categoryID string, limit int) (Outcome, error) {
	if outcome, err := s.requireAdmin(ctx, guildID, requesterID); outcome != OutcomeOK {
		return outcome, err
	}

	base := &models.BaseChannel{
		ChannelID:   channelID,
		GuildID:     guildID,
		NamePattern: namePattern,
		CategoryID:  categoryID,
		UserLimit:   limit,
	}
	if err := s.bases.Upsert(base); err != nil {
		return OutcomeExternalFailure, err
	}
	logger.Infof("admin: base channel %s registered in %s (limit %d)", channelID, guildID, limit)
	return OutcomeOK, nil
}

// CreateBaseChannel creates a new voice channel and registers it as a spawn
// point in one step. The limit is stored for spawned channels and not
// applied to the base channel itself.
func (s *Service) CreateBaseChannel(ctx context.Context, guildID, requesterID, name string, limit int) (string, Outcome, error) {
	if outcome, err := s.requireAdmin(ctx, guildID, requesterID); outcome != OutcomeOK {
		return "", outcome, err
	}

	channelID, err := s.platform.CreateVoiceChannel(ctx, platform.ChannelCreate{
		GuildID: guildID,
		Name:    name,
	})
	if err != nil {
		return "", OutcomeExternalFailure, fmt.Errorf("creating base channel: %w", err)
	}

	base := &models.BaseChannel{
		ChannelID:   channelID,
		GuildID:     guildID,
		NamePattern: name,
		UserLimit:   limit,
	}
	if err := s.bases.Upsert(base); err != nil {
		// Channel exists but is unregistered; the sweep ignores it, the
		// admin can re-run register_base_channel.
		return channelID, OutcomeExternalFailure, err
	}
	return channelID, OutcomeOK, nil
}

// RenameBaseChannel renames the spawn point on the platform and updates the
// stored pattern; a platform failure aborts before the store write.
func (s *Service) RenameBaseChannel(ctx context.Context, guildID, requesterID, channelID, name string) (Outcome, error) {
	if outcome, err := s.requireAdmin(ctx, guildID, requesterID); outcome != OutcomeOK {
		return outcome, err
	}

	base, err := s.bases.Get(channelID)
	if err != nil {
		return OutcomeExternalFailure, err
	}
	if base == nil {
		return OutcomeNotFound, nil
	}

	if err := s.platform.RenameChannel(ctx, channelID, name); err != nil {
		return OutcomeExternalFailure, fmt.Errorf("renaming base channel: %w", err)
	}
	if _, err := s.bases.UpdateName(channelID, name); err != nil {
		return OutcomeExternalFailure, err
	}
	return OutcomeOK, nil
}

// DeleteBaseChannel unregisters the spawn point and best-effort deletes the
// platform channel.
func (s *Service) DeleteBaseChannel(ctx context.Context, guildID, requesterID, channelID string) (Outcome, error) {
	if outcome, err := s.requireAdmin(ctx, guildID, requesterID); outcome != OutcomeOK {
		return outcome, err
	}

	if err := s.bases.Delete(channelID); err != nil {
		return OutcomeExternalFailure, err
	}
	if err := s.platform.DeleteChannel(ctx, channelID); err != nil {
		logger.Warningf("admin: deleting base channel %s failed: %v", channelID, err)
	}
	return OutcomeOK, nil
}

// SetAdminRole grants or revokes a role's admin privileges. Only members
// with the platform Administrator permission may change the grant set.
func (s *Service) SetAdminRole(ctx context.Context, guildID, requesterID, roleID string, grant bool) (Outcome, error) {
	member, err := s.platform.Member(ctx, guildID, requesterID)
	if err != nil {
		return OutcomeExternalFailure, fmt.Errorf("fetching requester: %w", err)
	}
	if !member.IsAdmin {
		return OutcomeForbidden, nil
	}

	if grant {
		if err := s.adminRoles.Add(guildID, roleID); err != nil {
			return OutcomeExternalFailure, err
		}
		return OutcomeOK, nil
	}

	rows, err := s.adminRoles.Remove(guildID, roleID)
	if err != nil {
		return OutcomeExternalFailure, err
	}
	if rows == 0 {
		return OutcomeAlreadyInState, nil
	}
	return OutcomeOK, nil
}

// ActiveChannel pairs a tracked channel with its live occupancy.
type ActiveChannel struct {
	Channel   *models.TempChannel
	Occupancy int
}

// ListActiveChannels returns all tracked channels in the guild with their
// occupancy. Admin-gated.
func (s *Service) ListActiveChannels(ctx context.Context, guildID, requesterID string) ([]ActiveChannel, Outcome, error) {
	if outcome, err := s.requireAdmin(ctx, guildID, requesterID); outcome != OutcomeOK {
		return nil, outcome, err
	}

	channels, err := s.channels.ListByGuild(guildID)
	if err != nil {
		return nil, OutcomeExternalFailure, err
	}

	active := make([]ActiveChannel, 0, len(channels))
	for _, channel := range channels {
		occupancy, err := s.platform.Occupancy(ctx, guildID, channel.ChannelID)
		if err != nil {
			logger.Warningf("admin: occupancy of %s failed: %v", channel.ChannelID, err)
			continue
		}
		active = append(active, ActiveChannel{Channel: channel, Occupancy: occupancy})
	}
	return active, OutcomeOK, nil
}

// CreateTempChannel creates a user-requested temporary channel, owned by the
// requester from birth and optionally private. The requester is not moved
// into it.
func (s *Service) CreateTempChannel(ctx context.Context, guildID, requesterID, name string, limit int, private bool) (string, Outcome, error) {
	member, err := s.platform.Member(ctx, guildID, requesterID)
	if err != nil {
		return "", OutcomeExternalFailure, fmt.Errorf("fetching requester: %w", err)
	}

	channelID, err := s.platform.CreateVoiceChannel(ctx, platform.ChannelCreate{
		GuildID:   guildID,
		Name:      name,
		UserLimit: limit,
		Private:   private,
		OwnerID:   requesterID,
	})
	if err != nil {
		return "", OutcomeExternalFailure, fmt.Errorf("creating channel: %w", err)
	}

	record := &models.TempChannel{
		ChannelID: channelID,
		GuildID:   guildID,
		OwnerID:   &requesterID,
		OwnerName: &member.Username,
		Name:      name,
		UserLimit: limit,
		Private:   private,
	}
	if err := s.channels.Create(record); err != nil {
		// Untracked but empty; the sweep removes it.
		return channelID, OutcomeExternalFailure, err
	}
	logger.Infof("channel: %s created custom channel %s (private=%v)", requesterID, channelID, private)
	return channelID, OutcomeOK, nil
}

// requireAdmin gates administrative operations on the Administrator
// permission or a configured admin role.
func (s *Service) requireAdmin(ctx context.Context, guildID, requesterID string) (Outcome, error) {
	exempt, err := s.isAdminExempt(ctx, guildID, requesterID)
	if err != nil {
		return OutcomeExternalFailure, err
	}
	if !exempt {
		return OutcomeForbidden, nil
	}
	return OutcomeOK, nil
}
