package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"odyssey-voice/internal/logger"
	"odyssey-voice/internal/metrics"
	"odyssey-voice/internal/models"
)

// Claim makes userID the recorded owner of the voice channel they are
// connected to. An untracked channel is adopted with the claimant as owner.
//
// The transition is a compare-and-set: of two racing claims exactly one
// succeeds, the other observes OutcomeConflict.
func (s *Service) Claim(ctx context.Context, guildID, channelID, userID string) (Outcome, error) {
	loc, err := s.platform.CurrentLocation(ctx, guildID, userID)
	if err != nil {
		return OutcomeExternalFailure, fmt.Errorf("resolving voice state: %w", err)
	}
	if loc != channelID {
		return OutcomeForbidden, nil
	}

	member, err := s.platform.Member(ctx, guildID, userID)
	if err != nil {
		return OutcomeExternalFailure, fmt.Errorf("fetching member: %w", err)
	}

	rows, err := s.channels.ClaimIfUnowned(channelID, userID, member.Username)
	if err != nil {
		return OutcomeExternalFailure, err
	}
	if rows > 0 {
		logger.Infof("claim: %s now owns %s", userID, channelID)
		return OutcomeOK, nil
	}

	// No unclaimed row matched: the channel is untracked, already ours, or
	// claimed by somebody else.
	existing, err := s.channels.Get(channelID)
	if err != nil {
		return OutcomeExternalFailure, err
	}
	if existing == nil {
		return s.adoptUntracked(guildID, channelID, userID, member.Username)
	}
	if existing.OwnedBy(userID) {
		return OutcomeAlreadyInState, nil
	}
	metrics.ClaimConflicts.Inc()
	return OutcomeConflict, nil
}

// adoptUntracked inserts a record for a channel the bot never spawned. The
// channel id primary key arbitrates a race between two adopting claims.
func (s *Service) adoptUntracked(guildID, channelID, userID, userName string) (Outcome, error) {
	record := &models.TempChannel{
		ChannelID: channelID,
		GuildID:   guildID,
		OwnerID:   &userID,
		OwnerName: &userName,
		Name:      userName,
	}
	err := s.channels.Create(record)
	if err == nil {
		logger.Infof("claim: %s adopted untracked channel %s", userID, channelID)
		return OutcomeOK, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return OutcomeExternalFailure, err
	}

	// Lost the insert race; classify against the winner's row.
	existing, err := s.channels.Get(channelID)
	if err != nil {
		return OutcomeExternalFailure, err
	}
	if existing != nil && existing.OwnedBy(userID) {
		return OutcomeAlreadyInState, nil
	}
	metrics.ClaimConflicts.Inc()
	return OutcomeConflict, nil
}

// Transfer hands ownership of channelID from fromID to toID and rewrites the
// owner permission overwrites on the platform.
func (s *Service) Transfer(ctx context.Context, guildID, channelID, fromID, toID string) (Outcome, error) {
	newOwner, err := s.platform.Member(ctx, guildID, toID)
	if err != nil {
		return OutcomeExternalFailure, fmt.Errorf("fetching new owner: %w", err)
	}

	rows, err := s.channels.TransferOwner(channelID, fromID, toID, newOwner.Username)
	if err != nil {
		return OutcomeExternalFailure, err
	}
	if rows == 0 {
		existing, err := s.channels.Get(channelID)
		if err != nil {
			return OutcomeExternalFailure, err
		}
		if existing == nil {
			return OutcomeNotFound, nil
		}
		return OutcomeForbidden, nil
	}

	// Overwrite edits are idempotent full rewrites; on failure they are not
	// retried here, the next explicit owner action re-applies them.
	if err := s.platform.GrantOwnerPermissions(ctx, channelID, toID); err != nil {
		logger.Warningf("transfer: granting owner permissions to %s on %s failed: %v", toID, channelID, err)
		return OutcomeExternalFailure, err
	}
	if err := s.platform.RevokeMemberOverwrite(ctx, channelID, fromID); err != nil {
		logger.Warningf("transfer: revoking overwrite for %s on %s failed: %v", fromID, channelID, err)
		return OutcomeExternalFailure, err
	}

	logger.Infof("transfer: channel %s owner %s -> %s", channelID, fromID, toID)
	return OutcomeOK, nil
}

// Rename changes the display name of an owned temporary channel, on the
// platform first and in the store second.
func (s *Service) Rename(ctx context.Context, channelID, requesterID, name string) (Outcome, error) {
	channel, err := s.channels.Get(channelID)
	if err != nil {
		return OutcomeExternalFailure, err
	}
	if channel == nil {
		return OutcomeNotFound, nil
	}
	if !channel.OwnedBy(requesterID) {
		return OutcomeForbidden, nil
	}

	if err := s.platform.RenameChannel(ctx, channelID, name); err != nil {
		return OutcomeExternalFailure, fmt.Errorf("renaming channel: %w", err)
	}
	if _, err := s.channels.UpdateName(channelID, name); err != nil {
		return OutcomeExternalFailure, err
	}
	return OutcomeOK, nil
}
