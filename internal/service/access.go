package service

import (
	"context"
	"fmt"

	"odyssey-voice/internal/events"
	"odyssey-voice/internal/logger"
	"odyssey-voice/internal/metrics"
)

// SetPrivacy toggles a channel between public and private. Private denies
// connect/view for the general population and explicitly allows the owner;
// public restores the general allow. The platform policy is rewritten before
// the store flag so a platform failure leaves the record unchanged.
func (s *Service) SetPrivacy(ctx context.Context, guildID, channelID, requesterID string, private bool) (Outcome, error) {
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
	if channel.Private == private {
		return OutcomeAlreadyInState, nil
	}

	if err := s.platform.SetEveryoneAccess(ctx, guildID, channelID, !private); err != nil {
		return OutcomeExternalFailure, fmt.Errorf("rewriting default access: %w", err)
	}
	if private {
		if err := s.platform.GrantMemberAccess(ctx, channelID, requesterID); err != nil {
			return OutcomeExternalFailure, fmt.Errorf("granting owner access: %w", err)
		}
	}

	if _, err := s.channels.SetPrivacy(channelID, private); err != nil {
		return OutcomeExternalFailure, err
	}
	logger.Infof("privacy: channel %s private=%v", channelID, private)
	return OutcomeOK, nil
}

// AddWhitelisted grants targetID access to the requester's private channel.
// Whitelisting requires the channel to currently be private; entries are
// durable but only pushed to the platform through this call.
func (s *Service) AddWhitelisted(ctx context.Context, channelID, requesterID, targetID string) (Outcome, error) {
	channel, err := s.channels.Get(channelID)
	if err != nil {
		return OutcomeExternalFailure, err
	}
	if channel == nil {
		return OutcomeNotFound, nil
	}
	if !channel.OwnedBy(requesterID) || !channel.Private {
		return OutcomeForbidden, nil
	}

	if err := s.whitelist.Add(channelID, targetID); err != nil {
		return OutcomeExternalFailure, err
	}
	if err := s.platform.GrantMemberAccess(ctx, channelID, targetID); err != nil {
		return OutcomeExternalFailure, fmt.Errorf("granting access: %w", err)
	}
	return OutcomeOK, nil
}

// RemoveWhitelisted revokes targetID's access to the requester's private
// channel.
func (s *Service) RemoveWhitelisted(ctx context.Context, channelID, requesterID, targetID string) (Outcome, error) {
	channel, err := s.channels.Get(channelID)
	if err != nil {
		return OutcomeExternalFailure, err
	}
	if channel == nil {
		return OutcomeNotFound, nil
	}
	if !channel.OwnedBy(requesterID) || !channel.Private {
		return OutcomeForbidden, nil
	}

	rows, err := s.whitelist.Remove(channelID, targetID)
	if err != nil {
		return OutcomeExternalFailure, err
	}
	if err := s.platform.RevokeMemberOverwrite(ctx, channelID, targetID); err != nil {
		logger.Warningf("whitelist: revoking overwrite for %s on %s failed: %v", targetID, channelID, err)
	}
	if rows == 0 {
		return OutcomeAlreadyInState, nil
	}
	return OutcomeOK, nil
}

// Ban blocks targetID from the requester's channel. Members holding the
// Administrator permission or an admin-role grant cannot be banned; that
// check rejects before any mutation. A present target is disconnected.
func (s *Service) Ban(ctx context.Context, guildID, channelID, requesterID, targetID string) (Outcome, error) {
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

	exempt, err := s.isAdminExempt(ctx, guildID, targetID)
	if err != nil {
		return OutcomeExternalFailure, err
	}
	if exempt {
		return OutcomeForbidden, nil
	}

	rows, err := s.bans.Add(channelID, targetID)
	if err != nil {
		return OutcomeExternalFailure, err
	}

	// Disconnect regardless of whether the row is new; the side effect is
	// idempotent and covers a previously banned member who slipped back in.
	loc, err := s.platform.CurrentLocation(ctx, guildID, targetID)
	if err != nil {
		logger.Warningf("ban: resolving voice state of %s failed: %v", targetID, err)
	} else if loc == channelID {
		if err := s.platform.Disconnect(ctx, guildID, targetID); err != nil {
			logger.Warningf("ban: disconnecting %s from %s failed: %v", targetID, channelID, err)
		}
	}

	if rows == 0 {
		return OutcomeAlreadyInState, nil
	}
	logger.Infof("ban: %s banned from %s by %s", targetID, channelID, requesterID)
	return OutcomeOK, nil
}

// Unban removes targetID's ban entry on the requester's channel.
func (s *Service) Unban(ctx context.Context, channelID, requesterID, targetID string) (Outcome, error) {
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

	rows, err := s.bans.Remove(channelID, targetID)
	if err != nil {
		return OutcomeExternalFailure, err
	}
	if rows == 0 {
		return OutcomeAlreadyInState, nil
	}
	return OutcomeOK, nil
}

// HandleGuardEntered is the join guard: every Entered transition is checked
// against the ban list, and a banned member is disconnected immediately and
// told why. Runs after the spawn engine on the same event.
func (s *Service) HandleGuardEntered(ctx context.Context, ev events.Event) {
	banned, err := s.bans.Exists(ev.ChannelID, ev.UserID)
	if err != nil {
		logger.Warningf("guard: ban lookup for %s on %s failed: %v", ev.UserID, ev.ChannelID, err)
		return
	}
	if !banned {
		return
	}

	if err := s.platform.Disconnect(ctx, ev.GuildID, ev.UserID); err != nil {
		logger.Errorf("guard: disconnecting banned member %s from %s failed: %v", ev.UserID, ev.ChannelID, err)
		return
	}
	metrics.GuardDisconnects.Inc()
	logger.Infof("guard: banned member %s removed from %s", ev.UserID, ev.ChannelID)

	if err := s.platform.NotifyMember(ctx, ev.UserID,
		"You were removed from a temporary channel because its owner has banned you."); err != nil {
		logger.Warningf("guard: notifying %s failed: %v", ev.UserID, err)
	}
}

// LookupResult carries the detail of a successful member lookup.
type LookupResult struct {
	ChannelID   string
	ChannelName string
	Occupancy   int
}

// Lookup resolves the voice channel targetID is connected to, gated on the
// requester's access: a requester banned from the channel, or unable to view
// it under its privacy configuration, gets OutcomeForbidden with no channel
// identity attached.
func (s *Service) Lookup(ctx context.Context, guildID, requesterID, targetID string) (*LookupResult, Outcome, error) {
	loc, err := s.platform.CurrentLocation(ctx, guildID, targetID)
	if err != nil {
		return nil, OutcomeExternalFailure, err
	}
	if loc == "" {
		return nil, OutcomeNotFound, nil
	}

	banned, err := s.bans.Exists(loc, requesterID)
	if err != nil {
		return nil, OutcomeExternalFailure, err
	}
	if banned {
		return nil, OutcomeForbidden, nil
	}

	canView, err := s.platform.CanView(ctx, loc, requesterID)
	if err != nil {
		return nil, OutcomeExternalFailure, err
	}
	if !canView {
		return nil, OutcomeForbidden, nil
	}

	occupancy, err := s.platform.Occupancy(ctx, guildID, loc)
	if err != nil {
		return nil, OutcomeExternalFailure, err
	}

	name := loc
	if channel, err := s.channels.Get(loc); err == nil && channel != nil {
		name = channel.Name
	}

	return &LookupResult{ChannelID: loc, ChannelName: name, Occupancy: occupancy}, OutcomeOK, nil
}

// isAdminExempt reports whether the member holds Administrator or one of the
// guild's configured admin roles.
func (s *Service) isAdminExempt(ctx context.Context, guildID, userID string) (bool, error) {
	member, err := s.platform.Member(ctx, guildID, userID)
	if err != nil {
		return false, fmt.Errorf("fetching member: %w", err)
	}
	if member.IsAdmin {
		return true, nil
	}

	roleIDs, err := s.adminRoles.ListRoleIDs(guildID)
	if err != nil {
		return false, err
	}
	for _, held := range member.RoleIDs {
		for _, admin := range roleIDs {
			if held == admin {
				return true, nil
			}
		}
	}
	return false, nil
}
