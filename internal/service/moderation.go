package service

import "context"

// Kick disconnects targetID from the requester's channel. The target must be
// present and must not be admin-exempt. No ban entry is created; the member
// may rejoin.
func (s *Service) Kick(ctx context.Context, guildID, channelID, requesterID, targetID string) (Outcome, error) {
	outcome, err := s.ownerModerationCheck(ctx, guildID, channelID, requesterID, targetID)
	if outcome != OutcomeOK {
		return outcome, err
	}

	exempt, err := s.isAdminExempt(ctx, guildID, targetID)
	if err != nil {
		return OutcomeExternalFailure, err
	}
	if exempt {
		return OutcomeForbidden, nil
	}

	if err := s.platform.Disconnect(ctx, guildID, targetID); err != nil {
		return OutcomeExternalFailure, err
	}
	return OutcomeOK, nil
}

// SetMemberMute server-mutes or unmutes a member present in the requester's
// channel.
func (s *Service) SetMemberMute(ctx context.Context, guildID, channelID, requesterID, targetID string, mute bool) (Outcome, error) {
	outcome, err := s.ownerModerationCheck(ctx, guildID, channelID, requesterID, targetID)
	if outcome != OutcomeOK {
		return outcome, err
	}
	if err := s.platform.SetMute(ctx, guildID, targetID, mute); err != nil {
		return OutcomeExternalFailure, err
	}
	return OutcomeOK, nil
}

// SetMemberDeaf server-deafens or undeafens a member present in the
// requester's channel.
func (s *Service) SetMemberDeaf(ctx context.Context, guildID, channelID, requesterID, targetID string, deaf bool) (Outcome, error) {
	outcome, err := s.ownerModerationCheck(ctx, guildID, channelID, requesterID, targetID)
	if outcome != OutcomeOK {
		return outcome, err
	}
	if err := s.platform.SetDeaf(ctx, guildID, targetID, deaf); err != nil {
		return OutcomeExternalFailure, err
	}
	return OutcomeOK, nil
}

// ownerModerationCheck validates the common preconditions of owner-issued
// member moderation: the channel is tracked, the requester owns it, and the
// target is currently connected to it.
func (s *Service) ownerModerationCheck(ctx context.Context, guildID, channelID, requesterID, targetID string) (Outcome, error) {
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

	loc, err := s.platform.CurrentLocation(ctx, guildID, targetID)
	if err != nil {
		return OutcomeExternalFailure, err
	}
	if loc != channelID {
		return OutcomeNotFound, nil
	}
	return OutcomeOK, nil
}
