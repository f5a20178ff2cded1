package service

import (
	"context"

	"odyssey-voice/internal/events"
	"odyssey-voice/internal/logger"
	"odyssey-voice/internal/metrics"
	"odyssey-voice/internal/models"
	"odyssey-voice/internal/platform"
)

// HandleEntered is the spawn engine's consumer for Entered transitions: if
// the joined channel is a registered base channel, create a fresh temporary
// channel from its template and move the member into it.
//
// The store record is inserted only after the platform channel exists, so a
// creation failure leaves no partial record. If the insert or the move fails
// afterwards, the empty channel is left for the reconciliation sweep.
func (s *Service) HandleEntered(ctx context.Context, ev events.Event) {
	base, err := s.bases.Get(ev.ChannelID)
	if err != nil {
		logger.Warningf("spawn: base channel lookup for %s failed: %v", ev.ChannelID, err)
		return
	}
	if base == nil {
		return
	}

	member, err := s.platform.Member(ctx, ev.GuildID, ev.UserID)
	if err != nil {
		logger.Warningf("spawn: member %s lookup failed: %v", ev.UserID, err)
		return
	}

	channelID, err := s.platform.CreateVoiceChannel(ctx, platform.ChannelCreate{
		GuildID:    ev.GuildID,
		Name:       platform.SubstituteName(base.NamePattern, member.Username),
		CategoryID: base.CategoryID,
		UserLimit:  base.UserLimit,
	})
	if err != nil {
		logger.Errorf("spawn: creating channel from base %s failed: %v", base.ChannelID, err)
		return
	}

	baseID := base.ChannelID
	record := &models.TempChannel{
		ChannelID:     channelID,
		BaseChannelID: &baseID,
		GuildID:       ev.GuildID,
		Name:          platform.SubstituteName(base.NamePattern, member.Username),
		UserLimit:     base.UserLimit,
	}
	if err := s.channels.Create(record); err != nil {
		// The channel exists but is untracked; the sweep deletes it once
		// it is observed empty.
		logger.Errorf("spawn: recording channel %s failed: %v", channelID, err)
		return
	}

	if err := s.platform.MoveMember(ctx, ev.GuildID, ev.UserID, channelID); err != nil {
		logger.Warningf("spawn: moving %s into %s failed: %v", ev.UserID, channelID, err)
	}

	metrics.ChannelsSpawned.Inc()
	logger.Infof("spawn: channel %s created from base %s for %s", channelID, base.ChannelID, ev.UserID)
}
