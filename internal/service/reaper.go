package service

import (
	"context"
	"time"

	"odyssey-voice/internal/crash"
	"odyssey-voice/internal/events"
	"odyssey-voice/internal/logger"
	"odyssey-voice/internal/metrics"
)

// HandleLeft is the garbage collector's consumer for Left transitions: when
// a tracked channel is observed empty, a deletion is scheduled after the
// grace interval. The timer is never cancelled; it re-checks occupancy when
// it fires, so a member rejoining inside the window makes it a no-op.
func (s *Service) HandleLeft(ctx context.Context, ev events.Event) {
	channel, err := s.channels.Get(ev.ChannelID)
	if err != nil {
		logger.Warningf("reaper: channel lookup for %s failed: %v", ev.ChannelID, err)
		return
	}
	if channel == nil {
		return
	}

	occupancy, err := s.platform.Occupancy(ctx, ev.GuildID, ev.ChannelID)
	if err != nil {
		logger.Warningf("reaper: occupancy of %s failed: %v", ev.ChannelID, err)
		return
	}
	if occupancy > 0 {
		return
	}

	guildID, channelID := ev.GuildID, ev.ChannelID
	time.AfterFunc(s.deleteGrace, func() {
		defer crash.RecoverWithStack("reaper-debounce")
		s.deleteIfStillEmpty(context.Background(), guildID, channelID)
	})
}

// deleteIfStillEmpty removes the channel from the platform and the store if
// it is still empty at fire time.
func (s *Service) deleteIfStillEmpty(ctx context.Context, guildID, channelID string) {
	channel, err := s.channels.Get(channelID)
	if err != nil || channel == nil {
		// Already reaped, most likely by the sweep.
		return
	}

	occupancy, err := s.platform.Occupancy(ctx, guildID, channelID)
	if err != nil {
		logger.Warningf("reaper: occupancy re-check of %s failed: %v", channelID, err)
		return
	}
	if occupancy > 0 {
		return
	}

	// Platform first. A dangling record is self-healing: the next sweep
	// drops it once the channel is gone. An untracked live channel never
	// would be, since the sweep iterates store records.
	if err := s.platform.DeleteChannel(ctx, channelID); err != nil {
		logger.Warningf("reaper: deleting channel %s failed, leaving record for the sweep: %v", channelID, err)
		return
	}
	if err := s.channels.Delete(channelID); err != nil {
		logger.Errorf("reaper: deleting record %s failed: %v", channelID, err)
		return
	}
	metrics.ChannelsReaped.Inc()
	logger.Infof("reaper: empty channel %s deleted", channelID)
}

// Sweep reconciles store records against live platform state: records whose
// channel vanished are dropped (the platform is authoritative for
// existence), and tracked channels that exist but sit empty are deleted on
// both sides. This is the recovery path for events lost across restarts.
// Individual record failures are logged and skipped.
func (s *Service) Sweep(ctx context.Context) {
	bases, err := s.bases.ListAll()
	if err != nil {
		logger.Errorf("sweep: listing base channels failed: %v", err)
	}
	for _, base := range bases {
		exists, err := s.platform.ChannelExists(ctx, base.GuildID, base.ChannelID)
		if err != nil {
			logger.Warningf("sweep: existence check of base %s failed: %v", base.ChannelID, err)
			continue
		}
		if exists {
			continue
		}
		if err := s.bases.Delete(base.ChannelID); err != nil {
			logger.Warningf("sweep: deleting orphaned base record %s failed: %v", base.ChannelID, err)
			continue
		}
		metrics.SweepDeletions.Inc()
		logger.Infof("sweep: base channel %s gone, record removed", base.ChannelID)
	}

	channels, err := s.channels.ListAll()
	if err != nil {
		logger.Errorf("sweep: listing temp channels failed: %v", err)
		return
	}
	for _, channel := range channels {
		exists, err := s.platform.ChannelExists(ctx, channel.GuildID, channel.ChannelID)
		if err != nil {
			logger.Warningf("sweep: existence check of %s failed: %v", channel.ChannelID, err)
			continue
		}
		if !exists {
			if err := s.channels.Delete(channel.ChannelID); err != nil {
				logger.Warningf("sweep: deleting orphaned record %s failed: %v", channel.ChannelID, err)
				continue
			}
			metrics.SweepDeletions.Inc()
			logger.Infof("sweep: channel %s gone, record removed", channel.ChannelID)
			continue
		}

		occupancy, err := s.platform.Occupancy(ctx, channel.GuildID, channel.ChannelID)
		if err != nil {
			logger.Warningf("sweep: occupancy of %s failed: %v", channel.ChannelID, err)
			continue
		}
		if occupancy > 0 {
			continue
		}

		if err := s.platform.DeleteChannel(ctx, channel.ChannelID); err != nil {
			logger.Warningf("sweep: deleting empty channel %s failed, will retry next sweep: %v", channel.ChannelID, err)
			continue
		}
		if err := s.channels.Delete(channel.ChannelID); err != nil {
			logger.Warningf("sweep: deleting record %s failed: %v", channel.ChannelID, err)
			continue
		}
		metrics.SweepDeletions.Inc()
		logger.Infof("sweep: empty channel %s deleted", channel.ChannelID)
	}
}

// StartSweeper runs the reconciliation sweep on its period until the context
// is cancelled.
func (s *Service) StartSweeper(ctx context.Context) {
	crash.SafeGoroutine("sweeper", func() {
		ticker := time.NewTicker(s.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	})
}
