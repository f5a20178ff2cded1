package service

import (
	"time"

	"gorm.io/gorm"

	"odyssey-voice/internal/config"
	"odyssey-voice/internal/platform"
	"odyssey-voice/internal/storage"
)

// Service is the ephemeral channel lifecycle engine. All methods are safe
// for concurrent use; ownership races are resolved by the store's
// conditional updates, not by in-process locking.
type Service struct {
	platform   platform.Platform
	bases      *storage.BaseChannelRepository
	channels   *storage.TempChannelRepository
	bans       *storage.BanRepository
	whitelist  *storage.WhitelistRepository
	adminRoles *storage.AdminRoleRepository

	deleteGrace   time.Duration
	sweepInterval time.Duration
}

// New wires the engine onto the given platform and database
func New(cfg *config.Config, pf platform.Platform, db *gorm.DB) *Service {
	return &Service{
		platform:      pf,
		bases:         storage.NewBaseChannelRepository(db),
		channels:      storage.NewTempChannelRepository(db),
		bans:          storage.NewBanRepository(db),
		whitelist:     storage.NewWhitelistRepository(db),
		adminRoles:    storage.NewAdminRoleRepository(db),
		deleteGrace:   cfg.Lifecycle.DeleteGrace,
		sweepInterval: cfg.Lifecycle.SweepInterval,
	}
}
