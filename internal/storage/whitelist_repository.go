package storage

import (
	"odyssey-voice/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WhitelistRepository handles database operations for WhitelistEntry
type WhitelistRepository struct {
	db *gorm.DB
}

// NewWhitelistRepository creates a new WhitelistRepository
func NewWhitelistRepository(db *gorm.DB) *WhitelistRepository {
	return &WhitelistRepository{db: db}
}

// Add grants a user access to a private channel; duplicates are a no-op
func (r *WhitelistRepository) Add(channelID, userID string) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.WhitelistEntry{ChannelID: channelID, UserID: userID}).Error
}

// Exists reports whether the user is whitelisted on the channel
func (r *WhitelistRepository) Exists(channelID, userID string) (bool, error) {
	var count int64
	result := r.db.Model(&models.WhitelistEntry{}).
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Count(&count)
	return count > 0, result.Error
}

// Remove revokes the grant
func (r *WhitelistRepository) Remove(channelID, userID string) (int64, error) {
	result := r.db.Where("channel_id = ? AND user_id = ?", channelID, userID).
		Delete(&models.WhitelistEntry{})
	return result.RowsAffected, result.Error
}
