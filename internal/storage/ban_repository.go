package storage

import (
	"odyssey-voice/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BanRepository handles database operations for ChannelBan
type BanRepository struct {
	db *gorm.DB
}

// NewBanRepository creates a new BanRepository
func NewBanRepository(db *gorm.DB) *BanRepository {
	return &BanRepository{db: db}
}

// Add inserts a ban entry. A duplicate (channel, user) pair is a no-op;
// the returned count is zero in that case.
func (r *BanRepository) Add(channelID, userID string) (int64, error) {
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.ChannelBan{ChannelID: channelID, UserID: userID})
	return result.RowsAffected, result.Error
}

// Exists reports whether the user is banned from the channel
func (r *BanRepository) Exists(channelID, userID string) (bool, error) {
	var count int64
	result := r.db.Model(&models.ChannelBan{}).
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Count(&count)
	return count > 0, result.Error
}

// Remove deletes the ban entry, returning the number of rows removed
func (r *BanRepository) Remove(channelID, userID string) (int64, error) {
	result := r.db.Where("channel_id = ? AND user_id = ?", channelID, userID).
		Delete(&models.ChannelBan{})
	return result.RowsAffected, result.Error
}
