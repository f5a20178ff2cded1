package storage

import (
	"odyssey-voice/internal/models"

	"gorm.io/gorm"
)

// TempChannelRepository handles database operations for TempChannel.
//
// Ownership transitions are expressed as conditional single-statement updates
// so that two racing claims resolve in the database: the loser sees zero
// affected rows and never overwrites the winner.
type TempChannelRepository struct {
	db *gorm.DB
}

// NewTempChannelRepository creates a new TempChannelRepository
func NewTempChannelRepository(db *gorm.DB) *TempChannelRepository {
	return &TempChannelRepository{db: db}
}

// Create inserts a new TempChannel record. A duplicate channel id surfaces as
// gorm.ErrDuplicatedKey.
func (r *TempChannelRepository) Create(channel *models.TempChannel) error {
	return r.db.Create(channel).Error
}

// Get returns the channel record or nil if the channel is not tracked
func (r *TempChannelRepository) Get(channelID string) (*models.TempChannel, error) {
	var channel models.TempChannel
	result := r.db.Where("channel_id = ?", channelID).First(&channel)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &channel, nil
}

// ClaimIfUnowned atomically sets the owner of an unclaimed channel. Returns
// the number of rows changed: zero means the channel is missing or already
// has an owner.
func (r *TempChannelRepository) ClaimIfUnowned(channelID, userID, userName string) (int64, error) {
	result := r.db.Model(&models.TempChannel{}).
		Where("channel_id = ? AND owner_id IS NULL", channelID).
		Updates(map[string]interface{}{"owner_id": userID, "owner_name": userName})
	return result.RowsAffected, result.Error
}

// TransferOwner atomically rewrites ownership, guarded on the current owner.
// Zero rows means fromID is not the owner anymore.
func (r *TempChannelRepository) TransferOwner(channelID, fromID, toID, toName string) (int64, error) {
	result := r.db.Model(&models.TempChannel{}).
		Where("channel_id = ? AND owner_id = ?", channelID, fromID).
		Updates(map[string]interface{}{"owner_id": toID, "owner_name": toName})
	return result.RowsAffected, result.Error
}

// SetPrivacy updates the privacy flag
func (r *TempChannelRepository) SetPrivacy(channelID string, private bool) (int64, error) {
	result := r.db.Model(&models.TempChannel{}).
		Where("channel_id = ?", channelID).
		Update("private", private)
	return result.RowsAffected, result.Error
}

// UpdateName stores a new display name
func (r *TempChannelRepository) UpdateName(channelID, name string) (int64, error) {
	result := r.db.Model(&models.TempChannel{}).
		Where("channel_id = ?", channelID).
		Update("name", name)
	return result.RowsAffected, result.Error
}

// ListByGuild returns all tracked channels in a guild
func (r *TempChannelRepository) ListByGuild(guildID string) ([]*models.TempChannel, error) {
	var channels []*models.TempChannel
	result := r.db.Where("guild_id = ?", guildID).Find(&channels)
	return channels, result.Error
}

// ListAll returns every tracked channel
func (r *TempChannelRepository) ListAll() ([]*models.TempChannel, error) {
	var channels []*models.TempChannel
	result := r.db.Find(&channels)
	return channels, result.Error
}

// Delete removes the channel record together with its ban and whitelist rows
func (r *TempChannelRepository) Delete(channelID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("channel_id = ?", channelID).Delete(&models.ChannelBan{}).Error; err != nil {
			return err
		}
		if err := tx.Where("channel_id = ?", channelID).Delete(&models.WhitelistEntry{}).Error; err != nil {
			return err
		}
		return tx.Where("channel_id = ?", channelID).Delete(&models.TempChannel{}).Error
	})
}
