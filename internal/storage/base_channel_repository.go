package storage

import (
	"odyssey-voice/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BaseChannelRepository handles database operations for BaseChannel
type BaseChannelRepository struct {
	db *gorm.DB
}

// NewBaseChannelRepository creates a new BaseChannelRepository
func NewBaseChannelRepository(db *gorm.DB) *BaseChannelRepository {
	return &BaseChannelRepository{db: db}
}

// Upsert registers a spawn point, updating the limit and name on re-registration
func (r *BaseChannelRepository) Upsert(base *models.BaseChannel) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "channel_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_limit", "name_pattern", "category_id", "updated_at"}),
	}).Create(base).Error
}

// Get returns the base channel or nil if the id is not registered
func (r *BaseChannelRepository) Get(channelID string) (*models.BaseChannel, error) {
	var base models.BaseChannel
	result := r.db.Where("channel_id = ?", channelID).First(&base)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &base, nil
}

// ListAll returns every registered base channel
func (r *BaseChannelRepository) ListAll() ([]*models.BaseChannel, error) {
	var bases []*models.BaseChannel
	result := r.db.Find(&bases)
	return bases, result.Error
}

// UpdateName stores a new name pattern for the base channel
func (r *BaseChannelRepository) UpdateName(channelID, name string) (int64, error) {
	result := r.db.Model(&models.BaseChannel{}).
		Where("channel_id = ?", channelID).
		Update("name_pattern", name)
	return result.RowsAffected, result.Error
}

// Delete removes the base channel record
func (r *BaseChannelRepository) Delete(channelID string) error {
	return r.db.Where("channel_id = ?", channelID).Delete(&models.BaseChannel{}).Error
}
