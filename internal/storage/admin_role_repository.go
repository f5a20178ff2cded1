package storage

import (
	"odyssey-voice/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AdminRoleRepository handles database operations for AdminRole
type AdminRoleRepository struct {
	db *gorm.DB
}

// NewAdminRoleRepository creates a new AdminRoleRepository
func NewAdminRoleRepository(db *gorm.DB) *AdminRoleRepository {
	return &AdminRoleRepository{db: db}
}

// Add grants a role admin privileges; duplicates are a no-op
func (r *AdminRoleRepository) Add(guildID, roleID string) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.AdminRole{GuildID: guildID, RoleID: roleID}).Error
}

// Remove revokes a role's admin privileges
func (r *AdminRoleRepository) Remove(guildID, roleID string) (int64, error) {
	result := r.db.Where("guild_id = ? AND role_id = ?", guildID, roleID).
		Delete(&models.AdminRole{})
	return result.RowsAffected, result.Error
}

// ListRoleIDs returns the admin role ids configured for a guild
func (r *AdminRoleRepository) ListRoleIDs(guildID string) ([]string, error) {
	var ids []string
	result := r.db.Model(&models.AdminRole{}).
		Where("guild_id = ?", guildID).
		Pluck("role_id", &ids)
	return ids, result.Error
}
