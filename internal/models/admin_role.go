package models

import "time"

// AdminRole marks a guild role whose holders may manage base channels and are
// exempt from channel bans and kicks.
type AdminRole struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	GuildID   string `gorm:"size:32;not null;uniqueIndex:idx_admin_roles_pair"`
	RoleID    string `gorm:"size:32;not null;uniqueIndex:idx_admin_roles_pair"`
	CreatedAt time.Time
}

func (AdminRole) TableName() string {
	return "admin_roles"
}
