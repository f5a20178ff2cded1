package models

import "time"

// TempChannel is a live ephemeral voice channel tracked by the bot.
// OwnerID is nil until somebody claims the channel; BaseChannelID is nil for
// channels claimed without having been spawned from a base channel.
type TempChannel struct {
	ChannelID     string  `gorm:"primaryKey;size:32"`
	BaseChannelID *string `gorm:"size:32"`
	GuildID       string  `gorm:"index;size:32;not null"`
	OwnerID       *string `gorm:"size:32"`
	OwnerName     *string `gorm:"size:100"`
	Name          string  `gorm:"size:100"`
	UserLimit     int     `gorm:"default:0"`
	Private       bool    `gorm:"default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (TempChannel) TableName() string {
	return "temp_channels"
}

// OwnedBy reports whether userID is the current owner.
func (c *TempChannel) OwnedBy(userID string) bool {
	return c.OwnerID != nil && *c.OwnerID == userID
}
