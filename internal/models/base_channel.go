package models

import "time"

// BaseChannel is a registered spawn point: joining it makes the bot create a
// fresh temporary voice channel from this template.
type BaseChannel struct {
	// ChannelID is the Discord id of the spawn-point voice channel.
	ChannelID string `gorm:"primaryKey;size:32"`
	GuildID   string `gorm:"index;size:32;not null"`
	// NamePattern names spawned channels; "{user}" expands to the joining
	// member's display name.
	NamePattern string `gorm:"size:100"`
	UserLimit   int    `gorm:"default:0"`
	// CategoryID is the parent category new channels are created under.
	CategoryID string `gorm:"size:32;default:''"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (BaseChannel) TableName() string {
	return "base_channels"
}
