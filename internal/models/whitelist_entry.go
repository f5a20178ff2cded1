package models

import "time"

// WhitelistEntry grants a user access to a private temporary channel.
// Rows are durable but only enforced through explicit overwrite edits; they
// are not replayed automatically when privacy is toggled.
type WhitelistEntry struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	ChannelID string `gorm:"size:32;not null;uniqueIndex:idx_channel_whitelist_pair"`
	UserID    string `gorm:"size:32;not null;uniqueIndex:idx_channel_whitelist_pair"`
	CreatedAt time.Time
}

func (WhitelistEntry) TableName() string {
	return "channel_whitelist"
}
