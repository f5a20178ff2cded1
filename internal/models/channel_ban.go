package models

import "time"

// ChannelBan blocks a user from a specific temporary channel. The join guard
// disconnects the user whenever they enter the channel while the row exists.
type ChannelBan struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	ChannelID string `gorm:"size:32;not null;uniqueIndex:idx_channel_bans_pair"`
	UserID    string `gorm:"size:32;not null;uniqueIndex:idx_channel_bans_pair"`
	CreatedAt time.Time
}

func (ChannelBan) TableName() string {
	return "channel_bans"
}
