package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"odyssey-voice/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func TestTempChannelRepositoryOwnership(t *testing.T) {
	db := openTestDB(t)
	repo := NewTempChannelRepository(db)

	require.NoError(t, repo.Create(&models.TempChannel{ChannelID: "chan-1", GuildID: "guild-1"}))

	t.Run("claim wins on unowned row", func(t *testing.T) {
		rows, err := repo.ClaimIfUnowned("chan-1", "user-1", "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("second claim loses", func(t *testing.T) {
		rows, err := repo.ClaimIfUnowned("chan-1", "user-2", "bob")
		require.NoError(t, err)
		assert.Equal(t, int64(0), rows)

		channel, err := repo.Get("chan-1")
		require.NoError(t, err)
		assert.True(t, channel.OwnedBy("user-1"))
	})

	t.Run("transfer is guarded on the current owner", func(t *testing.T) {
		rows, err := repo.TransferOwner("chan-1", "user-2", "user-3", "carol")
		require.NoError(t, err)
		assert.Equal(t, int64(0), rows)

		rows, err = repo.TransferOwner("chan-1", "user-1", "user-2", "bob")
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		channel, err := repo.Get("chan-1")
		require.NoError(t, err)
		assert.True(t, channel.OwnedBy("user-2"))
	})

	t.Run("duplicate insert surfaces as ErrDuplicatedKey", func(t *testing.T) {
		err := repo.Create(&models.TempChannel{ChannelID: "chan-1", GuildID: "guild-1"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
	})
}

func TestTempChannelRepositoryDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	repo := NewTempChannelRepository(db)
	bans := NewBanRepository(db)
	whitelist := NewWhitelistRepository(db)

	require.NoError(t, repo.Create(&models.TempChannel{ChannelID: "chan-1", GuildID: "guild-1"}))
	require.NoError(t, repo.Create(&models.TempChannel{ChannelID: "chan-2", GuildID: "guild-1"}))

	_, err := bans.Add("chan-1", "user-1")
	require.NoError(t, err)
	_, err = bans.Add("chan-2", "user-1")
	require.NoError(t, err)
	require.NoError(t, whitelist.Add("chan-1", "user-2"))

	require.NoError(t, repo.Delete("chan-1"))

	channel, err := repo.Get("chan-1")
	require.NoError(t, err)
	assert.Nil(t, channel)

	banned, err := bans.Exists("chan-1", "user-1")
	require.NoError(t, err)
	assert.False(t, banned)

	listed, err := whitelist.Exists("chan-1", "user-2")
	require.NoError(t, err)
	assert.False(t, listed)

	// Rows of other channels are untouched.
	banned, err = bans.Exists("chan-2", "user-1")
	require.NoError(t, err)
	assert.True(t, banned)
}

func TestBanRepositoryDeduplicates(t *testing.T) {
	db := openTestDB(t)
	bans := NewBanRepository(db)

	rows, err := bans.Add("chan-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = bans.Add("chan-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	rows, err = bans.Remove("chan-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = bans.Remove("chan-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}
