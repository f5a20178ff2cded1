package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odyssey-voice/internal/events"
	"odyssey-voice/internal/models"
	"odyssey-voice/internal/platform"
	"odyssey-voice/internal/storage"
)

func TestHandleEntered(t *testing.T) {
	ctx := context.Background()

	t.Run("joining a base channel spawns a personal channel", func(t *testing.T) {
		pf := newFakePlatform()
		db := testDB(t)
		svc := newTestService(t, pf, db)

		pf.addChannel("base-1", "guild-1", "Join to create")
		pf.addMember(&platform.Member{ID: "user-1", Username: "alice"})
		pf.connect("user-1", "base-1")

		require.NoError(t, storage.NewBaseChannelRepository(db).Upsert(&models.BaseChannel{
			ChannelID:   "base-1",
			GuildID:     "guild-1",
			NamePattern: "{user}'s room",
			UserLimit:   5,
			CategoryID:  "cat-1",
		}))

		svc.HandleEntered(ctx, events.Event{
			Kind: events.Entered, GuildID: "guild-1", ChannelID: "base-1", UserID: "user-1",
		})

		loc, err := pf.CurrentLocation(ctx, "guild-1", "user-1")
		require.NoError(t, err)
		require.NotEqual(t, "base-1", loc, "member should have been moved out of the base channel")

		spawned := pf.channel(loc)
		require.NotNil(t, spawned)
		assert.Equal(t, "alice's room", spawned.Name)
		assert.Equal(t, "cat-1", spawned.CategoryID)
		assert.Equal(t, 5, spawned.UserLimit)

		record, err := storage.NewTempChannelRepository(db).Get(loc)
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, "guild-1", record.GuildID)
		require.NotNil(t, record.BaseChannelID)
		assert.Equal(t, "base-1", *record.BaseChannelID)
		assert.Equal(t, "alice's room", record.Name)
		assert.Nil(t, record.OwnerID, "spawned channels start unowned")
	})

	t.Run("joining an unregistered channel does nothing", func(t *testing.T) {
		pf := newFakePlatform()
		db := testDB(t)
		svc := newTestService(t, pf, db)

		pf.addChannel("plain-1", "guild-1", "General")
		pf.addMember(&platform.Member{ID: "user-1", Username: "alice"})
		pf.connect("user-1", "plain-1")

		svc.HandleEntered(ctx, events.Event{
			Kind: events.Entered, GuildID: "guild-1", ChannelID: "plain-1", UserID: "user-1",
		})

		loc, err := pf.CurrentLocation(ctx, "guild-1", "user-1")
		require.NoError(t, err)
		assert.Equal(t, "plain-1", loc)

		records, err := storage.NewTempChannelRepository(db).ListAll()
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("creation failure leaves no record behind", func(t *testing.T) {
		pf := newFakePlatform()
		db := testDB(t)
		svc := newTestService(t, pf, db)

		pf.addMember(&platform.Member{ID: "user-1", Username: "alice"})
		pf.createErr = errors.New("rate limited")

		require.NoError(t, storage.NewBaseChannelRepository(db).Upsert(&models.BaseChannel{
			ChannelID: "base-1", GuildID: "guild-1", NamePattern: "{user}",
		}))

		svc.HandleEntered(ctx, events.Event{
			Kind: events.Entered, GuildID: "guild-1", ChannelID: "base-1", UserID: "user-1",
		})

		records, err := storage.NewTempChannelRepository(db).ListAll()
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
