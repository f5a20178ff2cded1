package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"odyssey-voice/internal/config"
	"odyssey-voice/internal/platform"
	"odyssey-voice/internal/service"
	"odyssey-voice/internal/storage"
)

// fakeChannel is the in-memory stand-in for a live voice channel.
type fakeChannel struct {
	GuildID         string
	Name            string
	CategoryID      string
	UserLimit       int
	EveryoneAllowed bool
	// Overwrites holds per-member explicit allows.
	Overwrites map[string]bool
}

// fakePlatform implements platform.Platform against in-memory state so the
// engine can be exercised without a gateway connection.
type fakePlatform struct {
	mu sync.Mutex

	nextID    int
	channels  map[string]*fakeChannel
	locations map[string]string
	members   map[string]*platform.Member
	muted     map[string]bool
	deafened  map[string]bool
	notices   map[string][]string

	createErr error
	deleteErr error
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		channels:  make(map[string]*fakeChannel),
		locations: make(map[string]string),
		members:   make(map[string]*platform.Member),
		muted:     make(map[string]bool),
		deafened:  make(map[string]bool),
		notices:   make(map[string][]string),
	}
}

func (f *fakePlatform) addMember(m *platform.Member) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.members[m.ID] = m
}

func (f *fakePlatform) addChannel(channelID, guildID, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.channels[channelID] = &fakeChannel{
		GuildID:         guildID,
		Name:            name,
		EveryoneAllowed: true,
		Overwrites:      make(map[string]bool),
	}
}

func (f *fakePlatform) setDeleteErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteErr = err
}

func (f *fakePlatform) connect(userID, channelID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.locations[userID] = channelID
}

func (f *fakePlatform) channel(channelID string) *fakeChannel {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.channels[channelID]
}

func (f *fakePlatform) CreateVoiceChannel(ctx context.Context, create platform.ChannelCreate) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	id := fmt.Sprintf("chan-%d", f.nextID)
	ch := &fakeChannel{
		GuildID:         create.GuildID,
		Name:            create.Name,
		CategoryID:      create.CategoryID,
		UserLimit:       create.UserLimit,
		EveryoneAllowed: !create.Private,
		Overwrites:      make(map[string]bool),
	}
	if create.Private && create.OwnerID != "" {
		ch.Overwrites[create.OwnerID] = true
	}
	f.channels[id] = ch
	return id, nil
}

func (f *fakePlatform) DeleteChannel(ctx context.Context, channelID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.channels[channelID]; !ok {
		return fmt.Errorf("channel %s not found", channelID)
	}
	delete(f.channels, channelID)
	for userID, loc := range f.locations {
		if loc == channelID {
			delete(f.locations, userID)
		}
	}
	return nil
}

func (f *fakePlatform) ChannelExists(ctx context.Context, guildID, channelID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.channels[channelID]
	return ok, nil
}

func (f *fakePlatform) RenameChannel(ctx context.Context, channelID, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch, ok := f.channels[channelID]
	if !ok {
		return fmt.Errorf("channel %s not found", channelID)
	}
	ch.Name = name
	return nil
}

func (f *fakePlatform) Occupancy(ctx context.Context, guildID, channelID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, loc := range f.locations {
		if loc == channelID {
			count++
		}
	}
	return count, nil
}

func (f *fakePlatform) CurrentLocation(ctx context.Context, guildID, userID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locations[userID], nil
}

func (f *fakePlatform) MoveMember(ctx context.Context, guildID, userID, channelID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.locations[userID] = channelID
	return nil
}

func (f *fakePlatform) Disconnect(ctx context.Context, guildID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.locations, userID)
	return nil
}

func (f *fakePlatform) SetMute(ctx context.Context, guildID, userID string, mute bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.muted[userID] = mute
	return nil
}

func (f *fakePlatform) SetDeaf(ctx context.Context, guildID, userID string, deaf bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deafened[userID] = deaf
	return nil
}

func (f *fakePlatform) SetEveryoneAccess(ctx context.Context, guildID, channelID string, allow bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch, ok := f.channels[channelID]
	if !ok {
		return fmt.Errorf("channel %s not found", channelID)
	}
	ch.EveryoneAllowed = allow
	return nil
}

func (f *fakePlatform) GrantMemberAccess(ctx context.Context, channelID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch, ok := f.channels[channelID]
	if !ok {
		return fmt.Errorf("channel %s not found", channelID)
	}
	ch.Overwrites[userID] = true
	return nil
}

func (f *fakePlatform) GrantOwnerPermissions(ctx context.Context, channelID, userID string) error {
	return f.GrantMemberAccess(context.Background(), channelID, userID)
}

func (f *fakePlatform) RevokeMemberOverwrite(ctx context.Context, channelID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch, ok := f.channels[channelID]
	if !ok {
		return fmt.Errorf("channel %s not found", channelID)
	}
	delete(ch.Overwrites, userID)
	return nil
}

func (f *fakePlatform) CanView(ctx context.Context, channelID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch, ok := f.channels[channelID]
	if !ok {
		return false, fmt.Errorf("channel %s not found", channelID)
	}
	return ch.EveryoneAllowed || ch.Overwrites[userID], nil
}

func (f *fakePlatform) Member(ctx context.Context, guildID, userID string) (*platform.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.members[userID]
	if !ok {
		return nil, fmt.Errorf("member %s not found", userID)
	}
	return m, nil
}

func (f *fakePlatform) NotifyMember(ctx context.Context, userID, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices[userID] = append(f.notices[userID], message)
	return nil
}

func (f *fakePlatform) noticesFor(userID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notices[userID]
}

// testDB opens a private in-memory database with the full schema. A single
// connection serializes access so concurrent engine calls exercise the
// conditional updates, not sqlite locking.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, storage.Migrate(db))
	return db
}

func newTestService(t *testing.T, pf platform.Platform, db *gorm.DB) *service.Service {
	t.Helper()
	cfg := &config.Config{}
	cfg.Lifecycle.DeleteGrace = 30 * time.Millisecond
	cfg.Lifecycle.SweepInterval = time.Minute
	return service.New(cfg, pf, db)
}
