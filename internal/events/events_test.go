package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		prev     string
		new      string
		expected []Event
	}{
		{
			name: "fresh join",
			prev: "",
			new:  "chan-1",
			expected: []Event{
				{Kind: Entered, GuildID: "guild-1", ChannelID: "chan-1", UserID: "user-1"},
			},
		},
		{
			name: "disconnect",
			prev: "chan-1",
			new:  "",
			expected: []Event{
				{Kind: Left, GuildID: "guild-1", ChannelID: "chan-1", UserID: "user-1"},
			},
		},
		{
			name: "move between channels",
			prev: "chan-1",
			new:  "chan-2",
			expected: []Event{
				{Kind: Left, GuildID: "guild-1", ChannelID: "chan-1", UserID: "user-1"},
				{Kind: Entered, GuildID: "guild-1", ChannelID: "chan-2", UserID: "user-1"},
			},
		},
		{
			name:     "mute toggle in place",
			prev:     "chan-1",
			new:      "chan-1",
			expected: nil,
		},
		{
			name:     "no channel on either side",
			prev:     "",
			new:      "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize("guild-1", tt.prev, tt.new, "user-1")
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDispatchOrder(t *testing.T) {
	var calls []string
	record := func(tag string) Handler {
		return func(ctx context.Context, ev Event) {
			calls = append(calls, tag+":"+ev.ChannelID)
		}
	}

	d := NewDispatcher(
		[]Handler{record("first"), record("second")},
		[]Handler{record("left")},
	)

	d.Dispatch(context.Background(), Normalize("guild-1", "chan-old", "chan-new", "user-1"))

	assert.Equal(t, []string{"left:chan-old", "first:chan-new", "second:chan-new"}, calls)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "entered", Entered.String())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
