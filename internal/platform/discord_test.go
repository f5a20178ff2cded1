package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteName(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		username string
		expected string
	}{
		{"placeholder expands", "{user}'s room", "alice", "alice's room"},
		{"placeholder alone", "{user}", "alice", "alice"},
		{"no placeholder names after the member", "Voice Lounge", "alice", "alice"},
		{"empty pattern", "", "alice", "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SubstituteName(tt.pattern, tt.username))
		})
	}
}
