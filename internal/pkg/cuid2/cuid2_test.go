package cuid2

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTimestampBase62(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int64
		expected string
	}{
		{"Zero timestamp", 0, "000000"},
		{"One second", 1, "000001"},
		{"62 seconds", 62, "000010"},
		{"One minute", 60, "00000y"},
		{"One hour", 3600, "0000w4"},
		{"One day", 86400, "000MTY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EncodeTimestampBase62(tt.seconds))
		})
	}
}

func TestNewID(t *testing.T) {
	id := NewID("alt")

	assert.Len(t, id, len("alt_")+24)
	assert.Regexp(t, regexp.MustCompile(`^alt_[0-9A-Za-z]{24}$`), id)

	ids := make(map[string]bool)
	for i := 0; i < 5000; i++ {
		id := NewID("alt")
		require.False(t, ids[id], "duplicate id %s", id)
		ids[id] = true
	}
}

func TestNewID_TimeSortable(t *testing.T) {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	first := newIDAt("alt", base)
	second := newIDAt("alt", base.Add(time.Second))
	third := newIDAt("alt", base.Add(time.Hour))

	stamp := func(id string) string { return strings.SplitN(id, "_", 2)[1][:timestampLength] }

	assert.Less(t, stamp(first), stamp(second))
	assert.Less(t, stamp(second), stamp(third))
}

func TestNewRandomID(t *testing.T) {
	id := NewRandomID("req", 10)
	assert.Regexp(t, regexp.MustCompile(`^req_[0-9A-Za-z]{10}$`), id)

	assert.Len(t, strings.TrimPrefix(NewRandomID("req", 0), "req_"), 24)
}
