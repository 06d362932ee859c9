// Package cuid2 generates prefixed, time-sortable, collision-resistant identifiers.
package cuid2

import (
	crypto_rand "crypto/rand"
	"strings"
	"time"
)

// Base62 alphabet: 0-9, A-Z, a-z (62 characters)
const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	timestampLength     = 6
	defaultRandomLength = 18
)

// EncodeTimestampBase62 encodes a Unix timestamp (seconds) as a 6-character base62 string.
// Produces lexicographically sortable output for timestamps.
func EncodeTimestampBase62(timestampSeconds int64) string {
	n := timestampSeconds
	result := make([]byte, timestampLength)
	for i := timestampLength - 1; i >= 0; i-- {
		result[i] = base62Alphabet[n%62]
		n = n / 62
	}
	return string(result)
}

// randomBase62 returns length characters drawn uniformly from the base62 alphabet.
// Six bits are taken per character and values >= 62 are rejected.
func randomBase62(length int) string {
	var result strings.Builder
	result.Grow(length)

	buf := make([]byte, length)
	for result.Len() < length {
		if _, err := crypto_rand.Read(buf); err != nil {
			panic("failed to read random bytes: " + err.Error())
		}
		for _, b := range buf {
			value := b & 0x3f
			if value < 62 {
				result.WriteByte(base62Alphabet[value])
				if result.Len() == length {
					break
				}
			}
		}
	}
	return result.String()
}

// NewID returns prefix + "_" + a 6-char timestamp + 18 random characters.
// IDs generated in later seconds sort after earlier ones.
func NewID(prefix string) string {
	return newIDAt(prefix, time.Now())
}

func newIDAt(prefix string, now time.Time) string {
	return prefix + "_" + EncodeTimestampBase62(now.Unix()) + randomBase62(defaultRandomLength)
}

// NewRandomID returns prefix + "_" + length random characters, without a time component.
func NewRandomID(prefix string, length int) string {
	if length <= 0 {
		length = timestampLength + defaultRandomLength
	}
	return prefix + "_" + randomBase62(length)
}
