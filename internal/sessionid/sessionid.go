// Package sessionid creates short, time-ordered identifiers for PokerPal
// sessions so that log lines from one sitting can be grouped together.
//
// An ID is a UUIDv7 (48-bit millisecond timestamp, then random bits) written
// as 26 characters of Crockford base32. IDs created later sort later.
package sessionid

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/coder/quartz"
)

const (
	alphabet = "0123456789abcdefghjkmnpqrstvwxyz"
	Length   = 26
)

// Generator creates IDs from a clock and a source of random bytes
type Generator struct {
	clock  quartz.Clock
	random io.Reader
}

// NewGenerator creates a generator. A nil random source uses crypto/rand.
func NewGenerator(clock quartz.Clock, random io.Reader) *Generator {
	if random == nil {
		random = rand.Reader
	}
	return &Generator{clock: clock, random: random}
}

// New returns a fresh session ID
func (g *Generator) New() (string, error) {
	var id [16]byte

	ms := g.clock.Now().UnixMilli()
	for i := 0; i < 6; i++ {
		id[i] = byte(ms >> (40 - 8*i))
	}

	if _, err := io.ReadFull(g.random, id[6:]); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // RFC 4122 variant

	return encode(id), nil
}

// encode writes the 128 bits as 26 base32 digits, most significant first.
// The leading digit carries only 3 bits.
func encode(id [16]byte) string {
	var out [Length]byte
	var acc uint32
	bits := 0
	pos := Length - 1

	for i := len(id) - 1; i >= 0; i-- {
		acc |= uint32(id[i]) << bits
		bits += 8
		for bits >= 5 {
			out[pos] = alphabet[acc&0x1f]
			pos--
			acc >>= 5
			bits -= 5
		}
	}
	out[0] = alphabet[acc&0x1f]

	return string(out[:])
}

// Validate checks that id looks like a session ID
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("session ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("session ID first character must be 0-7, got %c", id[0])
	}
	for i, r := range id {
		if !strings.ContainsRune(alphabet, r) {
			return fmt.Errorf("invalid character %c at position %d", r, i)
		}
	}
	return nil
}
