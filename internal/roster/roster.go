// Package roster holds the ordered list of players tracked by a session.
//
// Position 0 of every roster is a reserved player named NONE with no chips.
// It is never listed, edited, removed or saved; Get falls back to it when a
// name is unknown so callers can keep going with a harmless zero value.
package roster

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/lox/pokerpal/internal/chips"
)

// SentinelName is the reserved name of the placeholder player
const SentinelName = "NONE"

var (
	ErrInvalidName    = errors.New("invalid player name")
	ErrReservedName   = errors.New("player name is reserved")
	ErrDuplicateName  = errors.New("player name already taken")
	ErrPlayerNotFound = errors.New("player not found")
	ErrLastPlayer     = errors.New("must be at least one player")
)

// Player is a named participant and the chips in front of them
type Player struct {
	Name  string
	Chips chips.Counts
}

// Winnings returns the value of the player's chips
func (p Player) Winnings() chips.Cents {
	return chips.Winnings(p.Chips)
}

// Roster is an ordered set of uniquely named players
type Roster struct {
	players []Player // players[0] is the sentinel
}

// New creates a roster containing the given names in order, all with zero
// chips. Invalid, reserved and repeated names are rejected.
func New(names ...string) (*Roster, error) {
	r := &Roster{players: []Player{{Name: SentinelName}}}
	for _, name := range names {
		if err := r.Add(name); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ValidateName checks that name can be used for a new player
func ValidateName(name string) error {
	if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if name == SentinelName {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	return nil
}

// Add appends a new player with no chips
func (r *Roster) Add(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if r.Exists(name) {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	r.players = append(r.players, Player{Name: name})
	return nil
}

// Remove deletes the named player. The last remaining player cannot be removed.
func (r *Roster) Remove(name string) error {
	idx := r.index(name)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrPlayerNotFound, name)
	}
	if r.Len() == 1 {
		return ErrLastPlayer
	}
	r.players = append(r.players[:idx], r.players[idx+1:]...)
	return nil
}

// Lookup returns the named player, or false if there is no such player.
// The returned pointer stays valid until the roster is next modified.
func (r *Roster) Lookup(name string) (*Player, bool) {
	idx := r.index(name)
	if idx < 0 {
		return nil, false
	}
	return &r.players[idx], true
}

// Get returns a copy of the named player. Unknown names yield a copy of the
// sentinel together with ErrPlayerNotFound.
func (r *Roster) Get(name string) (Player, error) {
	if p, ok := r.Lookup(name); ok {
		return *p, nil
	}
	return r.Sentinel(), fmt.Errorf("%w: %q", ErrPlayerNotFound, name)
}

// Exists reports whether a real player with this name is on the roster
func (r *Roster) Exists(name string) bool {
	return r.index(name) >= 0
}

// SetChips overwrites the chip counts of the named player
func (r *Roster) SetChips(name string, counts chips.Counts) error {
	p, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrPlayerNotFound, name)
	}
	p.Chips = counts
	return nil
}

// Sentinel returns a copy of the reserved placeholder player
func (r *Roster) Sentinel() Player {
	return r.players[0]
}

// Len returns the number of real players
func (r *Roster) Len() int {
	return len(r.players) - 1
}

// Players returns copies of the real players in roster order
func (r *Roster) Players() []Player {
	out := make([]Player, r.Len())
	copy(out, r.players[1:])
	return out
}

// Names returns the real player names in roster order
func (r *Roster) Names() []string {
	names := make([]string, 0, r.Len())
	for _, p := range r.players[1:] {
		names = append(names, p.Name)
	}
	return names
}

// Total returns the combined winnings of every real player
func (r *Roster) Total() chips.Cents {
	var total chips.Cents
	for _, p := range r.players[1:] {
		total += p.Winnings()
	}
	return total
}

func (r *Roster) index(name string) int {
	for i := 1; i < len(r.players); i++ {
		if r.players[i].Name == name {
			return i
		}
	}
	return -1
}
