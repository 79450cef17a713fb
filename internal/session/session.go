// Package session implements a PokerPal roster session: the players being
// tracked, the expected pot, and the menu loop that edits them.
//
// A Session owns its roster and pot outright. Operations are plain methods so
// they can be driven by the interactive loop in Run or called directly.
package session

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerpal/internal/chips"
	"github.com/lox/pokerpal/internal/roster"
)

// State is the menu loop state
type State int

const (
	Running State = iota
	Exiting
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Exiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Saver persists a roster's player names
type Saver interface {
	Save(r *roster.Roster) error
}

// Options configures a Session
type Options struct {
	ID     string // tags every log line when set
	Saver  Saver
	BuyIn  chips.Cents // per-player amount for the default pot
	Clock  quartz.Clock
	Logger *log.Logger
}

// Session tracks one sitting of players, their chips and the pot
type Session struct {
	id      string
	roster  *roster.Roster
	saver   Saver
	buyIn   chips.Cents
	pot     chips.Cents
	changed bool
	state   State
	clock   quartz.Clock
	started time.Time
	logger  *log.Logger
}

// New creates a running session over r
func New(r *roster.Roster, opts Options) *Session {
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("session")
	if opts.ID != "" {
		logger = logger.With("session", opts.ID)
	}

	return &Session{
		id:      opts.ID,
		roster:  r,
		saver:   opts.Saver,
		buyIn:   opts.BuyIn,
		state:   Running,
		clock:   clock,
		started: clock.Now(),
		logger:  logger,
	}
}

// ID returns the session identifier, if one was given
func (s *Session) ID() string {
	return s.id
}

// Roster returns the session's roster
func (s *Session) Roster() *roster.Roster {
	return s.roster
}

// Pot returns the expected pot; zero means it has not been set
func (s *Session) Pot() chips.Cents {
	return s.pot
}

// BuyIn returns the per-player amount used by SetDefaultPot
func (s *Session) BuyIn() chips.Cents {
	return s.buyIn
}

// Changed reports whether the roster differs from what was loaded
func (s *Session) Changed() bool {
	return s.changed
}

// State returns the current loop state
func (s *Session) State() State {
	return s.state
}

// Done reports whether the menu loop should stop
func (s *Session) Done() bool {
	return s.state == Exiting || s.roster.Len() == 0
}

// AddPlayer adds a new player with no chips
func (s *Session) AddPlayer(name string) error {
	if err := s.roster.Add(name); err != nil {
		return err
	}
	s.changed = true
	s.logger.Info("Player added", "name", name, "players", s.roster.Len())
	return nil
}

// RemovePlayer removes a player, refusing to remove the last one
func (s *Session) RemovePlayer(name string) error {
	if err := s.roster.Remove(name); err != nil {
		return err
	}
	s.changed = true
	s.logger.Info("Player removed", "name", name, "players", s.roster.Len())
	return nil
}

// SetChips replaces a player's chip counts and returns the updated player
func (s *Session) SetChips(name string, counts chips.Counts) (roster.Player, error) {
	if err := counts.Validate(); err != nil {
		return roster.Player{}, err
	}
	if err := s.roster.SetChips(name, counts); err != nil {
		return roster.Player{}, err
	}

	p, err := s.roster.Get(name)
	if err != nil {
		return roster.Player{}, err
	}
	s.logger.Debug("Chips set", "name", name, "chips", counts.Total(), "value", p.Winnings())
	return p, nil
}

// Report values every player's chips against the pot
func (s *Session) Report() roster.Report {
	rep := s.roster.Report(s.pot)
	s.logger.Debug("Winnings reported", "total", rep.Total, "pot", rep.Pot, "status", rep.Status)
	return rep
}

// SetDefaultPot sets the pot to the buy-in times the number of players
func (s *Session) SetDefaultPot() chips.Cents {
	s.pot = chips.Cents(s.roster.Len()) * s.buyIn
	s.logger.Info("Pot set", "pot", s.pot, "mode", "default")
	return s.pot
}

// SetPot sets a custom pot amount
func (s *Session) SetPot(amount chips.Cents) error {
	if amount < 0 {
		return fmt.Errorf("%w: %s", chips.ErrInvalidAmount, amount)
	}
	s.pot = amount
	s.logger.Info("Pot set", "pot", s.pot, "mode", "custom")
	return nil
}

// Exit stops the session and saves the player names if they changed
func (s *Session) Exit() error {
	s.state = Exiting
	s.logger.Info("Session ended", "duration", s.clock.Since(s.started).Round(time.Second), "changed", s.changed)

	if !s.changed || s.saver == nil {
		return nil
	}
	if err := s.saver.Save(s.roster); err != nil {
		return err
	}
	s.changed = false
	return nil
}
