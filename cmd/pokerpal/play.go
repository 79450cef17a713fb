package main

import (
	"errors"
	"fmt"

	"github.com/lox/pokerpal/internal/console"
	"github.com/lox/pokerpal/internal/roster"
	"github.com/lox/pokerpal/internal/session"
	"github.com/lox/pokerpal/internal/sessionid"
)

// PlayCmd runs the interactive menu
type PlayCmd struct{}

func (cmd *PlayCmd) Run(g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}
	defer a.close()

	a.printer.Banner(version)

	r, skipped, err := a.store.Load()
	switch {
	case errors.Is(err, roster.ErrMissingFile):
		a.printer.Warning("Missing '%s' file!", a.store.Path())
	case err != nil:
		return err
	}
	warnSkipped(a, skipped)

	id, err := sessionid.NewGenerator(a.clock, nil).New()
	if err != nil {
		return err
	}

	s := session.New(r, session.Options{
		ID:     id,
		Saver:  a.store,
		BuyIn:  a.cfg.BuyIn(),
		Clock:  a.clock,
		Logger: a.logger,
	})
	a.logger.Info("Session started", "session", s.ID(), "players", r.Len(), "file", a.store.Path())

	if err := s.Run(console.NewPrompter(a.stdin, a.printer), a.printer); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}
	return nil
}
