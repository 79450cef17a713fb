package main

import (
	"errors"
	"fmt"

	"github.com/lox/pokerpal/internal/roster"
)

// PlayersCmd groups the non-interactive player list commands
type PlayersCmd struct {
	List   PlayersListCmd   `cmd:"" default:"1" help:"Show saved players"`
	Add    PlayersAddCmd    `cmd:"" help:"Add players to the saved list"`
	Remove PlayersRemoveCmd `cmd:"" help:"Remove a player from the saved list"`
}

// PlayersListCmd prints the saved names
type PlayersListCmd struct{}

func (cmd *PlayersListCmd) Run(g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}
	defer a.close()

	r, err := loadRoster(a)
	if err != nil {
		return err
	}

	a.printer.Players(r.Names())
	return nil
}

// PlayersAddCmd appends names to the saved list
type PlayersAddCmd struct {
	Names []string `arg:"" name:"name" help:"Names of the players to add"`
}

func (cmd *PlayersAddCmd) Run(g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}
	defer a.close()

	r, err := loadRoster(a)
	if err != nil {
		return err
	}

	for _, name := range cmd.Names {
		if err := r.Add(name); err != nil {
			return fmt.Errorf("cannot add player: %w", err)
		}
	}
	if err := a.store.Save(r); err != nil {
		return err
	}

	a.logger.Info("Players added", "names", cmd.Names, "players", r.Len())
	a.printer.Players(r.Names())
	return nil
}

// PlayersRemoveCmd deletes a name from the saved list
type PlayersRemoveCmd struct {
	Name string `arg:"" name:"name" help:"Name of the player to remove"`
}

func (cmd *PlayersRemoveCmd) Run(g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}
	defer a.close()

	r, err := loadRoster(a)
	if err != nil {
		return err
	}

	if err := r.Remove(cmd.Name); err != nil {
		return fmt.Errorf("cannot remove player: %w", err)
	}
	if err := a.store.Save(r); err != nil {
		return err
	}

	a.logger.Info("Player removed", "name", cmd.Name, "players", r.Len())
	a.printer.Players(r.Names())
	return nil
}

// loadRoster reads the players file. A missing file starts an empty list.
func loadRoster(a *app) (*roster.Roster, error) {
	r, skipped, err := a.store.Load()
	if errors.Is(err, roster.ErrMissingFile) {
		a.printer.Warning("Missing '%s' file, starting a new player list.", a.store.Path())
		return r, nil
	}
	warnSkipped(a, skipped)
	return r, err
}

// warnSkipped tells the user about players file lines that were not loaded
func warnSkipped(a *app, skipped []string) {
	for _, name := range skipped {
		a.printer.Warning("Ignoring invalid or repeated player '%s' in '%s'; it will be dropped when the list is saved.", name, a.store.Path())
	}
}
