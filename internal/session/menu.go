package session

import (
	"errors"
	"fmt"

	"github.com/lox/pokerpal/internal/chips"
	"github.com/lox/pokerpal/internal/console"
	"github.com/lox/pokerpal/internal/display"
	"github.com/lox/pokerpal/internal/roster"
)

// MenuOption is an entry of the main menu
type MenuOption int

const (
	OptionAddPlayer MenuOption = iota + 1
	OptionRemovePlayer
	OptionEditChips
	OptionReport
	OptionSetPot
	OptionExit
)

// Pot sub-menu entries
const (
	potDefault = 1
	potCustom  = 2
)

// Run drives the session from the console until the user exits or no players
// remain. Closing the input is treated like choosing Exit.
func (s *Session) Run(in *console.Prompter, out *display.Printer) error {
	for !s.Done() {
		out.Players(s.roster.Names())
		out.Menu()

		choice, err := in.Choice(int(OptionAddPlayer), int(OptionExit))
		if err != nil {
			return s.inputFailed(err)
		}
		out.Blank()

		if err := s.dispatch(MenuOption(choice), in, out); err != nil {
			return s.inputFailed(err)
		}
	}

	if s.roster.Len() == 0 {
		out.Info("No players loaded. Add some with `pokerpal players add NAME...`.")
	}
	return nil
}

func (s *Session) dispatch(opt MenuOption, in *console.Prompter, out *display.Printer) error {
	s.logger.Debug("Menu option chosen", "option", int(opt))

	switch opt {
	case OptionAddPlayer:
		return s.runAddPlayer(in, out)
	case OptionRemovePlayer:
		return s.runRemovePlayer(in, out)
	case OptionEditChips:
		return s.runEditChips(in, out)
	case OptionReport:
		out.Report(s.Report())
		out.Blank()
		return nil
	case OptionSetPot:
		return s.runSetPot(in, out)
	case OptionExit:
		return s.Exit()
	default:
		return fmt.Errorf("unknown menu option %d", opt)
	}
}

func (s *Session) runAddPlayer(in *console.Prompter, out *display.Printer) error {
	name, err := in.Name(
		"Enter the name of the new player (no spaces): ",
		"Name is not allowed or taken! Please enter a different name:",
		func(name string) error {
			if err := roster.ValidateName(name); err != nil {
				return err
			}
			if s.roster.Exists(name) {
				return roster.ErrDuplicateName
			}
			return nil
		},
	)
	if err != nil {
		return err
	}

	if err := s.AddPlayer(name); err != nil {
		out.Error("%v", err)
	}
	out.Blank()
	return nil
}

func (s *Session) runRemovePlayer(in *console.Prompter, out *display.Printer) error {
	name, err := in.Name(
		"Enter the name of the player to remove: ",
		"Player not found! Please enter a valid name:",
		func(name string) error {
			if !s.roster.Exists(name) {
				return roster.ErrPlayerNotFound
			}
			return nil
		},
	)
	if err != nil {
		return err
	}

	switch err := s.RemovePlayer(name); {
	case errors.Is(err, roster.ErrLastPlayer):
		out.Error("Must be at least one player!")
	case err != nil:
		out.Error("%v", err)
	}
	out.Blank()
	return nil
}

func (s *Session) runEditChips(in *console.Prompter, out *display.Printer) error {
	name, err := in.Word("Enter the name of the player to edit: ")
	if err != nil {
		return err
	}

	if _, ok := s.roster.Lookup(name); !ok {
		out.Error("Player '%s' not found!", name)
		out.Blank()
		return nil
	}

	var counts chips.Counts
	for _, c := range chips.Colors() {
		n, err := in.Count(fmt.Sprintf("Enter the number of %s chips: ", c))
		if err != nil {
			return err
		}
		counts[c] = n
	}

	p, err := s.SetChips(name, counts)
	if err != nil {
		out.Error("%v", err)
		out.Blank()
		return nil
	}

	out.Blank()
	out.ChipAmounts(p)
	out.Blank()
	return nil
}

func (s *Session) runSetPot(in *console.Prompter, out *display.Printer) error {
	out.PotMenu(s.buyIn)

	choice, err := in.Choice(potDefault, potCustom)
	if err != nil {
		return err
	}

	switch choice {
	case potDefault:
		s.SetDefaultPot()
	case potCustom:
		amount, err := in.Amount("Enter the desired pot amount (xx.xx): ")
		if err != nil {
			return err
		}
		if err := s.SetPot(amount); err != nil {
			out.Error("%v", err)
		}
	}

	out.PotSet(s.pot)
	out.Blank()
	return nil
}

// inputFailed handles an error from the console. A closed input ends the
// session as if Exit was chosen.
func (s *Session) inputFailed(err error) error {
	if !errors.Is(err, console.ErrClosed) {
		return err
	}
	s.logger.Warn("Input closed, exiting")
	return s.Exit()
}
