package roster

import "github.com/lox/pokerpal/internal/chips"

// PotStatus describes how counted winnings compare with the pot
type PotStatus int

const (
	PotUnset PotStatus = iota
	PotOvercounted
	PotUndercounted
	PotBalanced
)

func (s PotStatus) String() string {
	switch s {
	case PotUnset:
		return "unset"
	case PotOvercounted:
		return "overcounted"
	case PotUndercounted:
		return "undercounted"
	case PotBalanced:
		return "balanced"
	default:
		return "unknown"
	}
}

// Line is one player's entry in a Report
type Line struct {
	Name     string
	Winnings chips.Cents
}

// Report is the winnings of every player checked against the pot
type Report struct {
	Lines      []Line
	Total      chips.Cents
	Pot        chips.Cents
	Status     PotStatus
	Difference chips.Cents // always non-negative
}

// Report values every player's chips and compares the total against pot.
// A zero pot is treated as not set.
func (r *Roster) Report(pot chips.Cents) Report {
	rep := Report{Pot: pot, Total: r.Total()}
	for _, p := range r.players[1:] {
		rep.Lines = append(rep.Lines, Line{Name: p.Name, Winnings: p.Winnings()})
	}

	switch {
	case pot == 0:
		rep.Status = PotUnset
		return rep
	case rep.Total > pot:
		rep.Status = PotOvercounted
	case rep.Total < pot:
		rep.Status = PotUndercounted
	default:
		rep.Status = PotBalanced
	}
	rep.Difference = (rep.Total - pot).Abs()
	return rep
}
