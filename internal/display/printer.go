// Package display renders the PokerPal console: banner, roster, menus,
// chip breakdowns and winnings reports. Normal output goes to the out
// writer; errors and warnings go to the err writer.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/pokerpal/internal/chips"
	"github.com/lox/pokerpal/internal/roster"
)

// MenuItems are the main menu entries, numbered from 1
var MenuItems = []string{
	"Add a Player",
	"Remove a Player",
	"Enter Player Chip Amounts",
	"Print Player Winnings",
	"Set Pot",
	"Exit & Save Player List",
}

// Printer writes styled console output
type Printer struct {
	out       io.Writer
	err       io.Writer
	styles    *Styles
	errStyles *Styles
}

// NewPrinter creates a printer writing to out and err
func NewPrinter(out, err io.Writer, color bool) *Printer {
	return &Printer{
		out:       out,
		err:       err,
		styles:    NewStyles(out, color),
		errStyles: NewStyles(err, color),
	}
}

// Banner prints the program title
func (p *Printer) Banner(version string) {
	fmt.Fprintln(p.out, p.styles.Title.Render(" ♠ ♥ POKER PAL ♦ ♣ "))
	fmt.Fprintln(p.out, p.styles.Tagline.Render("A command-line based poker game tool. "+version))
	fmt.Fprintln(p.out)
}

// Players prints the count and names of the loaded players
func (p *Printer) Players(names []string) {
	styled := make([]string, len(names))
	for i, name := range names {
		styled[i] = p.styles.Player.Render(name)
	}
	fmt.Fprintf(p.out, "%d currently loaded players: %s\n\n", len(names), strings.Join(styled, ", "))
}

// Menu prints the main menu
func (p *Printer) Menu() {
	fmt.Fprintln(p.out, p.styles.Heading.Render("Choose an option:"))
	for i, item := range MenuItems {
		fmt.Fprintf(p.out, "%s %s\n", p.styles.Option.Render(fmt.Sprintf("%d.", i+1)), item)
	}
}

// PotMenu prints the pot sub-menu
func (p *Printer) PotMenu(buyIn chips.Cents) {
	fmt.Fprintln(p.out, p.styles.Heading.Render("Choose an option for setting the pot."))
	fmt.Fprintf(p.out, "%s Default - Multiplies the number of players by %.2f.\n",
		p.styles.Option.Render("1."), buyIn.Dollars())
	fmt.Fprintf(p.out, "%s Custom - Specify a custom amount.\n", p.styles.Option.Render("2."))
}

// Prompt prints text without a trailing newline
func (p *Printer) Prompt(text string) {
	fmt.Fprint(p.out, text)
}

// Blank prints an empty line
func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}

// Error prints an error message line
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.err, p.errStyles.Error.Render("ERROR: "+fmt.Sprintf(format, args...)))
}

// Retry prints an error followed by a request for new input on the same line
func (p *Printer) Retry(text string) {
	fmt.Fprint(p.err, p.errStyles.Error.Render("ERROR: "+text)+" ")
}

// Warning prints a warning message line
func (p *Printer) Warning(format string, args ...any) {
	fmt.Fprintln(p.err, p.errStyles.Warning.Render("WARNING: "+fmt.Sprintf(format, args...)))
}

// Info prints a dimmed informational line
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.out, p.styles.Info.Render(fmt.Sprintf(format, args...)))
}

// ChipAmounts prints a player's count and value for every colour
func (p *Printer) ChipAmounts(player roster.Player) {
	fmt.Fprintf(p.out, "Total chip amounts for %s:\n", p.styles.Player.Render(player.Name))
	for _, c := range chips.Colors() {
		fmt.Fprintf(p.out, "%s: %d - %s\n", c.Title(), player.Chips[c], p.money(player.Chips.Value(c)))
	}
}

// Report prints every player's winnings, the total and the pot check
func (p *Printer) Report(rep roster.Report) {
	for _, line := range rep.Lines {
		fmt.Fprintf(p.out, "%s: %s\n", p.styles.Player.Render(line.Name), p.money(line.Winnings))
	}
	fmt.Fprintf(p.out, "Total winnings: %s\n", p.money(rep.Total))
	fmt.Fprintln(p.out)

	switch rep.Status {
	case roster.PotUnset:
		p.Warning("No pot amount is currently set.")
	case roster.PotOvercounted:
		p.Warning("Total winnings exceed the pot amount by %s! Ensure chips haven't been overcounted.", rep.Difference)
	case roster.PotUndercounted:
		p.Warning("Total winnings are less than the pot amount by %s! Ensure chips haven't been undercounted.", rep.Difference)
	}

	fmt.Fprintf(p.out, "Total pot amount: %s\n", p.money(rep.Pot))
}

// PotSet confirms a new pot amount
func (p *Printer) PotSet(pot chips.Cents) {
	fmt.Fprintf(p.out, "Pot set to %s\n", p.money(pot))
}

func (p *Printer) money(c chips.Cents) string {
	return p.styles.Money.Render(c.String())
}
