package session

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerpal/internal/chips"
	"github.com/lox/pokerpal/internal/console"
	"github.com/lox/pokerpal/internal/display"
	"github.com/lox/pokerpal/internal/roster"
)

type runResult struct {
	session *Session
	saver   *recordingSaver
	out     string
	errOut  string
	err     error
}

func runScript(t *testing.T, names []string, script ...string) runResult {
	t.Helper()
	s, saver := newTestSession(t, names...)

	var out, errOut bytes.Buffer
	printer := display.NewPrinter(&out, &errOut, false)
	prompter := console.NewPrompter(strings.NewReader(strings.Join(script, "\n")+"\n"), printer)

	err := s.Run(prompter, printer)
	return runResult{session: s, saver: saver, out: out.String(), errOut: errOut.String(), err: err}
}

func TestRunAddAndExit(t *testing.T) {
	res := runScript(t, []string{"Alice"},
		"1", "Alice", "NONE", "Bob",
		"6",
	)
	require.NoError(t, res.err)

	assert.Equal(t, 2, strings.Count(res.errOut, "Name is not allowed or taken!"))
	assert.Contains(t, res.out, "1 currently loaded players: Alice")
	assert.Contains(t, res.out, "2 currently loaded players: Alice, Bob")
	assert.Equal(t, [][]string{{"Alice", "Bob"}}, res.saver.saved)
	assert.Equal(t, Exiting, res.session.State())
}

func TestRunRemoveLastPlayerRefused(t *testing.T) {
	res := runScript(t, []string{"Alice"},
		"2", "Zed", "Alice",
		"6",
	)
	require.NoError(t, res.err)

	assert.Contains(t, res.errOut, "ERROR: Player not found! Please enter a valid name:")
	assert.Contains(t, res.errOut, "ERROR: Must be at least one player!")
	assert.Equal(t, []string{"Alice"}, res.session.Roster().Names())
	assert.Empty(t, res.saver.saved, "nothing changed so nothing is saved")
}

func TestRunRemovePlayer(t *testing.T) {
	res := runScript(t, []string{"Alice", "Bob", "Carol"},
		"2", "Bob",
		"6",
	)
	require.NoError(t, res.err)
	assert.Equal(t, [][]string{{"Alice", "Carol"}}, res.saver.saved)
}

func TestRunEditChipsAndReport(t *testing.T) {
	res := runScript(t, []string{"Alice"},
		"3", "Alice", "4", "x", "0", "0", "0", "1",
		"5", "2", "1.00",
		"4",
		"6",
	)
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "Enter the number of white chips: ")
	assert.Contains(t, res.out, "Enter the number of black chips: ")
	assert.Contains(t, res.errOut, "Invalid amount! Enter a valid number of chips:")
	assert.Contains(t, res.out, "White: 4 - $0.04\n")
	assert.Contains(t, res.out, "Black: 1 - $1.00\n")
	assert.Contains(t, res.out, "Pot set to $1.00\n")
	assert.Contains(t, res.out, "Alice: $1.04\n")
	assert.Contains(t, res.out, "Total winnings: $1.04\n")
	assert.Contains(t, res.out, "Total pot amount: $1.00\n")
	assert.Contains(t, res.errOut, "exceed the pot amount by $0.04! Ensure chips haven't been overcounted.")
	assert.Empty(t, res.saver.saved)
}

func TestRunEditUnknownPlayer(t *testing.T) {
	res := runScript(t, []string{"Alice"},
		"3", "Zed",
		"6",
	)
	require.NoError(t, res.err)

	assert.Contains(t, res.errOut, "ERROR: Player 'Zed' not found!")
	assert.NotContains(t, res.out, "Enter the number of white chips")
}

func TestRunDefaultPot(t *testing.T) {
	res := runScript(t, []string{"Alice", "Bob"},
		"5", "3", "1",
		"4",
		"6",
	)
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "Default - Multiplies the number of players by 10.25.")
	assert.Contains(t, res.errOut, "ERROR: Please enter a valid menu option:")
	assert.Contains(t, res.out, "Pot set to $20.50\n")
	assert.Contains(t, res.errOut, "less than the pot amount by $20.50")
	assert.Equal(t, chips.Cents(2050), res.session.Pot())
}

func TestRunReportWithoutPot(t *testing.T) {
	res := runScript(t, []string{"Alice"}, "4", "6")
	require.NoError(t, res.err)

	assert.Contains(t, res.errOut, "WARNING: No pot amount is currently set.")
	assert.Contains(t, res.out, "Total pot amount: $0.00")
}

func TestRunInvalidMenuChoice(t *testing.T) {
	res := runScript(t, []string{"Alice"}, "0", "9", "menu", "6")
	require.NoError(t, res.err)
	assert.Equal(t, 3, strings.Count(res.errOut, "Please enter a valid menu option:"))
}

func TestRunClosedInputSaves(t *testing.T) {
	res := runScript(t, []string{"Alice"}, "1", "Bob")
	require.NoError(t, res.err)

	assert.Equal(t, Exiting, res.session.State())
	assert.Equal(t, [][]string{{"Alice", "Bob"}}, res.saver.saved)
}

func TestRunEmptyRoster(t *testing.T) {
	res := runScript(t, nil, "1", "Alice")
	require.NoError(t, res.err)

	assert.NotContains(t, res.out, "Choose an option:")
	assert.Contains(t, res.out, "pokerpal players add")
	assert.Equal(t, 0, res.session.Roster().Len())
}

func TestRunPersistsThroughStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.txt")
	require.NoError(t, os.WriteFile(path, []byte("Alice\nBob"), 0644))

	store := roster.NewStore(path, quietLogger())
	r, _, err := store.Load()
	require.NoError(t, err)

	s := New(r, Options{Saver: store, BuyIn: 1025, Clock: quartz.NewMock(t), Logger: quietLogger()})

	var out, errOut bytes.Buffer
	printer := display.NewPrinter(&out, &errOut, false)
	script := "1\nCarol\n2\nAlice\n3\nBob\n1\n2\n3\n4\n5\n6\n"
	require.NoError(t, s.Run(console.NewPrompter(strings.NewReader(script), printer), printer))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Bob\nCarol", string(data))

	reloaded, _, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob", "Carol"}, reloaded.Names())
	for _, p := range reloaded.Players() {
		assert.Equal(t, chips.Counts{}, p.Chips)
	}
}
