// Package chips values physical poker chips.
//
// Chip values are fixed per colour and money is carried as integer cents so
// that totals and pot comparisons are exact.
package chips

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Color identifies a chip colour. Colours are ordered by value.
type Color uint8

// Chip colours in the fixed order they are entered and displayed
const (
	White Color = iota
	Red
	Blue
	Green
	Black

	NumColors = 5
)

// MaxCount is the most chips of a single colour a player can hold. It keeps
// every Winnings and roster total well inside the range of Cents.
const MaxCount = math.MaxInt32

// ErrInvalidCount is returned for a chip count below zero or above MaxCount
var ErrInvalidCount = errors.New("invalid chip count")

var colorNames = [NumColors]string{"white", "red", "blue", "green", "black"}

// Value of a single chip of each colour, in cents
var colorValues = [NumColors]Cents{1, 5, 10, 25, 100}

// Colors returns every colour in entry order.
func Colors() []Color {
	return []Color{White, Red, Blue, Green, Black}
}

// String returns the lower-case colour name
func (c Color) String() string {
	if int(c) >= NumColors {
		return fmt.Sprintf("color(%d)", c)
	}
	return colorNames[c]
}

// Title returns the capitalised colour name, e.g. "White"
func (c Color) Title() string {
	s := c.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Value returns the value of one chip of this colour
func (c Color) Value() Cents {
	if int(c) >= NumColors {
		return 0
	}
	return colorValues[c]
}

// Counts holds the number of chips a player has of each colour
type Counts [NumColors]int

// Value returns the money value of the chips held in colour c
func (cs Counts) Value(c Color) Cents {
	return Cents(cs[c]) * c.Value()
}

// Validate checks that every count is between 0 and MaxCount
func (cs Counts) Validate() error {
	for _, c := range Colors() {
		if !ValidCount(cs[c]) {
			return fmt.Errorf("%w: %d %s", ErrInvalidCount, cs[c], c)
		}
	}
	return nil
}

// ValidCount reports whether n chips of one colour is an acceptable count
func ValidCount(n int) bool {
	return n >= 0 && n <= MaxCount
}

// Total returns the number of chips across all colours
func (cs Counts) Total() int {
	n := 0
	for _, v := range cs {
		n += v
	}
	return n
}

// Winnings returns the summed value of all chips in cs.
func Winnings(cs Counts) Cents {
	var total Cents
	for _, c := range Colors() {
		total += cs.Value(c)
	}
	return total
}
