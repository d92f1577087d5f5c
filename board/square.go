package board

import (
	"fmt"
	"os"

	"github.com/berkgedik92/scrabble-word-finder/tilemapping"
)

var (
	ColorSupport = os.Getenv("WORDFINDER_DISABLE_COLOR") != "on"
)

// A BonusSquare is a bonus square (duh)
type BonusSquare rune

const (
	// NoBonus is a plain square.
	NoBonus BonusSquare = ' '
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = '='
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '\''
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = '-'
)

// Valid returns true for the bonus markings we understand.
func (b BonusSquare) Valid() bool {
	switch b {
	case NoBonus, Bonus2LS, Bonus3LS, Bonus2WS, Bonus3WS:
		return true
	}
	return false
}

// LetterMultiplier is how many times a newly placed letter counts.
func (b BonusSquare) LetterMultiplier() int {
	switch b {
	case Bonus2LS:
		return 2
	case Bonus3LS:
		return 3
	}
	return 1
}

// WordMultiplier is the factor applied to a word covering this square with
// a new letter.
func (b BonusSquare) WordMultiplier() int {
	switch b {
	case Bonus2WS:
		return 2
	case Bonus3WS:
		return 3
	}
	return 1
}

func (b BonusSquare) String() string {
	switch b {
	case Bonus2LS:
		return "2LS"
	case Bonus3LS:
		return "3LS"
	case Bonus2WS:
		return "2WS"
	case Bonus3WS:
		return "3WS"
	}
	return "none"
}

func (b BonusSquare) displayString() string {
	if !ColorSupport {
		return string(b)
	}
	switch b {
	case Bonus3WS:
		return fmt.Sprintf("\033[31m%s\033[0m", string(b))
	case Bonus2WS:
		return fmt.Sprintf("\033[35m%s\033[0m", string(b))
	case Bonus3LS:
		return fmt.Sprintf("\033[34m%s\033[0m", string(b))
	case Bonus2LS:
		return fmt.Sprintf("\033[36m%s\033[0m", string(b))
	default:
		return " "
	}
}

// A Square is a single square in a game board. It contains the bonus
// marking, if any, a letter, if any, and the letters that may not be placed
// on it in each direction. A square is shared by its row line and its
// column line; both see every change.
type Square struct {
	letter tilemapping.MachineLetter
	bonus  BonusSquare

	// hforbidden holds the letters that would form an invalid vertical
	// word if placed here as part of a horizontal play; vforbidden is the
	// transverse.
	hforbidden tilemapping.LetterSet
	vforbidden tilemapping.LetterSet
}

func (s Square) String() string {
	return fmt.Sprintf("<(%v) (%s)>", s.letter, string(s.bonus))
}

func (s Square) Info() string {
	return fmt.Sprintf("[let %v bonus %v hf %b vf %b]",
		s.letter, s.bonus, s.hforbidden, s.vforbidden)
}

func (s *Square) Letter() tilemapping.MachineLetter {
	return s.letter
}

func (s *Square) Bonus() BonusSquare {
	return s.bonus
}

func (s *Square) IsEmpty() bool {
	return s.letter == tilemapping.NoLetter
}

// Forbidden returns the letters that may not be placed here when playing in
// the given direction.
func (s *Square) Forbidden(dir BoardDirection) tilemapping.LetterSet {
	if dir == HorizontalDirection {
		return s.hforbidden
	}
	return s.vforbidden
}

func (s *Square) setForbidden(dir BoardDirection, ls tilemapping.LetterSet) {
	if dir == HorizontalDirection {
		s.hforbidden = ls
	} else {
		s.vforbidden = ls
	}
}

// place puts a letter on the square. Bonuses only apply to the first
// letter placed on a square, so the bonus is cleared for good.
func (s *Square) place(ml tilemapping.MachineLetter) {
	s.letter = ml
	s.bonus = NoBonus
}

func (s *Square) reset(bonus BonusSquare) {
	s.letter = tilemapping.NoLetter
	s.bonus = bonus
	s.hforbidden = 0
	s.vforbidden = 0
}

func (s Square) DisplayString(tm *tilemapping.TileMapping) string {
	if s.letter == tilemapping.NoLetter {
		return s.bonus.displayString()
	}
	return string(s.letter.UserVisible(tm))
}
