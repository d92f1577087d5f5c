// Package move holds the candidate placements produced by the move
// generator.
package move

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/berkgedik92/scrabble-word-finder/tilemapping"
)

var ErrBadCoords = errors.New("bad board coordinates")

// Move is a proposed placement: the whole word it forms on its own line,
// letters already on the board included, its first square, and its
// orientation. A Move is never modified once created.
type Move struct {
	word     tilemapping.MachineWord
	rowStart int
	colStart int
	vertical bool
}

var reVertical, reHorizontal *regexp.Regexp

func init() {
	reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
}

// NewMove creates a move. The word is copied.
func NewMove(word tilemapping.MachineWord, row, col int, vertical bool) *Move {
	w := make(tilemapping.MachineWord, len(word))
	copy(w, word)
	return &Move{
		word:     w,
		rowStart: row,
		colStart: col,
		vertical: vertical,
	}
}

// NewMoveFromString creates a move from board game coordinates such as
// "8G" (horizontal) or "G8" (vertical) and a user-visible word.
func NewMoveFromString(coords string, word string, tm *tilemapping.TileMapping) (*Move, error) {
	row, col, vertical, err := FromBoardGameCoords(coords)
	if err != nil {
		return nil, err
	}
	mw, err := tilemapping.ToMachineWord(word, tm)
	if err != nil {
		return nil, err
	}
	if len(mw) == 0 {
		return nil, errors.New("empty word")
	}
	for _, ml := range mw {
		if ml == tilemapping.NoLetter {
			return nil, fmt.Errorf("word %v must spell out every letter", word)
		}
	}
	return &Move{word: mw, rowStart: row, colStart: col, vertical: vertical}, nil
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<move row: %d col: %d vertical: %v word: %v>",
		m.rowStart, m.colStart, m.vertical, m.word)
}

// ShortDescription gives the coordinates and the word, e.g. "8G CAT".
func (m *Move) ShortDescription(tm *tilemapping.TileMapping) string {
	return fmt.Sprintf("%v %v", m.BoardCoords(), m.word.UserVisible(tm))
}

func (m *Move) Word() tilemapping.MachineWord {
	return m.word
}

func (m *Move) Len() int {
	return len(m.word)
}

func (m *Move) RowStart() int {
	return m.rowStart
}

func (m *Move) ColStart() int {
	return m.colStart
}

func (m *Move) Vertical() bool {
	return m.vertical
}

func (m *Move) CoordsAndVertical() (int, int, bool) {
	return m.rowStart, m.colStart, m.vertical
}

// EndRow is the row of the last letter.
func (m *Move) EndRow() int {
	if m.vertical {
		return m.rowStart + len(m.word) - 1
	}
	return m.rowStart
}

// EndCol is the column of the last letter.
func (m *Move) EndCol() int {
	if m.vertical {
		return m.colStart
	}
	return m.colStart + len(m.word) - 1
}

// LetterCoords returns the board coordinates of the i-th letter.
func (m *Move) LetterCoords(i int) (int, int) {
	if m.vertical {
		return m.rowStart + i, m.colStart
	}
	return m.rowStart, m.colStart + i
}

// WithStart returns a copy of the move shifted to a new first square.
func (m *Move) WithStart(row, col int) *Move {
	return &Move{word: m.word, rowStart: row, colStart: col, vertical: m.vertical}
}

func (m *Move) BoardCoords() string {
	return ToBoardGameCoords(m.rowStart, m.colStart, m.vertical)
}

// Equals compares position, orientation, and letters.
func (m *Move) Equals(o *Move) bool {
	return m.rowStart == o.rowStart && m.colStart == o.colStart &&
		m.vertical == o.vertical && m.word.Equal(o.word)
}

// ToBoardGameCoords renders coordinates the way players write them: row
// number first for a horizontal play, column letter first for a vertical
// one.
func ToBoardGameCoords(row int, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(int(row + 1))
	var coords string
	if vertical {
		coords = colCoords + rowCoords
	} else {
		coords = rowCoords + colCoords
	}
	return coords
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords above.
func FromBoardGameCoords(c string) (int, int, bool, error) {
	vMatches := reVertical.FindStringSubmatch(c)
	if len(vMatches) == 3 {
		row, err := strconv.Atoi(vMatches[2])
		if err != nil || row < 1 {
			return 0, 0, false, fmt.Errorf("%w: %v", ErrBadCoords, c)
		}
		return row - 1, int(vMatches[1][0] - 'A'), true, nil
	}
	hMatches := reHorizontal.FindStringSubmatch(c)
	if len(hMatches) == 3 {
		row, err := strconv.Atoi(hMatches[1])
		if err != nil || row < 1 {
			return 0, 0, false, fmt.Errorf("%w: %v", ErrBadCoords, c)
		}
		return row - 1, int(hMatches[2][0] - 'A'), false, nil
	}
	return 0, 0, false, fmt.Errorf("%w: %v", ErrBadCoords, c)
}
