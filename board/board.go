package board

import (
	"fmt"

	"github.com/berkgedik92/scrabble-word-finder/tilemapping"
	"github.com/berkgedik92/scrabble-word-finder/trie"
)

type BoardDirection uint8

func (bd BoardDirection) String() string {
	if bd == HorizontalDirection {
		return "(horizontal)"
	} else if bd == VerticalDirection {
		return "(vertical)"
	}
	return "none"
}

// Other returns the transverse direction.
func (bd BoardDirection) Other() BoardDirection {
	if bd == HorizontalDirection {
		return VerticalDirection
	}
	return HorizontalDirection
}

const (
	HorizontalDirection BoardDirection = iota
	VerticalDirection
)

// A GameBoard is the main board structure. It owns all of the Squares in a
// single row-major arena; the row and column Lines hold pointers into that
// arena, so a letter placed through one line is seen by the other.
type GameBoard struct {
	dim     int
	squares []Square
	rows    []*Line
	cols    []*Line
	// bonuses is the initial layout, kept so that the board can be cleared.
	bonuses  []BonusCell
	hasTiles bool // has at least one tile been placed?
}

// NewBoard creates an empty dim x dim board with the given bonus squares.
func NewBoard(dim int, bonuses []BonusCell) (*GameBoard, error) {
	if dim < 1 {
		return nil, fmt.Errorf("board dimension must be positive, got %d", dim)
	}
	g := &GameBoard{
		dim:     dim,
		squares: make([]Square, dim*dim),
		rows:    make([]*Line, dim),
		cols:    make([]*Line, dim),
	}
	for _, bc := range bonuses {
		if !g.PosExists(bc.Row, bc.Col) {
			return nil, fmt.Errorf("bonus cell (%d, %d) is off the board", bc.Row, bc.Col)
		}
		if !bc.Bonus.Valid() {
			return nil, fmt.Errorf("bonus cell (%d, %d) has unknown bonus %q", bc.Row, bc.Col, rune(bc.Bonus))
		}
	}
	g.bonuses = append([]BonusCell(nil), bonuses...)

	for i := 0; i < dim; i++ {
		g.rows[i] = &Line{squares: make([]*Square, dim), dir: HorizontalDirection, index: i}
		g.cols[i] = &Line{squares: make([]*Square, dim), dir: VerticalDirection, index: i}
	}
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			sq := &g.squares[g.GetSqIdx(row, col)]
			g.rows[row].squares[col] = sq
			g.cols[col].squares[row] = sq
		}
	}
	g.Clear()
	return g, nil
}

// MakeBoard creates a board from a description string.
func MakeBoard(desc []string) (*GameBoard, error) {
	dim, bonuses, err := ParseLayout(desc)
	if err != nil {
		return nil, err
	}
	return NewBoard(dim, bonuses)
}

// Dim is the dimension of the board. It assumes the board is square.
func (g *GameBoard) Dim() int {
	return g.dim
}

func (g *GameBoard) GetSqIdx(row, col int) int {
	return row*g.dim + col
}

func (g *GameBoard) PosExists(row int, col int) bool {
	return row >= 0 && row < g.dim && col >= 0 && col < g.dim
}

func (g *GameBoard) GetSquare(row int, col int) *Square {
	return &g.squares[g.GetSqIdx(row, col)]
}

func (g *GameBoard) GetBonus(row int, col int) BonusSquare {
	return g.GetSquare(row, col).bonus
}

func (g *GameBoard) GetLetter(row int, col int) tilemapping.MachineLetter {
	return g.GetSquare(row, col).letter
}

func (g *GameBoard) HasLetter(row int, col int) bool {
	return !g.GetSquare(row, col).IsEmpty()
}

// Row returns the horizontal line with the given index.
func (g *GameBoard) Row(idx int) *Line {
	return g.rows[idx]
}

// Col returns the vertical line with the given index.
func (g *GameBoard) Col(idx int) *Line {
	return g.cols[idx]
}

// Line returns the line in the given direction.
func (g *GameBoard) Line(dir BoardDirection, idx int) *Line {
	if dir == HorizontalDirection {
		return g.rows[idx]
	}
	return g.cols[idx]
}

// PlaceLetter puts a letter on a square and clears its bonus. It does not
// update any forbidden-letter sets; see UpdateForbiddenLettersAt.
func (g *GameBoard) PlaceLetter(row int, col int, ml tilemapping.MachineLetter) {
	g.GetSquare(row, col).place(ml)
	g.hasTiles = true
}

// UpdateForbiddenLettersAt recomputes both forbidden-letter sets of one
// square from the letters currently touching it. The set used by vertical
// plays depends on the horizontal neighbours and vice versa.
func (g *GameBoard) UpdateForbiddenLettersAt(row int, col int, lex trie.Lexicon, numLetters int) {
	prefix, suffix := g.rows[row].TouchingLetters(col)
	g.cols[col].UpdateForbiddenLetters(row, prefix, suffix, lex, numLetters)

	prefix, suffix = g.cols[col].TouchingLetters(row)
	g.rows[row].UpdateForbiddenLetters(col, prefix, suffix, lex, numLetters)
}

// IsEmpty returns if the board is empty.
func (g *GameBoard) IsEmpty() bool {
	return !g.hasTiles
}

// Clear removes every letter, restores the initial bonus layout, and
// allows every letter everywhere.
func (g *GameBoard) Clear() {
	for i := range g.squares {
		g.squares[i].reset(NoBonus)
	}
	for _, bc := range g.bonuses {
		g.GetSquare(bc.Row, bc.Col).bonus = bc.Bonus
	}
	g.hasTiles = false
}

// TilesPlayed counts the occupied squares.
func (g *GameBoard) TilesPlayed() int {
	ct := 0
	for i := range g.squares {
		if !g.squares[i].IsEmpty() {
			ct++
		}
	}
	return ct
}

// UpdateAllForbiddenLetters recomputes the forbidden-letter sets of every
// empty square. Occupied squares never take a letter, so theirs are left
// alone.
func (g *GameBoard) UpdateAllForbiddenLetters(lex trie.Lexicon, numLetters int) {
	for row := 0; row < g.dim; row++ {
		for col := 0; col < g.dim; col++ {
			if g.HasLetter(row, col) {
				continue
			}
			g.UpdateForbiddenLettersAt(row, col, lex, numLetters)
		}
	}
}
