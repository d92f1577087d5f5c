package board

import (
	"github.com/berkgedik92/scrabble-word-finder/tilemapping"
	"github.com/berkgedik92/scrabble-word-finder/trie"
)

// A Line is one row or one column of the board. Its squares are the
// board's own squares, never copies.
type Line struct {
	squares []*Square
	dir     BoardDirection
	index   int
}

func (l *Line) Len() int {
	return len(l.squares)
}

// Index is the row number of a horizontal line or the column number of a
// vertical one.
func (l *Line) Index() int {
	return l.index
}

func (l *Line) Direction() BoardDirection {
	return l.dir
}

func (l *Line) Vertical() bool {
	return l.dir == VerticalDirection
}

func (l *Line) Square(i int) *Square {
	return l.squares[i]
}

// HasLetter returns true if i is on the line and its square is occupied.
func (l *Line) HasLetter(i int) bool {
	return i >= 0 && i < len(l.squares) && !l.squares[i].IsEmpty()
}

// Coords converts a position on the line to board coordinates.
func (l *Line) Coords(i int) (int, int) {
	if l.dir == HorizontalDirection {
		return l.index, i
	}
	return i, l.index
}

// Forbidden returns the letters that may not be placed at i by a play
// along this line.
func (l *Line) Forbidden(i int) tilemapping.LetterSet {
	return l.squares[i].Forbidden(l.dir)
}

// IsAnchor returns true if the square at i is empty and has an occupied
// neighbour on this line. Every play on a non-empty board covers at least
// one anchor.
func (l *Line) IsAnchor(i int) bool {
	if l.HasLetter(i) {
		return false
	}
	return l.HasLetter(i-1) || l.HasLetter(i+1)
}

// TouchingLetters returns the runs of occupied squares immediately before
// and after i. Either may be empty. For
//
//	. A S ? U M . A
//
// with ? at i it returns AS and UM.
func (l *Line) TouchingLetters(i int) (prefix, suffix tilemapping.MachineWord) {
	start := i
	for l.HasLetter(start - 1) {
		start--
	}
	end := i
	for l.HasLetter(end + 1) {
		end++
	}
	prefix = make(tilemapping.MachineWord, 0, i-start)
	for j := start; j < i; j++ {
		prefix = append(prefix, l.squares[j].letter)
	}
	suffix = make(tilemapping.MachineWord, 0, end-i)
	for j := i + 1; j <= end; j++ {
		suffix = append(suffix, l.squares[j].letter)
	}
	return prefix, suffix
}

// FirstEmptyCells returns the last empty position at or before i and the
// first empty position at or after i. They are -1 and Len() respectively
// when the occupied run reaches the edge of the board.
func (l *Line) FirstEmptyCells(i int) (prev int, next int) {
	prev, next = i, i
	for prev >= 0 && !l.squares[prev].IsEmpty() {
		prev--
	}
	for next < len(l.squares) && !l.squares[next].IsEmpty() {
		next++
	}
	return prev, next
}

// UpdateForbiddenLetters recomputes which letters may not be placed at i by
// a play along this line. prefix and suffix are the letters touching i on
// the transverse line: a letter L is forbidden unless prefix+L+suffix is a
// word. With nothing touching, no cross word forms and nothing is forbidden.
func (l *Line) UpdateForbiddenLetters(i int, prefix, suffix tilemapping.MachineWord,
	lex trie.Lexicon, numLetters int) {

	var forbidden tilemapping.LetterSet
	if len(prefix) > 0 || len(suffix) > 0 {
		word := tilemapping.Join(prefix, 0, suffix)
		pos := len(prefix)
		for ml := 0; ml < numLetters; ml++ {
			word[pos] = tilemapping.MachineLetter(ml)
			if !lex.IsWord(word) {
				forbidden.Add(tilemapping.MachineLetter(ml))
			}
		}
	}
	l.squares[i].setForbidden(l.dir, forbidden)
}
