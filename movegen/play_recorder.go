package movegen

import (
	"github.com/berkgedik92/scrabble-word-finder/board"
	"github.com/berkgedik92/scrabble-word-finder/move"
	"github.com/berkgedik92/scrabble-word-finder/tilemapping"
)

// A PlayRecorderFunc is called for every legal placement the generator
// finds. word is the whole run on the line, board letters included, and
// start is its first position on the line. word must not be retained past
// the call without copying.
type PlayRecorderFunc func(gen *Generator, line *board.Line, word tilemapping.MachineWord, start int)

// NullPlayRecorder drops every play. Useful for timing the search alone.
func NullPlayRecorder(gen *Generator, line *board.Line, word tilemapping.MachineWord, start int) {
}

// AllPlaysRecorder turns every play into a move.Move.
func AllPlaysRecorder(gen *Generator, line *board.Line, word tilemapping.MachineWord, start int) {
	row, col := line.Coords(start)
	gen.plays = append(gen.plays, move.NewMove(word, row, col, line.Vertical()))
}
