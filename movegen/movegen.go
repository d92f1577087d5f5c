// Package movegen finds every legal placement of rack letters on a board.
//
// The dictionary is a single forward trie, so the search cannot start in
// the middle of a word and grow outwards in both directions the way a
// GADDAG-based generator does. Instead, for each anchor on a line it first
// prepends letters backwards from the anchor (into the empty squares that
// no earlier anchor on the line can reach) and then extends every such
// stem forwards, through any board letters, checking the trie at each
// step.
package movegen

import (
	"github.com/berkgedik92/scrabble-word-finder/board"
	"github.com/berkgedik92/scrabble-word-finder/move"
	"github.com/berkgedik92/scrabble-word-finder/tilemapping"
	"github.com/berkgedik92/scrabble-word-finder/trie"
)

// Generator runs the search. It is not safe for concurrent use; it keeps
// per-search state, and the rack it is handed is modified during the
// search and restored before GenerateAll returns.
type Generator struct {
	lex        trie.Lexicon
	numLetters int

	// per-search state
	rack *tilemapping.Rack
	line *board.Line

	plays        []*move.Move
	playRecorder PlayRecorderFunc
}

// NewGenerator creates a generator for an alphabet of numLetters letters.
func NewGenerator(lex trie.Lexicon, numLetters int) *Generator {
	return &Generator{
		lex:          lex,
		numLetters:   numLetters,
		playRecorder: AllPlaysRecorder,
	}
}

func (gen *Generator) SetPlayRecorder(pr PlayRecorderFunc) {
	gen.playRecorder = pr
}

// Plays returns the moves recorded by the last GenerateAll.
func (gen *Generator) Plays() []*move.Move {
	return gen.plays
}

// GenerateAll finds every legal placement for the rack on the board. On an
// empty board these are the words that fit on the center row, centered;
// otherwise they are the words through at least one anchor, found once
// per row and once per column. The returned slice is reused by the next
// call.
func (gen *Generator) GenerateAll(b *board.GameBoard, rack *tilemapping.Rack) []*move.Move {
	gen.plays = gen.plays[:0]
	gen.rack = rack
	defer func() {
		gen.rack = nil
		gen.line = nil
	}()

	if b.IsEmpty() {
		gen.generateOpening(b)
		return gen.plays
	}
	for i := 0; i < b.Dim(); i++ {
		gen.genLine(b.Row(i))
		gen.genLine(b.Col(i))
	}
	return gen.plays
}

func (gen *Generator) generateOpening(b *board.GameBoard) {
	dim := b.Dim()
	first := len(gen.plays)
	gen.line = b.Row(dim / 2)
	gen.extendForward(nil, 0, false)
	// Every opening word was found starting at the first square; slide it
	// to the middle of the row.
	for i := first; i < len(gen.plays); i++ {
		m := gen.plays[i]
		gen.plays[i] = m.WithStart(m.RowStart(), (dim-m.Len())/2)
	}
}

// genLine finds the plays on one line whose first anchor, scanning from
// the start of the play, is the anchor being visited.
func (gen *Generator) genLine(line *board.Line) {
	gen.line = line
	prevAnchor := -1
	for i := 0; i < line.Len(); i++ {
		if !line.IsAnchor(i) {
			continue
		}
		if line.HasLetter(i - 1) {
			// The squares before the touching run end in an earlier anchor
			// (or the edge), so there is nothing to prepend.
			prefix, _ := line.TouchingLetters(i)
			gen.extendForward(prefix, i, false)
		} else {
			// Squares between the previous anchor and this one are empty
			// and touch nothing on this line.
			gen.extendBackward(nil, i-prevAnchor, i)
		}
		prevAnchor = i
	}
}

// extendBackward grows letters, which ends on the anchor square, by one
// square to the left at a time while budget allows. Every non-empty stem
// that starts a word is handed to extendForward. There is no prefix
// pruning here: a stem that starts no word can still become the tail of a
// longer stem that does.
func (gen *Generator) extendBackward(letters tilemapping.MachineWord, budget int, anchor int) {
	if len(letters) > 0 && gen.lex.IsPrefix(letters) {
		gen.extendForward(letters, anchor+1, true)
	}
	if budget <= 0 {
		return
	}
	forbidden := gen.line.Forbidden(anchor - len(letters))
	for ml := 0; ml < gen.numLetters; ml++ {
		l := tilemapping.MachineLetter(ml)
		if gen.rack.LetArr[ml] == 0 || forbidden.Has(l) {
			continue
		}
		gen.rack.Take(l)
		gen.extendBackward(letters.Prepend(l), budget-1, anchor)
		gen.rack.Add(l)
	}
}

// extendForward appends to letters starting at square idx. Board letters
// are taken as they are; empty squares are filled from the rack. A word is
// recorded when the run can end here and at least one rack letter was
// used.
func (gen *Generator) extendForward(letters tilemapping.MachineWord, idx int, added bool) {
	if !gen.lex.IsPrefix(letters) {
		return
	}
	if gen.line.HasLetter(idx) {
		gen.extendForward(letters.Append(gen.line.Square(idx).Letter()), idx+1, added)
		return
	}
	if added && gen.lex.IsWord(letters) {
		gen.playRecorder(gen, gen.line, letters, idx-len(letters))
	}
	if idx >= gen.line.Len() {
		return
	}
	forbidden := gen.line.Forbidden(idx)
	for ml := 0; ml < gen.numLetters; ml++ {
		l := tilemapping.MachineLetter(ml)
		if gen.rack.LetArr[ml] == 0 || forbidden.Has(l) {
			continue
		}
		gen.rack.Take(l)
		gen.extendForward(letters.Append(l), idx+1, true)
		gen.rack.Add(l)
	}
}
