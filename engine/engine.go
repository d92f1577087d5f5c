// Package engine ties the board, the rack, the dictionary, and the letter
// values together. It finds and scores candidate plays and commits letters
// to the board, keeping the forbidden-letter sets of the squares around
// each committed letter up to date.
package engine

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/berkgedik92/scrabble-word-finder/board"
	"github.com/berkgedik92/scrabble-word-finder/move"
	"github.com/berkgedik92/scrabble-word-finder/movegen"
	"github.com/berkgedik92/scrabble-word-finder/tilemapping"
	"github.com/berkgedik92/scrabble-word-finder/trie"
)

var ErrInvalidArgument = errors.New("invalid argument")

// A Suggestion is a candidate play and what it would score right now.
type Suggestion struct {
	Move  *move.Move
	Score int
}

// Engine owns one board and one rack. It is not safe for concurrent use:
// a search must never overlap a commit.
type Engine struct {
	board *board.GameBoard
	dist  *tilemapping.LetterDistribution
	lex   trie.Lexicon
	rack  *tilemapping.Rack
	gen   *movegen.Generator
}

// New creates an engine with an empty dim x dim board. The alphabet and the
// letter values come from dist; lex must be built over the same alphabet.
func New(dim int, dist *tilemapping.LetterDistribution, lex trie.Lexicon,
	bonuses []board.BonusCell) (*Engine, error) {

	if dist == nil || lex == nil {
		return nil, fmt.Errorf("%w: engine needs a letter distribution and a lexicon", ErrInvalidArgument)
	}
	b, err := board.NewBoard(dim, bonuses)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return &Engine{
		board: b,
		dist:  dist,
		lex:   lex,
		rack:  tilemapping.NewRack(dist.TileMapping()),
		gen:   movegen.NewGenerator(lex, dist.NumLetters()),
	}, nil
}

func (e *Engine) Dim() int {
	return e.board.Dim()
}

func (e *Engine) Board() *board.GameBoard {
	return e.board
}

func (e *Engine) LetterDistribution() *tilemapping.LetterDistribution {
	return e.dist
}

func (e *Engine) TileMapping() *tilemapping.TileMapping {
	return e.dist.TileMapping()
}

func (e *Engine) IsBoardEmpty() bool {
	return e.board.IsEmpty()
}

// Rack returns a copy of the current rack.
func (e *Engine) Rack() *tilemapping.Rack {
	return e.rack.Copy()
}

// Letter returns the letter at a square, or tilemapping.NoLetter.
func (e *Engine) Letter(row, col int) (tilemapping.MachineLetter, error) {
	if err := e.checkPos(row, col); err != nil {
		return tilemapping.NoLetter, err
	}
	return e.board.GetLetter(row, col), nil
}

// Bonus returns the bonus of a square. Occupied squares have none.
func (e *Engine) Bonus(row, col int) (board.BonusSquare, error) {
	if err := e.checkPos(row, col); err != nil {
		return board.NoBonus, err
	}
	return e.board.GetBonus(row, col), nil
}

func (e *Engine) checkPos(row, col int) error {
	if !e.board.PosExists(row, col) {
		return fmt.Errorf("%w: square (%d, %d) is off the %dx%d board",
			ErrInvalidArgument, row, col, e.board.Dim(), e.board.Dim())
	}
	return nil
}

func (e *Engine) checkLetter(ml tilemapping.MachineLetter) error {
	if int(ml) >= e.dist.NumLetters() {
		return fmt.Errorf("%w: letter %d is outside the alphabet", ErrInvalidArgument, ml)
	}
	return nil
}

// SetRack replaces the rack with the given letter counts.
func (e *Engine) SetRack(counts map[tilemapping.MachineLetter]int) error {
	for ml, ct := range counts {
		if err := e.checkLetter(ml); err != nil {
			return err
		}
		if ct < 0 {
			return fmt.Errorf("%w: negative count %d for letter %c",
				ErrInvalidArgument, ct, ml.UserVisible(e.TileMapping()))
		}
		if ct > int(e.dist.Distribution()[ml]) {
			// Allowed, but no real bag holds this many.
			log.Warn().Str("letter", string(ml.UserVisible(e.TileMapping()))).
				Int("count", ct).Int("in-bag", int(e.dist.Distribution()[ml])).
				Msg("rack-holds-more-tiles-than-the-bag")
		}
	}
	e.rack.SetCounts(counts)
	return nil
}

// SetRackString sets the rack from user-visible letters, e.g. "CAT".
func (e *Engine) SetRackString(letters string) error {
	r, err := tilemapping.RackFromString(letters, e.TileMapping())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return e.SetRack(r.Counts())
}

// FindCandidates returns every legal play for the current rack, best score
// first. Equal scores are ordered by row, column, orientation (horizontal
// first), then letters. An empty result is not an error.
func (e *Engine) FindCandidates() []Suggestion {
	start := time.Now()
	plays := e.gen.GenerateAll(e.board, e.rack)
	sugs := lo.Map(plays, func(m *move.Move, _ int) Suggestion {
		return Suggestion{Move: m, Score: e.ComputePoint(m)}
	})
	slices.SortFunc(sugs, compareSuggestions)
	log.Debug().Int("candidates", len(sugs)).Str("rack", e.rack.String()).
		Dur("elapsed", time.Since(start)).Msg("found-candidates")
	return sugs
}

func compareSuggestions(a, b Suggestion) int {
	return lo.CoalesceOrEmpty(
		cmp.Compare(b.Score, a.Score),
		cmp.Compare(a.Move.RowStart(), b.Move.RowStart()),
		cmp.Compare(a.Move.ColStart(), b.Move.ColStart()),
		cmp.Compare(lo.Ternary(a.Move.Vertical(), 1, 0), lo.Ternary(b.Move.Vertical(), 1, 0)),
		a.Move.Word().Compare(b.Move.Word()),
	)
}

// ComputePoint scores a play against the current board. The move must lie
// on the board and agree with its letters; ScoreMove checks both. Bonuses
// count only under squares that are empty now, that is, under the letters
// the play would add.
func (e *Engine) ComputePoint(m *move.Move) int {
	mainScore := 0
	wordMultiplier := 1
	crossScores := 0
	for i, ml := range m.Word() {
		row, col := m.LetterCoords(i)
		sq := e.board.GetSquare(row, col)
		ls := e.dist.Score(ml)
		mainScore += ls
		if !sq.IsEmpty() {
			continue
		}
		bonus := sq.Bonus()
		mainScore += ls * (bonus.LetterMultiplier() - 1)
		wordMultiplier *= bonus.WordMultiplier()
		crossScores += e.crossScore(ml, row, col, m.Vertical(), bonus)
	}
	return mainScore*wordMultiplier + crossScores
}

// crossScore is the score of the word a new letter at (row, col) forms
// across the play, or 0 if it touches nothing that way.
func (e *Engine) crossScore(ml tilemapping.MachineLetter, row, col int, vertical bool,
	bonus board.BonusSquare) int {

	var prefix, suffix tilemapping.MachineWord
	if vertical {
		prefix, suffix = e.board.Row(row).TouchingLetters(col)
	} else {
		prefix, suffix = e.board.Col(col).TouchingLetters(row)
	}
	if len(prefix) == 0 && len(suffix) == 0 {
		return 0
	}
	score := prefix.Score(e.dist) + suffix.Score(e.dist) +
		e.dist.Score(ml)*bonus.LetterMultiplier()
	return score * bonus.WordMultiplier()
}

// CommitLetter puts a letter on an empty square. It does not touch the
// rack. Afterwards only the squares that bound the touching runs through
// (row, col) can have new neighbours, so only their forbidden-letter sets
// are recomputed.
func (e *Engine) CommitLetter(ml tilemapping.MachineLetter, row, col int) error {
	if err := e.checkPos(row, col); err != nil {
		return err
	}
	if err := e.checkLetter(ml); err != nil {
		return err
	}
	if e.board.HasLetter(row, col) {
		return fmt.Errorf("%w: square %v is already occupied",
			ErrInvalidArgument, move.ToBoardGameCoords(row, col, false))
	}
	e.board.PlaceLetter(row, col, ml)

	numLetters := e.dist.NumLetters()
	left, right := e.board.Row(row).FirstEmptyCells(col)
	for _, c := range []int{left, right} {
		if e.board.PosExists(row, c) {
			e.board.UpdateForbiddenLettersAt(row, c, e.lex, numLetters)
		}
	}
	up, down := e.board.Col(col).FirstEmptyCells(row)
	for _, r := range []int{up, down} {
		if e.board.PosExists(r, col) {
			e.board.UpdateForbiddenLettersAt(r, col, e.lex, numLetters)
		}
	}
	log.Debug().Int("row", row).Int("col", col).
		Str("letter", string(ml.UserVisible(e.TileMapping()))).Msg("committed-letter")
	return nil
}

// validateMove checks that every square of the play is on the board, that
// its letters are in the alphabet, that it matches the letters already on
// the board, and that it adds at least one letter.
func (e *Engine) validateMove(m *move.Move) error {
	if m.Len() == 0 {
		return fmt.Errorf("%w: empty play", ErrInvalidArgument)
	}
	added := 0
	for i, ml := range m.Word() {
		row, col := m.LetterCoords(i)
		if err := e.checkPos(row, col); err != nil {
			return err
		}
		if err := e.checkLetter(ml); err != nil {
			return err
		}
		if !e.board.HasLetter(row, col) {
			added++
		} else if e.board.GetLetter(row, col) != ml {
			return fmt.Errorf("%w: play %v conflicts with the letter at %v",
				ErrInvalidArgument, m.ShortDescription(e.TileMapping()),
				move.ToBoardGameCoords(row, col, false))
		}
	}
	if added == 0 {
		return fmt.Errorf("%w: play %v adds no letters",
			ErrInvalidArgument, m.ShortDescription(e.TileMapping()))
	}
	return nil
}

// ScoreMove scores a play that did not come from the generator, such as
// one typed by a user. The board is not changed.
func (e *Engine) ScoreMove(m *move.Move) (int, error) {
	if err := e.validateMove(m); err != nil {
		return 0, err
	}
	return e.ComputePoint(m), nil
}

// CommitMove commits every letter the play adds and returns the score the
// play made. Nothing is committed if the play does not fit.
func (e *Engine) CommitMove(m *move.Move) (int, error) {
	score, err := e.ScoreMove(m)
	if err != nil {
		return 0, err
	}
	for i, ml := range m.Word() {
		row, col := m.LetterCoords(i)
		if e.board.HasLetter(row, col) {
			continue
		}
		if err := e.CommitLetter(ml, row, col); err != nil {
			return 0, err
		}
	}
	log.Debug().Str("play", m.ShortDescription(e.TileMapping())).Int("score", score).
		Msg("committed-play")
	return score, nil
}

// Reset empties the board and restores its bonus squares. The rack is kept.
func (e *Engine) Reset() {
	e.board.Clear()
	log.Debug().Msg("board-reset")
}
