package runner

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/berkgedik92/scrabble-word-finder/anagrammer"
	"github.com/berkgedik92/scrabble-word-finder/engine"
	"github.com/berkgedik92/scrabble-word-finder/move"
	"github.com/berkgedik92/scrabble-word-finder/tilemapping"
)

// ParseMove turns coordinates and a typed word into a move. Coordinates
// are case-insensitive; the word is upper-cased with the rules of the
// rule set's language.
func (g *GameRunner) ParseMove(coords string, word string) (*move.Move, error) {
	m, err := move.NewMoveFromString(strings.ToUpper(coords), g.caser.String(word), g.TileMapping())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidArgument, err)
	}
	return m, nil
}

// ParseLetter turns one typed letter into a machine letter.
func (g *GameRunner) ParseLetter(letter string) (tilemapping.MachineLetter, error) {
	if utf8.RuneCountInString(letter) != 1 {
		return 0, fmt.Errorf("%w: %q is not a single letter", engine.ErrInvalidArgument, letter)
	}
	r, _ := utf8.DecodeRuneInString(g.caser.String(letter))
	ml, err := g.TileMapping().Val(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", engine.ErrInvalidArgument, err)
	}
	return ml, nil
}

// Anagram lists the words spelled from typed letters; mode is "exact"
// (every letter) or "build" (some of them).
func (g *GameRunner) Anagram(letters string, mode string) ([]string, error) {
	m, err := anagrammer.ModeFromString(mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidArgument, err)
	}
	rack, err := tilemapping.RackFromString(g.caser.String(letters), g.TileMapping())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidArgument, err)
	}
	words := anagrammer.Anagram(rack, g.lex, m)
	return lo.Map(words, func(w tilemapping.MachineWord, _ int) string {
		return w.UserVisible(g.TileMapping())
	}), nil
}
