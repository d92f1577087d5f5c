// Package runner puts an engine together from the configured rule set and
// word list, and accepts user-visible input (letters, coordinates) for it.
// Both the shell and the API server drive the engine through a GameRunner.
package runner

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/cases"

	"github.com/berkgedik92/scrabble-word-finder/config"
	"github.com/berkgedik92/scrabble-word-finder/engine"
	"github.com/berkgedik92/scrabble-word-finder/lexicon"
	"github.com/berkgedik92/scrabble-word-finder/ruleset"
)

type GameRunner struct {
	*engine.Engine
	rules *ruleset.Ruleset
	lex   *lexicon.Lexicon
	caser cases.Caser
}

// NewGameRunner is a good entry point
func NewGameRunner(cfg *config.Config) (*GameRunner, error) {
	rules, err := ruleset.Get(cfg)
	if err != nil {
		return nil, err
	}
	lex, err := lexicon.Get(cfg, rules.TileMapping(), rules.LanguageTag())
	if err != nil {
		return nil, err
	}
	return NewGameRunnerFrom(rules, lex)
}

// NewGameRunnerFrom builds a runner with an empty board from an already
// loaded rule set and word list.
func NewGameRunnerFrom(rules *ruleset.Ruleset, lex *lexicon.Lexicon) (*GameRunner, error) {
	e, err := engine.New(rules.Dim(), rules.LetterDistribution(), lex, rules.Bonuses())
	if err != nil {
		return nil, err
	}
	log.Info().Str("ruleset", rules.Name).Str("lexicon", lex.Name()).
		Int("words", lex.NumWords()).Int("dim", rules.Dim()).Msg("new-game")
	return &GameRunner{
		Engine: e,
		rules:  rules,
		lex:    lex,
		caser:  cases.Upper(rules.LanguageTag()),
	}, nil
}

func (g *GameRunner) Rules() *ruleset.Ruleset {
	return g.rules
}

func (g *GameRunner) Lexicon() *lexicon.Lexicon {
	return g.lex
}

// SetCurrentRack sets the rack from typed letters.
func (g *GameRunner) SetCurrentRack(letters string) error {
	return g.SetRackString(g.caser.String(letters))
}

// PlaceWord commits a whole play written as coordinates and a word, e.g.
// "8G" and "cat", and returns its score.
func (g *GameRunner) PlaceWord(coords string, word string) (int, error) {
	m, err := g.ParseMove(coords, word)
	if err != nil {
		return 0, err
	}
	return g.CommitMove(m)
}

// PlaceLetter commits one typed letter at 0-based coordinates.
func (g *GameRunner) PlaceLetter(row, col int, letter string) error {
	ml, err := g.ParseLetter(letter)
	if err != nil {
		return err
	}
	return g.CommitLetter(ml, row, col)
}

// TopSuggestions returns at most n of the best plays; n <= 0 means all.
func (g *GameRunner) TopSuggestions(n int) []engine.Suggestion {
	sugs := g.FindCandidates()
	if n <= 0 {
		return sugs
	}
	return lo.Subset(sugs, 0, uint(n))
}

// NewGame empties the board. The rack is kept.
func (g *GameRunner) NewGame() {
	g.Reset()
}

func (g *GameRunner) String() string {
	return fmt.Sprintf("<runner %v/%v rack %v>", g.rules.Name, g.lex.Name(), g.Rack())
}
