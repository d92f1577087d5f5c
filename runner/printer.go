package runner

import (
	"fmt"
	"strings"

	"github.com/berkgedik92/scrabble-word-finder/board"
	"github.com/berkgedik92/scrabble-word-finder/engine"
)

// SuggestionsDisplayString lays out suggestions as a numbered table.
func (g *GameRunner) SuggestionsDisplayString(sugs []engine.Suggestion) string {
	if len(sugs) == 0 {
		return "No play found for rack " + g.Rack().String() + "\n"
	}
	var s strings.Builder
	s.WriteString("     Move                Score\n")
	for i, sug := range sugs {
		s.WriteString(fmt.Sprintf("%3d: %-20s%d\n", i+1,
			sug.Move.ShortDescription(g.TileMapping()), sug.Score))
	}
	return s.String()
}

// ToDisplayText shows the board and the rack.
func (g *GameRunner) ToDisplayText() string {
	return g.Board().ToDisplayText(g.TileMapping()) + "\nRack: " + g.Rack().String() + "\n"
}

// PreviewDisplayText shows the board with the suggestion's letters laid
// over it. The board itself is not changed.
func (g *GameRunner) PreviewDisplayText(sug engine.Suggestion) string {
	m := sug.Move
	extra := make([]board.PlacedLetter, 0, m.Len())
	for i, ml := range m.Word() {
		row, col := m.LetterCoords(i)
		extra = append(extra, board.PlacedLetter{Row: row, Col: col, Letter: ml})
	}
	return fmt.Sprintf("%v (%d)\n", m.ShortDescription(g.TileMapping()), sug.Score) +
		g.Board().ToDisplayTextWith(g.TileMapping(), extra)
}
