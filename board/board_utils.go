package board

import (
	"fmt"
	"strings"

	"github.com/berkgedik92/scrabble-word-finder/tilemapping"
)

// PlacedLetter is a letter drawn over an empty square without being
// committed to the board.
type PlacedLetter struct {
	Row, Col int
	Letter   tilemapping.MachineLetter
}

// ToDisplayText renders the board with column letters and 1-based row
// numbers, the way coordinates are written (8G, G8).
func (g *GameBoard) ToDisplayText(tm *tilemapping.TileMapping) string {
	return g.displayText(tm, nil)
}

// ToDisplayTextWith renders the board with the given letters laid over
// it. Letters aimed at occupied or off-board squares are ignored.
func (g *GameBoard) ToDisplayTextWith(tm *tilemapping.TileMapping, extra []PlacedLetter) string {
	overlay := make(map[int]tilemapping.MachineLetter, len(extra))
	for _, pl := range extra {
		if !g.PosExists(pl.Row, pl.Col) || !g.GetSquare(pl.Row, pl.Col).IsEmpty() {
			continue
		}
		overlay[g.GetSqIdx(pl.Row, pl.Col)] = pl.Letter
	}
	return g.displayText(tm, overlay)
}

func (g *GameBoard) displayText(tm *tilemapping.TileMapping, overlay map[int]tilemapping.MachineLetter) string {
	var sb strings.Builder
	n := g.Dim()
	sb.WriteString("   ")
	for i := 0; i < n; i++ {
		sb.WriteString(fmt.Sprintf("%c ", 'A'+i))
	}
	sb.WriteString("\n")
	sb.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	for i := 0; i < n; i++ {
		sb.WriteString(fmt.Sprintf("%2d|", i+1))
		for j := 0; j < n; j++ {
			if ml, ok := overlay[g.GetSqIdx(i, j)]; ok {
				sb.WriteString(overlayString(ml, tm) + " ")
				continue
			}
			sb.WriteString(g.GetSquare(i, j).DisplayString(tm) + " ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	return "\n" + sb.String()
}

func overlayString(ml tilemapping.MachineLetter, tm *tilemapping.TileMapping) string {
	r := string(tm.Letter(ml))
	if ColorSupport {
		return "\033[1;33m" + r + "\033[0m"
	}
	return r
}
