package board

import (
	"fmt"
)

var (
	// CrosswordGameBoard is a board for a fun Crossword Game, featuring lots
	// of wingos and blonks.
	CrosswordGameBoard []string
)

func init() {
	CrosswordGameBoard = []string{
		`=  '   =   '  =`,
		` -   "   "   - `,
		`  -   ' '   -  `,
		`'  -   '   -  '`,
		`    -     -    `,
		` "   "   "   " `,
		`  '   ' '   '  `,
		`=  '   -   '  =`,
		`  '   ' '   '  `,
		` "   "   "   " `,
		`    -     -    `,
		`'  -   '   -  '`,
		`  -   ' '   -  `,
		` -   "   "   - `,
		`=  '   =   '  =`,
	}
}

// A BonusCell places a bonus on one square at setup time.
type BonusCell struct {
	Row   int
	Col   int
	Bonus BonusSquare
}

// ParseLayout turns a layout description (one string per row, one rune per
// square) into the board dimension and its list of bonus cells.
func ParseLayout(desc []string) (int, []BonusCell, error) {
	dim := len(desc)
	if dim == 0 {
		return 0, nil, fmt.Errorf("empty board layout")
	}
	cells := []BonusCell{}
	for row, s := range desc {
		runes := []rune(s)
		if len(runes) != dim {
			return 0, nil, fmt.Errorf("layout row %d has %d squares, expected %d",
				row, len(runes), dim)
		}
		for col, c := range runes {
			b := BonusSquare(c)
			if !b.Valid() {
				return 0, nil, fmt.Errorf("layout row %d col %d: unknown bonus %q", row, col, c)
			}
			if b != NoBonus {
				cells = append(cells, BonusCell{Row: row, Col: col, Bonus: b})
			}
		}
	}
	return dim, cells, nil
}
