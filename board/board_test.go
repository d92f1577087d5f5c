package board

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/berkgedik92/scrabble-word-finder/tilemapping"
	"github.com/berkgedik92/scrabble-word-finder/trie"
)

func lexicon(tm *tilemapping.TileMapping, words ...string) *trie.Trie {
	t := trie.New(tm.NumLetters())
	for _, w := range words {
		mw, err := tilemapping.ToMachineWord(w, tm)
		if err != nil {
			panic(err)
		}
		if err := t.AddWord(mw); err != nil {
			panic(err)
		}
	}
	return t
}

func placeWord(b *GameBoard, row, col int, vertical bool, word string, tm *tilemapping.TileMapping) {
	for i, r := range word {
		ml, err := tm.Val(r)
		if err != nil {
			panic(err)
		}
		if vertical {
			b.PlaceLetter(row+i, col, ml)
		} else {
			b.PlaceLetter(row, col+i, ml)
		}
	}
}

func TestMakeBoard(t *testing.T) {
	is := is.New(t)
	b, err := MakeBoard(CrosswordGameBoard)
	is.NoErr(err)
	is.Equal(b.Dim(), 15)
	is.True(b.IsEmpty())
	is.Equal(b.GetBonus(0, 0), Bonus3WS)
	is.Equal(b.GetBonus(7, 7), Bonus2WS)
	is.Equal(b.GetBonus(0, 3), Bonus2LS)
	is.Equal(b.GetBonus(1, 5), Bonus3LS)
	is.Equal(b.GetBonus(7, 6), NoBonus)
	is.Equal(b.GetLetter(3, 3), tilemapping.NoLetter)
}

func TestNewBoardErrors(t *testing.T) {
	_, err := NewBoard(0, nil)
	assert.Error(t, err)
	_, err = NewBoard(5, []BonusCell{{Row: 5, Col: 0, Bonus: Bonus2WS}})
	assert.Error(t, err)
	_, err = NewBoard(5, []BonusCell{{Row: 0, Col: -1, Bonus: Bonus2WS}})
	assert.Error(t, err)
	_, err = NewBoard(5, []BonusCell{{Row: 0, Col: 0, Bonus: BonusSquare('x')}})
	assert.Error(t, err)
}

func TestParseLayout(t *testing.T) {
	dim, cells, err := ParseLayout([]string{
		`= -`,
		`   `,
		`"' `,
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, dim)
	assert.Equal(t, []BonusCell{
		{0, 0, Bonus3WS}, {0, 2, Bonus2WS}, {2, 0, Bonus3LS}, {2, 1, Bonus2LS},
	}, cells)

	_, _, err = ParseLayout(nil)
	assert.Error(t, err)
	_, _, err = ParseLayout([]string{"  ", " "})
	assert.Error(t, err)
	_, _, err = ParseLayout([]string{"  ", " x"})
	assert.Error(t, err)
}

func TestRowsAndColumnsShareSquares(t *testing.T) {
	is := is.New(t)
	b, err := NewBoard(5, nil)
	is.NoErr(err)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			is.True(b.Row(r).Square(c) == b.Col(c).Square(r))
			is.True(b.Row(r).Square(c) == b.GetSquare(r, c))
		}
	}
	b.PlaceLetter(2, 3, 4)
	is.True(b.Col(3).HasLetter(2))
	is.Equal(b.Row(2).Square(3).Letter(), tilemapping.MachineLetter(4))
	is.True(!b.IsEmpty())
	is.Equal(b.TilesPlayed(), 1)
}

func TestPlaceLetterClearsBonus(t *testing.T) {
	is := is.New(t)
	b, err := MakeBoard(CrosswordGameBoard)
	is.NoErr(err)
	b.PlaceLetter(7, 7, 0)
	is.Equal(b.GetBonus(7, 7), NoBonus)
	b.Clear()
	is.Equal(b.GetBonus(7, 7), Bonus2WS)
	is.True(b.IsEmpty())
	is.True(!b.HasLetter(7, 7))
}

func TestUpdateForbiddenLettersAtCrossesAxes(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.EnglishAlphabet()
	lex := lexicon(tm, "AT", "AS", "TA")
	b, _ := NewBoard(5, nil)
	placeWord(b, 2, 2, false, "A", tm)

	// (2, 3) sits right of the A. A vertical play through it must make a
	// horizontal word A?; a horizontal play through it extends the row
	// itself and forms no cross word.
	b.UpdateForbiddenLettersAt(2, 3, lex, tm.NumLetters())
	sq := b.GetSquare(2, 3)
	tl, _ := tm.Val('T')
	s, _ := tm.Val('S')
	bl, _ := tm.Val('B')
	is.True(!sq.Forbidden(VerticalDirection).Has(tl))
	is.True(!sq.Forbidden(VerticalDirection).Has(s))
	is.True(sq.Forbidden(VerticalDirection).Has(bl))
	is.Equal(sq.Forbidden(HorizontalDirection), tilemapping.LetterSet(0))

	// (1, 2) sits above the A: the horizontal play must make ?A.
	b.UpdateForbiddenLettersAt(1, 2, lex, tm.NumLetters())
	above := b.GetSquare(1, 2)
	is.True(!above.Forbidden(HorizontalDirection).Has(tl))
	is.True(above.Forbidden(HorizontalDirection).Has(s))
	is.Equal(above.Forbidden(VerticalDirection), tilemapping.LetterSet(0))

	b.Clear()
	is.Equal(sq.Forbidden(VerticalDirection), tilemapping.LetterSet(0))
}

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	ColorSupport = false
	defer func() { ColorSupport = true }()
	tm := tilemapping.EnglishAlphabet()
	b, _ := MakeBoard(CrosswordGameBoard)
	placeWord(b, 7, 6, false, "CAT", tm)
	txt := b.ToDisplayText(tm)
	lines := strings.Split(txt, "\n")
	is.True(strings.HasPrefix(lines[1], "   A B C D E F G H"))
	is.Equal(lines[3], " 1|=     '       =       '     = |")
	is.Equal(lines[10], " 8|=     '     C A T     '     = |")
}

func TestToDisplayTextWith(t *testing.T) {
	is := is.New(t)
	ColorSupport = false
	defer func() { ColorSupport = true }()
	tm := tilemapping.EnglishAlphabet()
	b, _ := MakeBoard(CrosswordGameBoard)
	placeWord(b, 7, 6, false, "CAT", tm)
	s, _ := tm.Val('S')
	x, _ := tm.Val('X')
	txt := b.ToDisplayTextWith(tm, []PlacedLetter{
		{Row: 7, Col: 9, Letter: s},
		{Row: 7, Col: 6, Letter: x},
		{Row: 7, Col: 15, Letter: x},
	})
	lines := strings.Split(txt, "\n")
	is.Equal(lines[10], " 8|=     '     C A T S   '     = |")
	// the overlay never touches the board itself
	is.True(!b.HasLetter(7, 9))
	is.Equal(b.ToDisplayText(tm), b.ToDisplayTextWith(tm, nil))
}
