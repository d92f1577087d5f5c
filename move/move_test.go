package move

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/berkgedik92/scrabble-word-finder/tilemapping"
)

type coordTestStruct struct {
	row      int
	col      int
	vertical bool
	output   string
}

var coordTests = []coordTestStruct{
	{0, 0, false, "1A"},
	{0, 0, true, "A1"},
	{14, 14, false, "15O"},
	{14, 14, true, "O15"},
	{9, 8, false, "10I"},
	{9, 8, true, "I10"},
	{1, 7, false, "2H"},
	{1, 7, true, "H2"},
}

func TestToBoardGameCoords(t *testing.T) {
	for _, tc := range coordTests {
		calc := ToBoardGameCoords(tc.row, tc.col, tc.vertical)
		if calc != tc.output {
			t.Errorf("For row=%v col=%v vertical=%v got %v, expected %v",
				tc.row, tc.col, tc.vertical, calc, tc.output)
		}
	}
}

func TestFromBoardGameCoords(t *testing.T) {
	for _, tc := range coordTests {
		row, col, vertical, err := FromBoardGameCoords(tc.output)
		if err != nil {
			t.Fatalf("For coord %v got error %v", tc.output, err)
		}
		if row != tc.row || col != tc.col || vertical != tc.vertical {
			t.Errorf("For coord %v expected (%v, %v, %v) got (%v, %v, %v)",
				tc.output, tc.row, tc.col, tc.vertical, row, col, vertical)
		}
	}
}

func TestFromBoardGameCoordsBad(t *testing.T) {
	is := is.New(t)
	for _, c := range []string{"", "8", "G", "0G", "G0", "8g", "GG8", "8G8"} {
		_, _, _, err := FromBoardGameCoords(c)
		is.True(errors.Is(err, ErrBadCoords))
	}
}

func TestEndCoords(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.EnglishAlphabet()
	word, _ := tilemapping.ToMachineWord("CAT", tm)

	h := NewMove(word, 7, 6, false)
	is.Equal(h.EndRow(), 7)
	is.Equal(h.EndCol(), 8)

	v := NewMove(word, 3, 2, true)
	is.Equal(v.EndRow(), 5)
	is.Equal(v.EndCol(), 2)
	r, c := v.LetterCoords(1)
	is.Equal(r, 4)
	is.Equal(c, 2)
}

func TestNewMoveCopiesWord(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.EnglishAlphabet()
	word, _ := tilemapping.ToMachineWord("CAT", tm)
	m := NewMove(word, 0, 0, false)
	word[0] = 18
	is.Equal(m.Word().UserVisible(tm), "CAT")
}

func TestWithStart(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.EnglishAlphabet()
	word, _ := tilemapping.ToMachineWord("CAT", tm)
	m := NewMove(word, 7, 0, false)
	m2 := m.WithStart(7, 6)
	is.Equal(m.ColStart(), 0)
	is.Equal(m2.ColStart(), 6)
	is.Equal(m2.ShortDescription(tm), "8G CAT")
	is.True(!m.Equals(m2))
}

func TestNewMoveFromString(t *testing.T) {
	tm := tilemapping.EnglishAlphabet()
	m, err := NewMoveFromString("H8", "cats", tm)
	assert.NoError(t, err)
	assert.Equal(t, 7, m.RowStart())
	assert.Equal(t, 7, m.ColStart())
	assert.True(t, m.Vertical())
	assert.Equal(t, "CATS", m.Word().UserVisible(tm))

	_, err = NewMoveFromString("H8", "C.T", tm)
	assert.Error(t, err)
	_, err = NewMoveFromString("H8", "", tm)
	assert.Error(t, err)
	_, err = NewMoveFromString("8", "CAT", tm)
	assert.ErrorIs(t, err, ErrBadCoords)
}

func TestEquals(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.EnglishAlphabet()
	m1, _ := NewMoveFromString("A7", "HELLO", tm)
	m2, _ := NewMoveFromString("A7", "HELLO", tm)
	is.True(m1.Equals(m2))
	m3, _ := NewMoveFromString("7A", "HELLO", tm)
	is.True(!m1.Equals(m3))
	m4, _ := NewMoveFromString("A7", "HELLS", tm)
	is.True(!m1.Equals(m4))
}
