package tilemapping

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestRackFromString(t *testing.T) {
	alph := EnglishAlphabet()
	rack, err := RackFromString("AENPPSW", alph)
	assert.NoError(t, err)

	expected := make([]int, 26)
	expected[0] = 1
	expected[4] = 1
	expected[13] = 1
	expected[15] = 2
	expected[18] = 1
	expected[22] = 1

	assert.Equal(t, expected, rack.LetArr)
	assert.Equal(t, 7, rack.NumTiles())
	assert.Equal(t, "AENPPSW", rack.String())
}

func TestRackFromStringBadLetter(t *testing.T) {
	is := is.New(t)
	_, err := RackFromString("AB3", EnglishAlphabet())
	is.True(err != nil)
	_, err = RackFromString("A.B", EnglishAlphabet())
	is.True(err != nil)
}

func TestRackTakeAndAdd(t *testing.T) {
	is := is.New(t)
	alph := EnglishAlphabet()
	rack, err := RackFromString("AENPPSW", alph)
	is.NoErr(err)
	orig := rack.Copy()

	rack.Take(MachineLetter(15))
	rack.Take(MachineLetter(15))
	is.True(!rack.Has(MachineLetter(15)))
	is.Equal(rack.NumTiles(), 5)
	is.Equal(rack.String(), "AENSW")

	rack.Add(MachineLetter(15))
	rack.Add(MachineLetter(15))
	is.True(rack.Equals(orig))
}

func TestRackCounts(t *testing.T) {
	is := is.New(t)
	alph := EnglishAlphabet()
	rack := NewRack(alph)
	rack.SetCounts(map[MachineLetter]int{2: 1, 0: 2, 19: 0})
	is.Equal(rack.NumTiles(), 3)
	is.Equal(rack.String(), "AAC")
	is.Equal(rack.Counts(), map[MachineLetter]int{0: 2, 2: 1})
}

func TestRackCopyIsDeep(t *testing.T) {
	is := is.New(t)
	rack, err := RackFromString("CAT", EnglishAlphabet())
	is.NoErr(err)
	cp := rack.Copy()
	cp.Take(MachineLetter(2))
	is.Equal(rack.String(), "ACT")
	is.Equal(cp.String(), "AT")
}
