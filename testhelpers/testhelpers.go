// Package testhelpers has fixtures shared by the tests of several packages.
package testhelpers

import (
	"github.com/berkgedik92/scrabble-word-finder/tilemapping"
	"github.com/berkgedik92/scrabble-word-finder/trie"
)

var englishScores = []int{
	1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3,
	1, 1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 10,
}

var englishCounts = []uint8{
	9, 2, 2, 4, 12, 2, 3, 2, 9, 1, 1, 4, 2,
	6, 8, 2, 1, 6, 4, 6, 4, 2, 2, 1, 2, 1,
}

// EnglishDistribution returns the standard English letter values and tile
// counts over tilemapping.EnglishAlphabet.
func EnglishDistribution() *tilemapping.LetterDistribution {
	ld, err := tilemapping.NewLetterDistribution("english",
		tilemapping.EnglishAlphabet(), englishScores, englishCounts)
	if err != nil {
		panic(err)
	}
	return ld
}

// MakeLexicon builds a trie holding the given words.
func MakeLexicon(tm *tilemapping.TileMapping, words ...string) *trie.Trie {
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

// Rack makes a rack or panics.
func Rack(letters string, tm *tilemapping.TileMapping) *tilemapping.Rack {
	r, err := tilemapping.RackFromString(letters, tm)
	if err != nil {
		panic(err)
	}
	return r
}

// CommonWords is a small English word list for search tests.
var CommonWords = []string{
	"A", "AN", "AS", "AT", "AE", "AR", "AH", "AX", "BA", "BE", "HA", "HE", "NA",
	"NE", "RE", "TA", "TE", "EH", "ER", "ES", "ET", "EX", "SH", "XI",
	"ACT", "ARC", "ART", "ARE", "ATE", "BAT", "BET", "CAB", "CAR", "CAT",
	"EAR", "EAT", "ERA", "HAT", "RAT", "SAT", "SEA", "SET", "TAB", "TAR",
	"TEA", "TEN", "NET", "ANT", "TAN", "HEN", "THE", "ETA", "ARCS",
	"ACTS", "ARTS", "BATS", "CABS", "CARS", "CAST", "CATS", "CART", "EARS",
	"EAST", "EATS", "HATS", "RATS", "REST", "SCAT", "SEAT", "STAR", "TABS",
	"TEAS", "TSAR", "CRATE", "REACT", "TRACE", "CARTS", "STARE", "TEARS",
	"RATES", "ASTER", "CRATES", "REACTS", "TRACES", "CASTER", "RECAST",
	"CHEAT", "TEACH", "CHEATS", "EXTRA",
}
