// Package anagrammer lists the dictionary words that can be spelled from a
// rack, with no board involved.
package anagrammer

import (
	"errors"
	"slices"

	"github.com/berkgedik92/scrabble-word-finder/tilemapping"
	"github.com/berkgedik92/scrabble-word-finder/trie"
)

type Mode uint8

const (
	// ModeExact finds words that use every letter.
	ModeExact Mode = iota
	// ModeBuild finds words that use some of the letters.
	ModeBuild
)

var ErrUnknownMode = errors.New("must choose a mode: exact or build")

func ModeFromString(s string) (Mode, error) {
	switch s {
	case "exact", "anagram", "":
		return ModeExact, nil
	case "build":
		return ModeBuild, nil
	}
	return 0, ErrUnknownMode
}

// Anagram returns the words of lex spelled from the rack, longest first and
// alphabetically within a length. The rack is left as it was.
func Anagram(rack *tilemapping.Rack, lex trie.Lexicon, mode Mode) []tilemapping.MachineWord {
	a := &anagrammer{
		rack:  rack.Copy(),
		lex:   lex,
		mode:  mode,
		total: rack.NumTiles(),
	}
	a.anagram(make(tilemapping.MachineWord, 0, a.total))
	slices.SortFunc(a.answers, func(x, y tilemapping.MachineWord) int {
		if len(x) != len(y) {
			return len(y) - len(x)
		}
		return x.Compare(y)
	})
	return a.answers
}

type anagrammer struct {
	rack    *tilemapping.Rack
	lex     trie.Lexicon
	mode    Mode
	total   int
	answers []tilemapping.MachineWord
}

func (a *anagrammer) anagram(soFar tilemapping.MachineWord) {
	for idx, val := range a.rack.LetArr {
		if val == 0 {
			continue
		}
		ml := tilemapping.MachineLetter(idx)
		word := append(soFar, ml)
		if !a.lex.IsPrefix(word) {
			continue
		}
		a.rack.Take(ml)
		if a.lex.IsWord(word) && (a.mode == ModeBuild || len(word) == a.total) {
			a.answers = append(a.answers, slices.Clone(word))
		}
		a.anagram(word)
		a.rack.Add(ml)
	}
}
