package tilemapping

import (
	"slices"
)

// MachineWord is an ordered sequence of machine letters. Methods that grow a
// word never modify the receiver; they return a freshly allocated word, so
// sibling branches of a search can share a common prefix or suffix safely.
type MachineWord []MachineLetter

// Append returns a new word equal to mw with ml appended.
func (mw MachineWord) Append(ml MachineLetter) MachineWord {
	out := make(MachineWord, len(mw)+1)
	copy(out, mw)
	out[len(mw)] = ml
	return out
}

// Prepend returns a new word equal to mw with ml prepended.
func (mw MachineWord) Prepend(ml MachineLetter) MachineWord {
	out := make(MachineWord, len(mw)+1)
	out[0] = ml
	copy(out[1:], mw)
	return out
}

// Join returns prefix + ml + suffix as a new word.
func Join(prefix MachineWord, ml MachineLetter, suffix MachineWord) MachineWord {
	out := make(MachineWord, 0, len(prefix)+len(suffix)+1)
	out = append(out, prefix...)
	out = append(out, ml)
	return append(out, suffix...)
}

// Equal returns true if both words hold the same letters in the same order.
func (mw MachineWord) Equal(other MachineWord) bool {
	return slices.Equal(mw, other)
}

// Compare orders words letter by letter, shorter words first on a tie.
func (mw MachineWord) Compare(other MachineWord) int {
	return slices.Compare(mw, other)
}

// UserVisible turns the passed-in machine word into a user-visible string.
func (mw MachineWord) UserVisible(tm *TileMapping) string {
	runes := make([]rune, len(mw))
	for i, l := range mw {
		runes[i] = l.UserVisible(tm)
	}
	return string(runes)
}

// Score returns the score of this word given the ld.
func (mw MachineWord) Score(ld *LetterDistribution) int {
	score := 0
	for _, c := range mw {
		score += ld.Score(c)
	}
	return score
}
