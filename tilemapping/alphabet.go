package tilemapping

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/rs/zerolog/log"
)

// A "letter" is internally represented by its index in the alphabet, from 0
// to NumLetters()-1. The index NoLetter is reserved: it marks an empty square
// on the board and never appears in a rack or a dictionary word.
const (
	// MaxAlphabetSize should be below 64 so that a LetterSet can be a 64-bit int.
	MaxAlphabetSize = 62
	// NoLetter is the machine letter of an empty square.
	NoLetter MachineLetter = 0xFF
	// ASCIIPlayedThrough is a somewhat user-friendly representation of a
	// square that holds no new letter, used mostly for debug purposes.
	ASCIIPlayedThrough = '.'
)

var (
	ErrAlphabetTooLarge = errors.New("exceeded max alphabet size")
	ErrDuplicateLetter  = errors.New("duplicate letter in alphabet")
)

// LetterSet is a bit mask of letters, with indices from 0 to the maximum
// alphabet size.
type LetterSet uint64

// Has returns true if the letter is in the set.
func (s LetterSet) Has(ml MachineLetter) bool {
	return s&(1<<uint8(ml)) != 0
}

// Add adds a letter to the set.
func (s *LetterSet) Add(ml MachineLetter) {
	*s = *s | (1 << uint8(ml))
}

// Clear empties the set.
func (s *LetterSet) Clear() {
	*s = 0
}

// MachineLetter is a machine-only representation of a letter.
type MachineLetter byte

// A TileMapping contains the structures needed to map a user-visible "rune",
// like the letter B, into its "MachineLetter" counterpart (for example,
// MachineLetter(1) in the english-alphabet), and vice-versa.
type TileMapping struct {
	// vals is a map of the actual physical letter rune (like 'A') to a
	// number representing it, from 0 to MaxAlphabetSize.
	vals map[rune]MachineLetter
	// letters maps the 0 to MaxAlphabetSize value back to a letter.
	letters []rune
}

// NewTileMapping creates a tile mapping from an ordered list of letters. The
// position of each letter in the list is its machine letter.
func NewTileMapping(letters []rune) (*TileMapping, error) {
	if len(letters) > MaxAlphabetSize {
		return nil, fmt.Errorf("%w: %d letters", ErrAlphabetTooLarge, len(letters))
	}
	tm := &TileMapping{
		vals:    make(map[rune]MachineLetter, len(letters)),
		letters: make([]rune, len(letters)),
	}
	for idx, rn := range letters {
		if _, ok := tm.vals[rn]; ok {
			return nil, fmt.Errorf("%w: %c", ErrDuplicateLetter, rn)
		}
		tm.vals[rn] = MachineLetter(idx)
		tm.letters[idx] = rn
	}
	log.Debug().Int("num-letters", len(letters)).Msg("created tile mapping")
	return tm, nil
}

// Letter returns the letter that this position in the alphabet corresponds to.
func (tm *TileMapping) Letter(ml MachineLetter) rune {
	if int(ml) >= len(tm.letters) {
		return ASCIIPlayedThrough
	}
	return tm.letters[ml]
}

// Val returns the 'value' of this rune in the alphabet. Lowercase runes are
// accepted when their simple uppercase form is in the alphabet.
func (tm *TileMapping) Val(r rune) (MachineLetter, error) {
	if val, ok := tm.vals[r]; ok {
		return val, nil
	}
	if val, ok := tm.vals[unicode.ToUpper(r)]; ok {
		return val, nil
	}
	return 0, fmt.Errorf("letter `%c` not found in alphabet", r)
}

// NumLetters returns the number of letters in this alphabet.
func (tm *TileMapping) NumLetters() int {
	return len(tm.letters)
}

// Letters returns the letters of the alphabet in machine letter order.
func (tm *TileMapping) Letters() []rune {
	out := make([]rune, len(tm.letters))
	copy(out, tm.letters)
	return out
}

// UserVisible turns the passed-in machine letter into a user-visible rune.
func (ml MachineLetter) UserVisible(tm *TileMapping) rune {
	if ml == NoLetter {
		return ASCIIPlayedThrough
	}
	return tm.Letter(ml)
}

// ToMachineWord converts a user-visible word into a machine word.
func ToMachineWord(word string, tm *TileMapping) (MachineWord, error) {
	mls, err := ToMachineLetters(word, tm)
	if err != nil {
		return nil, err
	}
	return MachineWord(mls), nil
}

// ToMachineLetters creates an array of MachineLetters from the given string.
// The played-through marker maps to NoLetter.
func ToMachineLetters(word string, tm *TileMapping) ([]MachineLetter, error) {
	letters := make([]MachineLetter, 0, len(word))
	for _, ch := range word {
		if ch == ASCIIPlayedThrough {
			letters = append(letters, NoLetter)
			continue
		}
		ml, err := tm.Val(ch)
		if err != nil {
			return nil, err
		}
		letters = append(letters, ml)
	}
	return letters, nil
}

// EnglishAlphabet returns a TileMapping that corresponds to the English
// alphabet. This function should be used for testing. In production
// the alphabet comes from a rule set.
func EnglishAlphabet() *TileMapping {
	tm, err := NewTileMapping([]rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
	if err != nil {
		panic(err)
	}
	return tm
}
