package tilemapping

import (
	"fmt"
)

// Rack is a machine-friendly representation of a user's rack.
type Rack struct {
	// LetArr is an array of letter counts, indexed by machine letter.
	LetArr     []int
	numLetters int
	alphabet   *TileMapping
}

// NewRack creates a brand new, empty rack structure with an alphabet.
func NewRack(alph *TileMapping) *Rack {
	return &Rack{
		alphabet: alph,
		LetArr:   make([]int, alph.NumLetters()),
	}
}

// RackFromString creates a Rack from a string and an alphabet.
func RackFromString(rack string, a *TileMapping) (*Rack, error) {
	r := NewRack(a)
	mls, err := ToMachineLetters(rack, a)
	if err != nil {
		return nil, fmt.Errorf("unable to convert rack %q: %w", rack, err)
	}
	for _, ml := range mls {
		if ml == NoLetter {
			return nil, fmt.Errorf("unable to convert rack %q: empty square marker", rack)
		}
	}
	r.Set(mls)
	return r, nil
}

// String returns a user-visible version of this rack.
func (r *Rack) String() string {
	return r.TilesOn().UserVisible(r.alphabet)
}

// Copy returns a deep copy of this rack
func (r *Rack) Copy() *Rack {
	n := &Rack{
		numLetters: r.numLetters,
		alphabet:   r.alphabet,
	}
	n.LetArr = make([]int, len(r.LetArr))
	copy(n.LetArr, r.LetArr)
	return n
}

// Set sets the rack from a list of machine letters
func (r *Rack) Set(mls []MachineLetter) {
	r.Clear()
	for _, ml := range mls {
		r.LetArr[ml]++
	}
	r.numLetters = len(mls)
}

// SetCounts sets the rack from a map of letter counts. Letters must be in
// the alphabet and counts must be non-negative; the caller validates this.
func (r *Rack) SetCounts(counts map[MachineLetter]int) {
	r.Clear()
	for ml, ct := range counts {
		r.LetArr[ml] += ct
		r.numLetters += ct
	}
}

// Counts returns the non-zero letter counts on the rack.
func (r *Rack) Counts() map[MachineLetter]int {
	counts := make(map[MachineLetter]int)
	for i, ct := range r.LetArr {
		if ct > 0 {
			counts[MachineLetter(i)] = ct
		}
	}
	return counts
}

func (r *Rack) Clear() {
	for i := range r.LetArr {
		r.LetArr[i] = 0
	}
	r.numLetters = 0
}

// Take removes one copy of the letter from the rack. It should only be
// called if there is a letter on the rack; it doesn't check if it's there!
func (r *Rack) Take(letter MachineLetter) {
	r.LetArr[letter]--
	r.numLetters--
}

// Add puts one copy of the letter back on the rack.
func (r *Rack) Add(letter MachineLetter) {
	r.LetArr[letter]++
	r.numLetters++
}

func (r *Rack) Has(letter MachineLetter) bool {
	return r.LetArr[letter] > 0
}

func (r *Rack) CountOf(letter MachineLetter) int {
	return r.LetArr[letter]
}

// TilesOn returns the MachineLetters of the rack's current tiles. It is alphabetized.
func (r *Rack) TilesOn() MachineWord {
	letters := make(MachineWord, 0, r.numLetters)
	for i, ct := range r.LetArr {
		for j := 0; j < ct; j++ {
			letters = append(letters, MachineLetter(i))
		}
	}
	return letters
}

// ScoreOn returns the total score of the tiles on this rack.
func (r *Rack) ScoreOn(ld *LetterDistribution) int {
	score := 0
	for i, ct := range r.LetArr {
		score += ld.Score(MachineLetter(i)) * ct
	}
	return score
}

// Equals returns true if both racks hold the same letter counts.
func (r *Rack) Equals(other *Rack) bool {
	if r.numLetters != other.numLetters || len(r.LetArr) != len(other.LetArr) {
		return false
	}
	for i := range r.LetArr {
		if r.LetArr[i] != other.LetArr[i] {
			return false
		}
	}
	return true
}

// NumTiles returns the current number of tiles on this rack.
func (r *Rack) NumTiles() int {
	return r.numLetters
}

func (r *Rack) Empty() bool {
	return r.numLetters == 0
}

func (r *Rack) Alphabet() *TileMapping {
	return r.alphabet
}
