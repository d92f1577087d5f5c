package tilemapping

import (
	"fmt"
)

// LetterDistribution encodes the letter values and tile counts for the
// relevant game.
type LetterDistribution struct {
	tilemapping  *TileMapping
	distribution []uint8
	scores       []int
	numLetters   uint
	Name         string
}

// NewLetterDistribution creates a distribution; scores and dist are indexed
// by machine letter.
func NewLetterDistribution(name string, tm *TileMapping, scores []int,
	dist []uint8) (*LetterDistribution, error) {

	if len(scores) != tm.NumLetters() || len(dist) != tm.NumLetters() {
		return nil, fmt.Errorf("distribution %v: have %d letters, %d scores, %d counts",
			name, tm.NumLetters(), len(scores), len(dist))
	}
	numTotalLetters := uint(0)
	for _, v := range dist {
		numTotalLetters += uint(v)
	}
	return &LetterDistribution{
		tilemapping:  tm,
		distribution: dist,
		scores:       scores,
		numLetters:   numTotalLetters,
		Name:         name,
	}, nil
}

// Score gives the score of the given machine letter. This is used by the
// scorer to look up values more rapidly than a map would.
func (ld *LetterDistribution) Score(ml MachineLetter) int {
	if int(ml) >= len(ld.scores) {
		return 0
	}
	return ld.scores[ml]
}

func (ld *LetterDistribution) TileMapping() *TileMapping {
	return ld.tilemapping
}

// WordScore returns the score of this word given the ld.
func (ld *LetterDistribution) WordScore(mw MachineWord) int {
	return mw.Score(ld)
}

func (ld *LetterDistribution) Distribution() []uint8 {
	return ld.distribution
}

// NumLetters is the size of the alphabet.
func (ld *LetterDistribution) NumLetters() int {
	return ld.tilemapping.NumLetters()
}

// NumTiles is the total number of tiles in a full bag.
func (ld *LetterDistribution) NumTiles() uint {
	return ld.numLetters
}
