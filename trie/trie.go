// Package trie contains the dictionary used by the move generator: a
// forward prefix tree over machine letters that answers word and prefix
// membership queries.
package trie

import (
	"errors"
	"fmt"

	"github.com/berkgedik92/scrabble-word-finder/tilemapping"
)

var ErrLetterOutOfRange = errors.New("letter out of alphabet range")

// Lexicon is what the move generator and the cross-check computation need
// from a dictionary.
type Lexicon interface {
	// IsWord returns true if the sequence is a complete word.
	IsWord(tilemapping.MachineWord) bool
	// IsPrefix returns true if the sequence starts at least one word. The
	// empty sequence is always a prefix.
	IsPrefix(tilemapping.MachineWord) bool
}

type node struct {
	// arcs is indexed by machine letter; it is allocated on the first
	// child so that leaves stay small.
	arcs   []*node
	isWord bool
}

// Trie is a prefix tree. The root represents the empty sequence; a word is
// in the trie exactly when its walk from the root ends on a node marked as
// a word.
type Trie struct {
	root         *node
	alphabetSize int
	numWords     int
	numNodes     int
}

// New creates an empty trie for an alphabet of the given size.
func New(alphabetSize int) *Trie {
	return &Trie{
		root:         &node{},
		alphabetSize: alphabetSize,
		numNodes:     1,
	}
}

// AddWord inserts the word, creating missing nodes along its path. Adding a
// word twice is a no-op.
func (t *Trie) AddWord(word tilemapping.MachineWord) error {
	for _, ml := range word {
		if int(ml) >= t.alphabetSize {
			return fmt.Errorf("%w: %d (alphabet size %d)", ErrLetterOutOfRange, ml, t.alphabetSize)
		}
	}
	cur := t.root
	for _, ml := range word {
		if cur.arcs == nil {
			cur.arcs = make([]*node, t.alphabetSize)
		}
		next := cur.arcs[ml]
		if next == nil {
			next = &node{}
			cur.arcs[ml] = next
			t.numNodes++
		}
		cur = next
	}
	if !cur.isWord {
		cur.isWord = true
		t.numWords++
	}
	return nil
}

// walk follows the word from the root. It returns nil if an arc is missing
// or a letter is outside the alphabet.
func (t *Trie) walk(word tilemapping.MachineWord) *node {
	cur := t.root
	for _, ml := range word {
		if cur.arcs == nil || int(ml) >= t.alphabetSize {
			return nil
		}
		cur = cur.arcs[ml]
		if cur == nil {
			return nil
		}
	}
	return cur
}

// IsWord returns true if the word was added to the trie.
func (t *Trie) IsWord(word tilemapping.MachineWord) bool {
	n := t.walk(word)
	return n != nil && n.isWord
}

// IsPrefix returns true if the word is a prefix of (or equal to) some word
// in the trie.
func (t *Trie) IsPrefix(word tilemapping.MachineWord) bool {
	return t.walk(word) != nil
}

// NumWords is the number of distinct words in the trie.
func (t *Trie) NumWords() int {
	return t.numWords
}

// NumNodes is the number of nodes in the trie, root included.
func (t *Trie) NumNodes() int {
	return t.numNodes
}

func (t *Trie) AlphabetSize() int {
	return t.alphabetSize
}
