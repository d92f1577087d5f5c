// Package lexicon reads word lists into the trie used by the engine.
package lexicon

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/berkgedik92/scrabble-word-finder/cache"
	"github.com/berkgedik92/scrabble-word-finder/config"
	"github.com/berkgedik92/scrabble-word-finder/tilemapping"
	"github.com/berkgedik92/scrabble-word-finder/trie"
)

// Lexicon is a named trie.
type Lexicon struct {
	*trie.Trie
	name string
	// skipped counts the entries that had letters outside the alphabet.
	skipped int
}

func (l *Lexicon) Name() string {
	return l.name
}

// Skipped is the number of entries that were dropped because they could
// not be spelled with the alphabet.
func (l *Lexicon) Skipped() int {
	return l.skipped
}

// Read builds a lexicon from one word per line. Words are upper-cased with
// the rules of lang, so that the Turkish i becomes İ. Blank lines and
// lines starting with # are ignored; anything after the first whitespace
// on a line is ignored too, which allows lists that carry definitions.
func Read(r io.Reader, name string, tm *tilemapping.TileMapping, lang language.Tag) (*Lexicon, error) {
	lex := &Lexicon{Trie: trie.New(tm.NumLetters()), name: name}
	caser := cases.Upper(lang)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		word := caser.String(fields[0])
		mw, err := tilemapping.ToMachineWord(word, tm)
		if err != nil || len(mw) == 0 || hasPlayedThrough(mw) {
			lex.skipped++
			continue
		}
		if err := lex.AddWord(mw); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list %v: %w", name, err)
	}
	log.Debug().Str("lexicon", name).Int("words", lex.NumWords()).
		Int("nodes", lex.NumNodes()).Int("skipped", lex.skipped).Msg("read-lexicon")
	return lex, nil
}

func hasPlayedThrough(mw tilemapping.MachineWord) bool {
	for _, ml := range mw {
		if ml == tilemapping.NoLetter {
			return true
		}
	}
	return false
}

// Load reads a word list file. Files ending in .gz are decompressed.
func Load(path string, tm *tilemapping.TileMapping, lang language.Tag) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %v: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}
	name := strings.TrimSuffix(strings.TrimSuffix(filepath.Base(path), ".gz"), ".txt")
	return Read(r, name, tm, lang)
}

// Find returns the path of the named word list in dir: name.txt or
// name.txt.gz.
func Find(dir string, name string) (string, error) {
	for _, fn := range []string{name + ".txt", name + ".txt.gz"} {
		path := filepath.Join(dir, fn)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("word list %v not found in %v", name, dir)
}

// Get loads the word list named in the config, using the object cache.
// A list read under one alphabet is never handed out for another.
func Get(cfg *config.Config, tm *tilemapping.TileMapping, lang language.Tag) (*Lexicon, error) {
	path, err := Find(cfg.GetString(config.ConfigLexiconPath), cfg.GetString(config.ConfigDefaultLexicon))
	if err != nil {
		return nil, err
	}
	key := "lexicon:" + path + ":" + lang.String() + ":" + string(tm.Letters())
	obj, err := cache.Load(key, func(string) (any, error) {
		return Load(path, tm, lang)
	})
	if err != nil {
		return nil, err
	}
	return obj.(*Lexicon), nil
}
