// Package ruleset loads the per-language game settings: the alphabet with
// the value and tile count of every letter, and the board layout.
package ruleset

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/berkgedik92/scrabble-word-finder/board"
	"github.com/berkgedik92/scrabble-word-finder/cache"
	"github.com/berkgedik92/scrabble-word-finder/config"
	"github.com/berkgedik92/scrabble-word-finder/tilemapping"
)

//go:embed data/*.yaml
var builtin embed.FS

var ErrUnknownRuleset = errors.New("unknown rule set")

// LetterRule is one letter of the alphabet. The order of the rules is the
// order of the machine letters.
type LetterRule struct {
	Letter string `yaml:"letter"`
	Points int    `yaml:"points"`
	Count  uint8  `yaml:"count"`
}

type Ruleset struct {
	Name     string       `yaml:"name"`
	Language string       `yaml:"language"`
	Board    []string     `yaml:"board"`
	Letters  []LetterRule `yaml:"letters"`

	lang    language.Tag
	dist    *tilemapping.LetterDistribution
	dim     int
	bonuses []board.BonusCell
}

// Parse reads a rule set from YAML.
func Parse(data []byte) (*Ruleset, error) {
	rs := &Ruleset{}
	if err := yaml.Unmarshal(data, rs); err != nil {
		return nil, fmt.Errorf("parsing rule set: %w", err)
	}
	if err := rs.init(); err != nil {
		return nil, fmt.Errorf("rule set %v: %w", rs.Name, err)
	}
	return rs, nil
}

func (rs *Ruleset) init() error {
	var err error
	rs.lang, err = language.Parse(rs.Language)
	if err != nil {
		return err
	}
	if len(rs.Letters) == 0 {
		return errors.New("no letters")
	}
	runes := make([]rune, len(rs.Letters))
	for i, l := range rs.Letters {
		if utf8.RuneCountInString(l.Letter) != 1 {
			return fmt.Errorf("letter %q must be a single character", l.Letter)
		}
		if l.Points < 0 {
			return fmt.Errorf("letter %v has negative points", l.Letter)
		}
		runes[i], _ = utf8.DecodeRuneInString(l.Letter)
	}
	tm, err := tilemapping.NewTileMapping(runes)
	if err != nil {
		return err
	}
	rs.dist, err = tilemapping.NewLetterDistribution(rs.Name, tm,
		lo.Map(rs.Letters, func(l LetterRule, _ int) int { return l.Points }),
		lo.Map(rs.Letters, func(l LetterRule, _ int) uint8 { return l.Count }))
	if err != nil {
		return err
	}
	rs.dim, rs.bonuses, err = board.ParseLayout(rs.Board)
	return err
}

func (rs *Ruleset) LetterDistribution() *tilemapping.LetterDistribution {
	return rs.dist
}

func (rs *Ruleset) TileMapping() *tilemapping.TileMapping {
	return rs.dist.TileMapping()
}

// LanguageTag is used to upper-case words and user input.
func (rs *Ruleset) LanguageTag() language.Tag {
	return rs.lang
}

func (rs *Ruleset) Dim() int {
	return rs.dim
}

func (rs *Ruleset) Bonuses() []board.BonusCell {
	return rs.bonuses
}

// Builtin lists the names of the rule sets compiled into the binary.
func Builtin() []string {
	entries, err := builtin.ReadDir("data")
	if err != nil {
		panic(err)
	}
	return lo.Map(entries, func(e os.DirEntry, _ int) string {
		return strings.TrimSuffix(e.Name(), ".yaml")
	})
}

// Load finds a rule set by name: a built-in one, or name.yaml (or name
// itself, if it has an extension) in dir.
func Load(name string, dir string) (*Ruleset, error) {
	data, err := builtin.ReadFile("data/" + strings.ToLower(name) + ".yaml")
	if err != nil {
		fn := name
		if filepath.Ext(fn) == "" {
			fn += ".yaml"
		}
		if !filepath.IsAbs(fn) {
			fn = filepath.Join(dir, fn)
		}
		data, err = os.ReadFile(fn)
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v (built-in: %v)", ErrUnknownRuleset, name,
				strings.Join(Builtin(), ", "))
		} else if err != nil {
			return nil, err
		}
		log.Debug().Str("file", fn).Msg("reading-rule-set")
	}
	return Parse(data)
}

// Get loads the rule set named in the config, using the object cache.
func Get(cfg *config.Config) (*Ruleset, error) {
	name := cfg.GetString(config.ConfigRuleset)
	dir := cfg.GetString(config.ConfigRulesetPath)
	obj, err := cache.Load("ruleset:"+dir+":"+name, func(string) (any, error) {
		return Load(name, dir)
	})
	if err != nil {
		return nil, err
	}
	return obj.(*Ruleset), nil
}
