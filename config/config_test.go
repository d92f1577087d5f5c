package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.Equal(c.GetBool(ConfigDebug), false)
	is.Equal(c.GetString(ConfigDefaultLexicon), "english")
	is.Equal(c.GetString(ConfigRuleset), "english")
	is.Equal(c.GetInt(ConfigMaxResults), 20)
	is.Equal(c.GetString(ConfigListenAddr), ":8088")
}

func TestFlags(t *testing.T) {
	is := is.New(t)
	c, err := Load([]string{"--debug", "--max-results", "5", "--ruleset=turkish"})
	is.NoErr(err)
	is.True(c.GetBool(ConfigDebug))
	is.Equal(c.GetInt(ConfigMaxResults), 5)
	is.Equal(c.GetString(ConfigRuleset), "turkish")
}

func TestArgs(t *testing.T) {
	is := is.New(t)
	c, err := Load([]string{"--debug", "rack", "CAT"})
	is.NoErr(err)
	is.Equal(c.Args(), []string{"rack", "CAT"})
	is.Equal(c.SanitizedSettings()[ConfigMaxResults], 20)
}

func TestBadFlag(t *testing.T) {
	_, err := Load([]string{"--no-such-flag"})
	assert.Error(t, err)
}

func TestEnvironment(t *testing.T) {
	is := is.New(t)
	t.Setenv("WORDFINDER_MAX_RESULTS", "7")
	t.Setenv("WORDFINDER_LEXICON", "turkish")
	c, err := Load(nil)
	is.NoErr(err)
	is.Equal(c.GetInt(ConfigMaxResults), 7)
	is.Equal(c.GetString(ConfigDefaultLexicon), "turkish")

	// A flag given on the command line beats the environment.
	c, err = Load([]string{"--max-results=3"})
	is.NoErr(err)
	is.Equal(c.GetInt(ConfigMaxResults), 3)
}

func TestConfigFile(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	f := filepath.Join(dir, "wordfinder.yaml")
	is.NoErr(os.WriteFile(f, []byte("max-results: 12\nlisten-addr: \"127.0.0.1:9000\"\n"), 0644))

	c, err := Load([]string{"--config", f})
	is.NoErr(err)
	is.Equal(c.GetInt(ConfigMaxResults), 12)
	is.Equal(c.GetString(ConfigListenAddr), "127.0.0.1:9000")
	is.Equal(c.GetString(ConfigRuleset), "english")

	_, err = Load([]string{"--config", filepath.Join(dir, "missing.yaml")})
	is.True(err != nil)
}

func TestAdjustRelativePaths(t *testing.T) {
	is := is.New(t)
	c, err := Load([]string{"--lexicon-path", "./no/such/dir", "--ruleset-path", "/abs/rulesets"})
	is.NoErr(err)
	c.AdjustRelativePaths("/opt/wordfinder")
	is.Equal(c.GetString(ConfigLexiconPath), "/opt/wordfinder/no/such/dir")
	is.Equal(c.GetString(ConfigRulesetPath), "/abs/rulesets")
}
