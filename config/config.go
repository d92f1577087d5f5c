// Package config holds the settings shared by the binaries. Settings come,
// in order of precedence, from command-line flags, WORDFINDER_* environment
// variables, an optional config file, and built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug          = "debug"
	ConfigLexiconPath    = "lexicon-path"
	ConfigDefaultLexicon = "lexicon"
	ConfigRuleset        = "ruleset"
	ConfigRulesetPath    = "ruleset-path"
	ConfigMaxResults     = "max-results"
	ConfigListenAddr     = "listen-addr"
	ConfigFile           = "config"
)

type Config struct {
	*viper.Viper
	args []string
}

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("wordfinder", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigLexiconPath, "./data/lexica", "directory holding word lists")
	fs.String(ConfigDefaultLexicon, "english", "the word list to load, without extension")
	fs.String(ConfigRuleset, "english", "the rule set: a built-in name or a YAML file in ruleset-path")
	fs.String(ConfigRulesetPath, "./data/rulesets", "directory holding custom rule sets")
	fs.Int(ConfigMaxResults, 20, "how many suggestions to show")
	fs.String(ConfigListenAddr, ":8088", "address the API server listens on")
	fs.String(ConfigFile, "", "optional config file (yaml, toml, or json)")
	return fs
}

// DefaultConfig returns a config holding only the built-in defaults.
func DefaultConfig() *Config {
	c, err := Load(nil)
	if err != nil {
		// Parsing no arguments cannot fail.
		panic(err)
	}
	return c
}

// Load parses the given command-line arguments (without the program name)
// and layers the environment and the config file, if any, beneath them.
func Load(args []string) (*Config, error) {
	c := &Config{Viper: viper.New()}
	fs := flagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := c.BindPFlags(fs); err != nil {
		return nil, err
	}
	c.args = fs.Args()
	c.SetEnvPrefix("wordfinder")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if cfgFile := c.GetString(ConfigFile); cfgFile != "" {
		c.SetConfigFile(cfgFile)
		if err := c.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %v: %w", cfgFile, err)
		}
		log.Debug().Str("file", c.ConfigFileUsed()).Msg("read-config-file")
	}
	return c, nil
}

// Args returns the command-line arguments left over after the flags.
func (c *Config) Args() []string {
	return c.args
}

// SanitizedSettings returns the settings in a form fit for logging.
func (c *Config) SanitizedSettings() map[string]any {
	settings := c.AllSettings()
	delete(settings, ConfigFile)
	if c.ConfigFileUsed() != "" {
		settings[ConfigFile] = c.ConfigFileUsed()
	}
	return settings
}

// AdjustRelativePaths resolves the data directories against basepath
// (normally the directory of the executable) when they are relative and
// do not exist relative to the working directory.
func (c *Config) AdjustRelativePaths(basepath string) {
	for _, key := range []string{ConfigLexiconPath, ConfigRulesetPath} {
		c.Set(key, toAbsPath(basepath, c.GetString(key), key))
	}
}

func toAbsPath(basepath string, configPath string, logname string) string {
	if filepath.IsAbs(configPath) {
		return configPath
	}
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}
	newPath := filepath.Join(basepath, configPath)
	log.Debug().Str(logname, newPath).Msg("new-path")
	return newPath
}
