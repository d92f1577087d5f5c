package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berkgedik92/scrabble-word-finder/config"
	"github.com/berkgedik92/scrabble-word-finder/lexicon"
	"github.com/berkgedik92/scrabble-word-finder/ruleset"
	"github.com/berkgedik92/scrabble-word-finder/runner"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"gen 5",
			&shellcmd{"gen", []string{"5"}, CmdOptions{}},
			nil},
		{"place 8G cat ",
			&shellcmd{"place", []string{"8G", "cat"}, CmdOptions{}},
			nil},
		{"gen -n 3 -n 4",
			&shellcmd{"gen", nil, CmdOptions{"n": []string{"3", "4"}}},
			nil},
		{`rack "ab c"`,
			&shellcmd{"rack", []string{"ab c"}, CmdOptions{}},
			nil},
		{"gen -n",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func TestCmdOptions(t *testing.T) {
	is := is.New(t)
	opts := CmdOptions{"n": []string{"3"}, "bad": []string{"x"}}
	is.Equal(opts.String("n"), "3")
	is.Equal(opts.String("missing"), "")
	n, err := opts.IntDefault("n", 7)
	is.NoErr(err)
	is.Equal(n, 3)
	n, err = opts.IntDefault("missing", 7)
	is.NoErr(err)
	is.Equal(n, 7)
	_, err = opts.IntDefault("bad", 7)
	is.True(err != nil)
}

func newTestController(t *testing.T) (*ShellController, *bytes.Buffer) {
	t.Helper()
	rules, err := ruleset.Load("english", "")
	require.NoError(t, err)
	lex, err := lexicon.Read(strings.NewReader("CAT\nCATS\nSCAT\nAS\nACT\n"), "test",
		rules.TileMapping(), rules.LanguageTag())
	require.NoError(t, err)
	g, err := runner.NewGameRunnerFrom(rules, lex)
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return newController(config.DefaultConfig(), g, out), out
}

func TestSession(t *testing.T) {
	sc, out := newTestController(t)

	assert.False(t, sc.execute("rack cat"))
	assert.Contains(t, out.String(), "rack set to ACT")

	out.Reset()
	sc.execute("gen 1")
	assert.Contains(t, out.String(), "  1: 8G ACT")
	assert.NotContains(t, out.String(), "  2:")
	assert.Len(t, sc.curPlayList, 1)

	out.Reset()
	sc.execute("score 8g cat")
	assert.Contains(t, out.String(), "8G CAT scores 10")
	assert.True(t, sc.runner.IsBoardEmpty())

	out.Reset()
	sc.execute("place 8g cat")
	assert.Contains(t, out.String(), "placed 8G CAT for 10")
	assert.Nil(t, sc.curPlayList)

	out.Reset()
	sc.execute("rack s")
	sc.execute("gen")
	assert.Contains(t, out.String(), "  1: 8F SCAT")
	assert.Contains(t, out.String(), "  3: H8 AS")

	out.Reset()
	sc.execute("letter j8 s")
	assert.Contains(t, out.String(), "Rack: S")

	out.Reset()
	sc.execute("show")
	assert.Contains(t, out.String(), "Rack: S")

	sc.execute("new")
	assert.True(t, sc.runner.IsBoardEmpty())
}

func TestSessionErrors(t *testing.T) {
	sc, out := newTestController(t)
	for _, line := range []string{
		"rack",
		"rack c4t",
		"place 8G",
		"place 99Z CAT",
		"letter 8H",
		"letter 8H AB",
		"gen x",
		"frobnicate",
	} {
		out.Reset()
		assert.False(t, sc.execute(line), line)
		assert.True(t, strings.HasPrefix(out.String(), "Error: "), line)
	}
	out.Reset()
	assert.False(t, sc.execute(""))
	assert.Empty(t, out.String())
}

func TestQuitAndHelp(t *testing.T) {
	is := is.New(t)
	sc, out := newTestController(t)
	is.True(sc.execute("exit"))
	is.True(sc.execute("bye"))

	is.True(!sc.execute("help"))
	is.True(strings.Contains(out.String(), "rack <letters>"))
	out.Reset()
	sc.execute("help place")
	is.True(strings.Contains(out.String(), "place G7 ACT"))
	out.Reset()
	sc.execute("help nothing")
	is.True(strings.Contains(out.String(), "no help text"))
}

func TestCompleter(t *testing.T) {
	is := is.New(t)
	c := NewShellCompleter()
	cands, n := c.Do([]rune("ge"), 2)
	is.Equal(n, 2)
	is.Equal(cands, [][]rune{[]rune("n ")})

	cands, n = c.Do([]rune("help pl"), 7)
	is.Equal(n, 2)
	is.Equal(cands, [][]rune{[]rune("ace ")})

	cands, _ = c.Do([]rune("place 8G "), 9)
	is.Equal(len(cands), 0)
}

func TestAnagramCommand(t *testing.T) {
	sc, out := newTestController(t)
	sc.execute("anagram tca")
	assert.Equal(t, "ACT CAT\n", out.String())

	out.Reset()
	sc.execute("anagram -mode build stac")
	assert.Equal(t, "CATS SCAT ACT CAT AS\n", out.String())

	out.Reset()
	sc.execute("anagram qz")
	assert.Equal(t, "no words found\n", out.String())

	out.Reset()
	sc.execute("anagram -mode fast cat")
	assert.Contains(t, out.String(), "Error: ")
}

func TestScoreRejectsBadPlays(t *testing.T) {
	sc, out := newTestController(t)
	sc.execute("place 8g cat")
	for _, line := range []string{
		"score 8N CATS",
		"score O14 CAT",
		"score 8G BAT",
	} {
		out.Reset()
		assert.NotPanics(t, func() { sc.execute(line) }, line)
		assert.True(t, strings.HasPrefix(out.String(), "Error: "), line)
	}
	out.Reset()
	sc.execute("score 8g cats")
	assert.Contains(t, out.String(), "8G CATS scores 6")
	assert.Equal(t, 3, sc.runner.Board().TilesPlayed())
}

func TestAddListedPlay(t *testing.T) {
	sc, out := newTestController(t)
	sc.execute("rack cat")

	out.Reset()
	sc.execute("add 1")
	assert.True(t, strings.HasPrefix(out.String(), "Error: "))

	sc.execute("gen")
	out.Reset()
	sc.execute("preview 1")
	assert.True(t, strings.HasPrefix(out.String(), "8G ACT (10)"))
	assert.True(t, sc.runner.IsBoardEmpty())

	for _, line := range []string{"preview 0", "add 99", "add x", "add 1 2 3", "preview"} {
		out.Reset()
		sc.execute(line)
		assert.True(t, strings.HasPrefix(out.String(), "Error: "), line)
	}

	out.Reset()
	sc.execute("add 1")
	assert.Contains(t, out.String(), "placed 8G ACT for 10")
	assert.Equal(t, 3, sc.runner.Board().TilesPlayed())
	assert.Nil(t, sc.curPlayList)

	out.Reset()
	sc.execute("add 1")
	assert.True(t, strings.HasPrefix(out.String(), "Error: "))

	out.Reset()
	sc.execute("add h8 ta")
	assert.True(t, strings.HasPrefix(out.String(), "Error: "))
	sc.execute("add 7i at")
	assert.Contains(t, out.String(), "placed 7I AT")
}

func TestExecuteOneLine(t *testing.T) {
	sc, out := newTestController(t)
	sc.Execute("rack cat")
	assert.Contains(t, out.String(), "rack set to ACT")
	assert.NotPanics(t, func() { sc.Execute("exit") })
}
