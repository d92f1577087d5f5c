package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/berkgedik92/scrabble-word-finder/config"
	"github.com/berkgedik92/scrabble-word-finder/engine"
	"github.com/berkgedik92/scrabble-word-finder/move"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(usage()), nil
	}
	return msg(usageTopic(cmd.args[0])), nil
}

func (sc *ShellController) rack(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: rack <letters>")
	}
	if err := sc.runner.SetCurrentRack(cmd.args[0]); err != nil {
		return nil, err
	}
	sc.curPlayList = nil
	return msg("rack set to " + sc.runner.Rack().String()), nil
}

func (sc *ShellController) place(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: place <coords> <word>, e.g. place 8G CAT")
	}
	score, err := sc.runner.PlaceWord(cmd.args[0], cmd.args[1])
	if err != nil {
		return nil, err
	}
	sc.curPlayList = nil
	return msg(fmt.Sprintf("placed %v %v for %d\n\n%v",
		strings.ToUpper(cmd.args[0]), strings.ToUpper(cmd.args[1]), score,
		sc.runner.ToDisplayText())), nil
}

func (sc *ShellController) letter(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: letter <square> <letter>, e.g. letter 8H A")
	}
	row, col, _, err := move.FromBoardGameCoords(strings.ToUpper(cmd.args[0]))
	if err != nil {
		return nil, err
	}
	if err := sc.runner.PlaceLetter(row, col, cmd.args[1]); err != nil {
		return nil, err
	}
	sc.curPlayList = nil
	return msg(sc.runner.ToDisplayText()), nil
}

func (sc *ShellController) score(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: score <coords> <word>")
	}
	m, err := sc.runner.ParseMove(cmd.args[0], cmd.args[1])
	if err != nil {
		return nil, err
	}
	pts, err := sc.runner.ScoreMove(m)
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("%v scores %d", m.ShortDescription(sc.runner.TileMapping()), pts)), nil
}

// listed returns the n-th suggestion of the last `gen` output.
func (sc *ShellController) listed(arg string) (engine.Suggestion, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return engine.Suggestion{}, fmt.Errorf("not a play number: %v", arg)
	}
	if len(sc.curPlayList) == 0 {
		return engine.Suggestion{}, errors.New("no plays listed, run `gen` first")
	}
	if n < 1 || n > len(sc.curPlayList) {
		return engine.Suggestion{}, fmt.Errorf("play number must be between 1 and %d", len(sc.curPlayList))
	}
	return sc.curPlayList[n-1], nil
}

func (sc *ShellController) add(cmd *shellcmd) (*Response, error) {
	switch len(cmd.args) {
	case 2:
		return sc.place(cmd)
	case 1:
	default:
		return nil, errors.New("usage: add <n> or add <coords> <word>")
	}
	sug, err := sc.listed(cmd.args[0])
	if err != nil {
		return nil, err
	}
	score, err := sc.runner.CommitMove(sug.Move)
	if err != nil {
		return nil, err
	}
	sc.curPlayList = nil
	return msg(fmt.Sprintf("placed %v for %d\n\n%v",
		sug.Move.ShortDescription(sc.runner.TileMapping()), score,
		sc.runner.ToDisplayText())), nil
}

func (sc *ShellController) preview(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: preview <n>")
	}
	sug, err := sc.listed(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return msg(sc.runner.PreviewDisplayText(sug)), nil
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	n := sc.config.GetInt(config.ConfigMaxResults)
	if len(cmd.args) > 0 {
		var err error
		n, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, fmt.Errorf("wrong format for `gen` command: %w", err)
		}
	}
	sc.curPlayList = sc.runner.TopSuggestions(n)
	return msg(sc.runner.SuggestionsDisplayString(sc.curPlayList)), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.runner.ToDisplayText()), nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	sc.runner.NewGame()
	sc.curPlayList = nil
	return msg(sc.runner.ToDisplayText()), nil
}

func (sc *ShellController) anagram(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: anagram [-mode build] <letters>")
	}
	words, err := sc.runner.Anagram(cmd.args[0], cmd.options.String("mode"))
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return msg("no words found"), nil
	}
	return msg(strings.Join(words, " ")), nil
}
