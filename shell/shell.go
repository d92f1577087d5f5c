// Package shell is the interactive front end: a readline loop that reads
// commands and runs them against a GameRunner.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/berkgedik92/scrabble-word-finder/config"
	"github.com/berkgedik92/scrabble-word-finder/engine"
	"github.com/berkgedik92/scrabble-word-finder/runner"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errQuit              = errors.New("quitting")
)

type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	config *config.Config
	runner *runner.GameRunner

	curPlayList []engine.Suggestion
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController loads the configured rule set and word list and sets up
// the line editor.
func NewShellController(cfg *config.Config) (*ShellController, error) {
	g, err := runner.NewGameRunner(cfg)
	if err != nil {
		return nil, err
	}
	sc := newController(cfg, g, os.Stdout)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mwordfinder>\033[0m ",
		HistoryFile:     "/tmp/wordfinder-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    NewShellCompleter(),

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc.l = l
	sc.out = l.Stdout()
	return sc, nil
}

func newController(cfg *config.Config, g *runner.GameRunner, out io.Writer) *ShellController {
	return &ShellController{config: cfg, runner: g, out: out}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") && len(fields[idx]) > 1 {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := fields[idx][1:]
			options[key] = append(options[key], fields[idx+1])
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) standardModeSwitch(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "bye":
		return nil, errQuit
	case "help":
		return sc.help(cmd)
	case "rack":
		return sc.rack(cmd)
	case "place":
		return sc.place(cmd)
	case "add":
		return sc.add(cmd)
	case "preview":
		return sc.preview(cmd)
	case "letter":
		return sc.letter(cmd)
	case "score":
		return sc.score(cmd)
	case "gen":
		return sc.generate(cmd)
	case "anagram":
		return sc.anagram(cmd)
	case "show":
		return sc.show(cmd)
	case "new":
		return sc.newGame(cmd)
	default:
		log.Debug().Msgf("you said: %v", strconv.Quote(line))
		return nil, fmt.Errorf("unknown command %q; try `help`", cmd.cmd)
	}
}

// Execute runs a single command line, as given on the command line of the
// binary.
func (sc *ShellController) Execute(line string) {
	sc.execute(line)
}

// execute runs one line and reports whether the user asked to quit.
func (sc *ShellController) execute(line string) bool {
	resp, err := sc.standardModeSwitch(line)
	if errors.Is(err, errQuit) {
		return true
	}
	if errors.Is(err, errNoData) {
		return false
	}
	if err != nil {
		sc.showError(err)
		return false
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	return false
}

// Loop reads and runs commands until the user quits, sends EOF, or
// interrupts an empty line.
func (sc *ShellController) Loop() {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if sc.execute(line) {
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
