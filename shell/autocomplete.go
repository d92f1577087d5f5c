package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// ShellCompleter completes command names and help topics.
type ShellCompleter struct{}

func NewShellCompleter() *ShellCompleter {
	return &ShellCompleter{}
}

var commandNames = []string{
	"add", "anagram", "bye", "exit", "gen", "help", "letter", "new", "place", "preview", "rack", "score", "show",
}

var helpTopics = []string{"add", "anagram", "gen", "letter", "place", "preview", "rack", "score"}

// Do implements readline.AutoCompleter.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string
	switch {
	case len(fields) == 0 || (len(fields) == 1 && !endsWithSpace):
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	case fields[0] == "help" && (len(fields) == 1 || (len(fields) == 2 && !endsWithSpace)):
		if len(fields) == 2 {
			prefix = fields[1]
		}
		completions = helpTopics
	default:
		return nil, 0
	}

	var out [][]rune
	for _, cand := range completions {
		if strings.HasPrefix(cand, prefix) {
			out = append(out, []rune(cand[len(prefix):]+" "))
		}
	}
	return out, len([]rune(prefix))
}
