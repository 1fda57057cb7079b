package repl

import (
	"fmt"
	"io"
	"sync"

	"github.com/chzyer/readline"
)

// LineReader supplies input lines. Readline returns io.EOF at end of input
// and readline.ErrInterrupt when the user presses Ctrl-C.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// Terminal is a LineReader backed by readline.
type Terminal struct {
	rl        *readline.Instance
	closeOnce sync.Once
}

// NewTerminal creates a terminal with the given prompt. names is called on
// each completion request so newly added devices are offered.
func NewTerminal(prompt string, names func() []string) (*Terminal, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    newCompleter(names),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Terminal{rl: rl}, nil
}

func newCompleter(names func() []string) *readline.PrefixCompleter {
	dynamic := readline.PcItemDynamic(func(string) []string { return names() })
	return readline.NewPrefixCompleter(
		readline.PcItem("on", dynamic),
		readline.PcItem("off", dynamic),
		readline.PcItem("status", dynamic),
		readline.PcItem("set", dynamic),
		readline.PcItem("list"),
		readline.PcItem("show"),
		readline.PcItem("history"),
		readline.PcItem("save"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}

// Readline implements LineReader.
func (t *Terminal) Readline() (string, error) {
	return t.rl.Readline()
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() error {
	var err error
	t.closeOnce.Do(func() { err = t.rl.Close() })
	return err
}

// Stdout returns a writer that redraws the prompt after each write.
func (t *Terminal) Stdout() io.Writer {
	return t.rl.Stdout()
}

// Stderr is the error counterpart of Stdout. Pass it to the diagnostic
// logger so log lines do not break the prompt.
func (t *Terminal) Stderr() io.Writer {
	return t.rl.Stderr()
}
