package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/nerrad567/gray-logic-sim/internal/command"
	"github.com/nerrad567/gray-logic-sim/internal/device"
)

// History is the part of history.Log the console needs.
type History interface {
	Entries(limit int) []string
	Save(filename string) error
}

// Logger defines the logging interface used by the Session.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...any) {}
func (noopLogger) Warn(string, ...any) {}

// Options configures a Session.
type Options struct {
	// SiteName appears in the welcome and farewell lines.
	SiteName string

	// NoColor disables ANSI colours.
	NoColor bool

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

type palette struct {
	banner, heading, success, warn, fail *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		banner:  color.New(color.FgBlue),
		heading: color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
	}
	if noColor {
		for _, c := range []*color.Color{p.banner, p.heading, p.success, p.warn, p.fail} {
			c.DisableColor()
		}
	}
	return p
}

// Session is one interactive console run.
type Session struct {
	reader     LineReader
	registry   *device.Registry
	dispatcher *command.Dispatcher
	history    History
	logger     Logger

	site   string
	out    io.Writer
	errOut io.Writer
	colors palette
}

// NewSession wires a console to the simulator core.
func NewSession(reader LineReader, registry *device.Registry, dispatcher *command.Dispatcher, history History, opts Options) *Session {
	s := &Session{
		reader:     reader,
		registry:   registry,
		dispatcher: dispatcher,
		history:    history,
		logger:     noopLogger{},
		site:       opts.SiteName,
		out:        opts.Stdout,
		errOut:     opts.Stderr,
		colors:     newPalette(opts.NoColor),
	}
	if s.site == "" {
		s.site = "Smart Home"
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.errOut == nil {
		s.errOut = os.Stderr
	}
	return s
}

// SetLogger sets the logger for the session.
func (s *Session) SetLogger(logger Logger) {
	s.logger = logger
}

// Run prints the banner and processes lines until exit, end of input, or
// ctx is cancelled. The reader is closed on return.
func (s *Session) Run(ctx context.Context) error {
	defer s.reader.Close() //nolint:errcheck // Terminal restore is best effort

	// Cancellation unblocks a pending Readline by closing the reader.
	stop := context.AfterFunc(ctx, func() { s.reader.Close() }) //nolint:errcheck // See above
	defer stop()

	s.printWelcome()

	for {
		line, err := s.reader.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				break
			}
			return fmt.Errorf("reading input: %w", err)
		}
		if ctx.Err() != nil || !s.Handle(ctx, line) {
			break
		}
	}

	s.colors.warn.Fprintf(s.out, "Thank you for using the %s Automation System!\n", s.site)
	return nil
}

// Handle processes one line and reports whether the session should continue.
func (s *Session) Handle(ctx context.Context, line string) bool {
	switch {
	case line == "exit":
		return false
	case strings.TrimSpace(line) == "":
		// Nothing to record.
	case line == "list":
		s.list()
	case line == "show":
		s.show()
	case line == "help":
		fmt.Fprintln(s.out, helpText)
	case line == "history" || strings.HasPrefix(line, "history "):
		s.showHistory(strings.TrimPrefix(line, "history"))
	case line == "save" || strings.HasPrefix(line, "save "):
		s.save(strings.TrimPrefix(line, "save"))
	default:
		s.execute(ctx, line)
	}
	return true
}

func (s *Session) printWelcome() {
	s.colors.banner.Fprintln(s.out, banner)
	s.colors.warn.Fprintf(s.out, "Welcome to the %s Automation System!\n", s.site)
	fmt.Fprintln(s.out, helpText)
}

func (s *Session) list() {
	s.colors.heading.Fprintln(s.out, "\nDevices in the Smart Home:")
	for _, name := range s.registry.Names() {
		fmt.Fprintln(s.out, "- "+name)
	}
}

func (s *Session) show() {
	s.colors.heading.Fprintln(s.out, "\nDevice Statuses:")
	for d := range s.registry.All() {
		fmt.Fprintln(s.out, d.Status())
	}
}

// showHistory handles "history" with an optional count. arg is the text
// after the keyword, including its leading space.
func (s *Session) showHistory(arg string) {
	limit := -1
	if arg = strings.TrimSpace(arg); arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			s.colors.fail.Fprintln(s.errOut, "Invalid history command format")
			return
		}
		limit = n
	}

	s.colors.heading.Fprintln(s.out, "\nCommand History:")
	for _, entry := range s.history.Entries(limit) {
		fmt.Fprintln(s.out, entry)
	}
}

// save handles "save <file>". arg is the text after the keyword.
func (s *Session) save(arg string) {
	filename := strings.TrimPrefix(arg, " ")
	if filename == "" {
		s.colors.fail.Fprintln(s.errOut, "Please specify a filename")
		return
	}

	if err := s.history.Save(filename); err != nil {
		s.logger.Warn("saving history failed", "file", filename, "error", err)
		s.colors.fail.Fprintf(s.errOut, "Error: %v\n", err)
		return
	}
	s.logger.Info("history saved", "file", filename)
	s.colors.success.Fprintf(s.out, "History saved to %s\n", filename)
}

func (s *Session) execute(ctx context.Context, line string) {
	out := s.dispatcher.Execute(ctx, line)

	switch {
	case out.Err != nil:
		s.colors.fail.Fprintf(s.errOut, "Error: %v\n", out.Err)
	case out.Warning != "":
		s.colors.fail.Fprintln(s.errOut, out.Warning)
	case out.Status != "":
		fmt.Fprintln(s.out, out.Status)
	}
}
