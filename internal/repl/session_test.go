package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerrad567/gray-logic-sim/internal/command"
	"github.com/nerrad567/gray-logic-sim/internal/device"
	"github.com/nerrad567/gray-logic-sim/internal/history"
)

type readResult struct {
	line string
	err  error
}

// scriptReader replays a fixed script, then reports io.EOF.
type scriptReader struct {
	mu     sync.Mutex
	script []readResult
	closed bool
}

func lines(ls ...string) *scriptReader {
	r := &scriptReader{}
	for _, l := range ls {
		r.script = append(r.script, readResult{line: l})
	}
	return r
}

func (r *scriptReader) Readline() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || len(r.script) == 0 {
		return "", io.EOF
	}
	next := r.script[0]
	r.script = r.script[1:]
	return next.line, next.err
}

func (r *scriptReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *scriptReader) isClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

type harness struct {
	session *Session
	log     *history.Log
	out     *bytes.Buffer
	errOut  *bytes.Buffer
	reader  *scriptReader
	dir     string
}

func newHarness(t *testing.T, reader *scriptReader) *harness {
	t.Helper()

	dir := t.TempDir()
	log, err := history.Open(history.Options{Path: filepath.Join(dir, "smart_home_log.txt")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = log.Close() })

	reg := device.NewRegistry()
	require.NoError(t, reg.Add(device.NewLight("Living Room Light")))
	require.NoError(t, reg.Add(device.NewThermostat("Main Thermostat")))
	require.NoError(t, reg.Add(device.NewSecurityCamera("Front Door Camera")))

	h := &harness{
		log:    log,
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
		reader: reader,
		dir:    dir,
	}
	h.session = NewSession(reader, reg, command.NewDispatcher(reg, log), log, Options{
		NoColor: true,
		Stdout:  h.out,
		Stderr:  h.errOut,
	})
	return h
}

func (h *harness) run(t *testing.T) {
	t.Helper()
	require.NoError(t, h.session.Run(context.Background()))
}

func TestRun_WelcomeAndFarewell(t *testing.T) {
	h := newHarness(t, lines("exit", "list"))
	h.run(t)

	out := h.out.String()
	assert.Contains(t, out, "Welcome to the Smart Home Automation System!")
	assert.Contains(t, out, "- history [n] : Show last n commands (shows all if n not specified)")
	assert.True(t, strings.HasSuffix(out, "Thank you for using the Smart Home Automation System!\n"))
	assert.NotContains(t, out, "Devices in the Smart Home:", "nothing runs after exit")
	assert.True(t, h.reader.isClosed())
}

func TestRun_BannerPrecedesWelcome(t *testing.T) {
	h := newHarness(t, lines())
	h.run(t)

	assert.False(t, strings.HasSuffix(banner, "\n"), "Fprintln supplies the line break")
	assert.True(t, strings.HasPrefix(h.out.String(), banner+"\nWelcome to the Smart Home Automation System!\n"))
}

func TestRun_EndOfInputExits(t *testing.T) {
	h := newHarness(t, lines("list"))
	h.run(t)

	assert.Contains(t, h.out.String(), "Thank you for using")
}

func TestRun_InterruptContinues(t *testing.T) {
	h := newHarness(t, &scriptReader{script: []readResult{
		{err: readline.ErrInterrupt},
		{line: "show"},
	}})
	h.run(t)

	assert.Contains(t, h.out.String(), "Device Statuses:")
}

func TestRun_ReadErrorIsReturned(t *testing.T) {
	h := newHarness(t, &scriptReader{script: []readResult{{err: errors.New("tty gone")}}})

	err := h.session.Run(context.Background())
	assert.ErrorContains(t, err, "tty gone")
}

func TestRun_CancelledContextStops(t *testing.T) {
	h := newHarness(t, lines("on Living Room Light"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, h.session.Run(ctx))
	assert.Zero(t, h.log.Len(), "no command runs after cancellation")
}

func TestRun_CustomSiteName(t *testing.T) {
	h := newHarness(t, lines())
	h.session.site = "Lake House"
	h.run(t)

	assert.Contains(t, h.out.String(), "Welcome to the Lake House Automation System!")
	assert.Contains(t, h.out.String(), "Thank you for using the Lake House Automation System!")
}

func TestHandle_List(t *testing.T) {
	h := newHarness(t, lines())

	assert.True(t, h.session.Handle(context.Background(), "list"))
	assert.Equal(t,
		"\nDevices in the Smart Home:\n- Living Room Light\n- Main Thermostat\n- Front Door Camera\n",
		h.out.String())
	assert.Zero(t, h.log.Len(), "built-ins are not recorded")
}

func TestHandle_Show(t *testing.T) {
	h := newHarness(t, lines())

	h.session.Handle(context.Background(), "show")
	assert.Equal(t,
		"\nDevice Statuses:\n"+
			"Living Room Light is off (Brightness: 0%)\n"+
			"Main Thermostat is off (Temperature: 20°C)\n"+
			"Front Door Camera is off (Not Recording)\n",
		h.out.String())
}

func TestHandle_Commands(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantOut string
		wantErr string
	}{
		{name: "status prints", line: "status Main Thermostat", wantOut: "Main Thermostat is off (Temperature: 20°C)\n"},
		{name: "on is silent", line: "on Living Room Light"},
		{name: "unknown device", line: "on Lamp", wantErr: "Error: device not found: Lamp\n"},
		{name: "light off warning", line: "set Living Room Light 50", wantErr: "Cannot adjust brightness while the light is off.\n"},
		{name: "range error", line: "set Main Thermostat 41", wantErr: "Error: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, lines())

			assert.True(t, h.session.Handle(context.Background(), tt.line))
			assert.Equal(t, tt.wantOut, h.out.String())
			if tt.wantErr == "" {
				assert.Empty(t, h.errOut.String())
			} else {
				assert.True(t, strings.HasPrefix(h.errOut.String(), tt.wantErr), h.errOut.String())
			}
			assert.Equal(t, 1, h.log.Len())
		})
	}
}

func TestHandle_EmptyLineIgnored(t *testing.T) {
	h := newHarness(t, lines())

	assert.True(t, h.session.Handle(context.Background(), "   "))
	assert.Zero(t, h.log.Len())
	assert.Empty(t, h.out.String())
	assert.Empty(t, h.errOut.String())
}

func TestHandle_History(t *testing.T) {
	h := newHarness(t, lines())
	ctx := context.Background()
	h.session.Handle(ctx, "on Living Room Light")
	h.session.Handle(ctx, "status Living Room Light")
	h.session.Handle(ctx, "off Living Room Light")

	t.Run("all", func(t *testing.T) {
		h.out.Reset()
		h.session.Handle(ctx, "history")

		got := strings.Split(strings.TrimSpace(h.out.String()), "\n")
		require.Len(t, got, 4)
		assert.Equal(t, "Command History:", got[0])
		assert.True(t, strings.HasSuffix(got[1], " - off Living Room Light"))
		assert.True(t, strings.HasSuffix(got[3], " - on Living Room Light"))
	})

	t.Run("limited", func(t *testing.T) {
		h.out.Reset()
		h.session.Handle(ctx, "history 1")

		got := strings.Split(strings.TrimSpace(h.out.String()), "\n")
		require.Len(t, got, 2)
		assert.True(t, strings.HasSuffix(got[1], " - off Living Room Light"))
	})

	t.Run("invalid", func(t *testing.T) {
		for _, line := range []string{"history abc", "history -2"} {
			h.out.Reset()
			h.errOut.Reset()
			h.session.Handle(ctx, line)

			assert.Empty(t, h.out.String(), line)
			assert.Equal(t, "Invalid history command format\n", h.errOut.String(), line)
		}
	})
}

func TestHandle_Save(t *testing.T) {
	h := newHarness(t, lines())
	ctx := context.Background()
	h.session.Handle(ctx, "on Living Room Light")

	target := filepath.Join(h.dir, "saved.txt")
	h.session.Handle(ctx, "save "+target)

	assert.Equal(t, "History saved to "+target+"\n", h.out.String())
	b, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "=== Smart Home Command History ===\n\n"))
	assert.Contains(t, string(b), " - on Living Room Light\n")
}

func TestHandle_SaveErrors(t *testing.T) {
	h := newHarness(t, lines())
	ctx := context.Background()

	for _, line := range []string{"save", "save "} {
		h.errOut.Reset()
		h.session.Handle(ctx, line)
		assert.Equal(t, "Please specify a filename\n", h.errOut.String(), line)
	}

	h.errOut.Reset()
	h.session.Handle(ctx, "save "+filepath.Join(h.dir, "missing", "out.txt"))
	assert.True(t, strings.HasPrefix(h.errOut.String(), "Error: "))
}

func TestHandle_Help(t *testing.T) {
	h := newHarness(t, lines())

	h.session.Handle(context.Background(), "help")
	assert.Equal(t, helpText+"\n", h.out.String())
}

func TestCompleter(t *testing.T) {
	c := newCompleter(func() []string { return []string{"Living Room Light", "Main Thermostat"} })

	candidates, _ := c.Do([]rune("on Ma"), len("on Ma"))
	var got []string
	for _, cand := range candidates {
		got = append(got, string(cand))
	}
	assert.Contains(t, got, "in Thermostat ")
}
