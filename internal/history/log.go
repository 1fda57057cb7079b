package history

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	// TimestampLayout formats every timestamp in the file and memory history.
	TimestampLayout = "2006-01-02 15:04:05"

	// DefaultCapacity bounds the memory history when Options.Capacity is unset.
	DefaultCapacity = 1000

	sessionHeader = "\n=== New Session Started ===\n"
	saveHeader    = "=== Smart Home Command History ===\n\n"

	logFileMode  = 0644
	archiveWrite = 2 * time.Second
)

// Logger is the diagnostic logger used for best-effort failures.
type Logger interface {
	Warn(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Warn(string, ...any) {}

// Options configures Open.
type Options struct {
	// Path is the append-only text log. Required.
	Path string

	// Capacity bounds the memory history. Zero selects DefaultCapacity.
	Capacity int

	// Store, when set, receives a copy of every record.
	Store Store

	// Logger receives write failures. Defaults to a no-op.
	Logger Logger

	// Clock overrides time.Now, for tests.
	Clock func() time.Time
}

// Log is the session's command and state-change recorder.
//
// Thread Safety:
//   - All methods are safe for concurrent use.
type Log struct {
	mu       sync.Mutex
	file     *os.File
	entries  []string
	capacity int
	store    Store
	logger   Logger
	now      func() time.Time
	closed   bool
}

// Open opens (creating if needed) the log file in append mode and writes
// the session header.
func Open(opts Options) (*Log, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("log file: %w", ErrEmptyFilename)
	}

	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFileMode)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", opts.Path, err)
	}
	if _, err := f.WriteString(sessionHeader); err != nil {
		f.Close() //nolint:errcheck // Best effort cleanup on error path
		return nil, fmt.Errorf("writing session header: %w", err)
	}

	l := &Log{
		file:     f,
		capacity: opts.Capacity,
		store:    opts.Store,
		logger:   opts.Logger,
		now:      opts.Clock,
	}
	if l.capacity <= 0 {
		l.capacity = DefaultCapacity
	}
	if l.logger == nil {
		l.logger = noopLogger{}
	}
	if l.now == nil {
		l.now = time.Now
	}
	return l, nil
}

// RecordCommand logs a raw input line before it is validated.
func (l *Log) RecordCommand(raw string) {
	ts := l.now()
	stamp := ts.Format(TimestampLayout)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.writeLine(stamp + " - Command: " + raw)
	l.push(stamp + " - " + raw)
	l.archive(Entry{Kind: KindCommand, Text: raw, CreatedAt: ts})
}

// RecordStateChange logs the outcome of a command against deviceName.
// Errors are recorded with the device name "ERROR".
func (l *Log) RecordStateChange(deviceName, description string) {
	ts := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.writeLine(ts.Format(TimestampLayout) + " - State Change: " + deviceName + " - " + description)
	l.archive(Entry{Kind: KindStateChange, Device: deviceName, Text: description, CreatedAt: ts})
}

func (l *Log) writeLine(line string) {
	if l.closed {
		return
	}
	if _, err := l.file.WriteString(line + "\n"); err != nil {
		l.logger.Warn("failed to write history log", "path", l.file.Name(), "error", err)
	}
}

// push appends to the memory history, evicting the oldest entry past capacity.
func (l *Log) push(entry string) {
	if len(l.entries) == l.capacity {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:len(l.entries)-1]
	}
	l.entries = append(l.entries, entry)
}

func (l *Log) archive(e Entry) {
	if l.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), archiveWrite)
	defer cancel()
	if err := l.store.Append(ctx, e); err != nil {
		l.logger.Warn("failed to archive history entry", "kind", e.Kind, "error", err)
	}
}

// Entries returns up to limit memory entries, newest first.
// A negative limit returns every entry.
func (l *Log) Entries(limit int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.entries)
	if limit >= 0 && limit < n {
		n = limit
	}

	out := make([]string, 0, n)
	for i := len(l.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

// Len returns the number of entries in the memory history.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Save writes the memory history, oldest first, to filename, replacing
// any existing file.
func (l *Log) Save(filename string) error {
	if strings.TrimSpace(filename) == "" {
		return ErrEmptyFilename
	}

	l.mu.Lock()
	var b strings.Builder
	b.WriteString(saveHeader)
	for _, e := range l.entries {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	l.mu.Unlock()

	if err := os.WriteFile(filename, []byte(b.String()), logFileMode); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}

// Restore seeds the memory history with up to limit archived commands from
// earlier sessions, keeping their original order. It returns the number of
// entries loaded.
func (l *Log) Restore(ctx context.Context, limit int) (int, error) {
	if l.store == nil {
		return 0, ErrNoStore
	}
	if limit <= 0 || limit > l.capacity {
		limit = l.capacity
	}

	recent, err := l.store.Recent(ctx, KindCommand, limit)
	if err != nil {
		return 0, fmt.Errorf("restoring history: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return 0, ErrClosed
	}

	restored := make([]string, 0, len(recent)+len(l.entries))
	for i := len(recent) - 1; i >= 0; i-- {
		e := recent[i]
		restored = append(restored, e.CreatedAt.In(time.Local).Format(TimestampLayout)+" - "+e.Text)
	}
	l.entries = append(restored, l.entries...)
	if over := len(l.entries) - l.capacity; over > 0 {
		l.entries = l.entries[over:]
	}
	return len(recent), nil
}

// Close closes the log file. Records made after Close still reach the
// memory history and archive but not the file.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("closing history log: %w", err)
	}
	return nil
}
