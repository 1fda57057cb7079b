package history

import "errors"

var (
	// ErrClosed is returned by Restore after Close.
	ErrClosed = errors.New("history log is closed")

	// ErrNoStore is returned by Restore when no archive is configured.
	ErrNoStore = errors.New("no history archive configured")

	// ErrEmptyFilename is returned by Save for a blank filename.
	ErrEmptyFilename = errors.New("filename is required")
)
