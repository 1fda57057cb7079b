// Package history records what happens in a simulator session.
//
// A Log has three sinks:
//
//	RecordCommand / RecordStateChange
//	        │
//	        ├── append-only text file   "<ts> - Command: <raw>"
//	        ├── bounded memory history  "<ts> - <raw>"   (commands only)
//	        └── optional Store          SQLite archive, one row per record
//
// The text file is opened once by Open; failing to open it is fatal for the
// session. Writes after that are best-effort: a failed write is logged and
// the command carries on.
//
// The memory history evicts its oldest entry once Capacity is exceeded.
// Entries returns it newest first; Save writes it oldest first under a
// fixed header.
package history
