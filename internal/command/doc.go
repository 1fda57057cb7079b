// Package command turns lines of user input into device state transitions.
//
// Pipeline:
//
//	┌────────────┐    ┌───────────────┐    ┌──────────────┐    ┌──────────┐
//	│  raw line  │───▶│ Parse         │───▶│  Dispatcher  │───▶│  Device  │
//	│            │    │ (parser.go)   │    │(dispatcher.go│    │ on/off/  │
//	│            │    │ action+target │    │ Registry     │    │ status/  │
//	│            │    │ +value        │    │ lookup       │    │ set      │
//	└────────────┘    └───────────────┘    └──────────────┘    └──────────┘
//	                                              │
//	                                              ▼
//	                                  Recorder (command + state change)
//	                                  Publisher (device snapshot)
//
// # Grammar
//
//	on <device>
//	off <device>
//	status <device>
//	set <device> <value>
//
// Device names may contain spaces. For set, the value is the token after the
// last space; everything before it is the name. Angle brackets are stripped
// from names so that "on <Living Room Light>" works.
//
// # Outcomes
//
// Dispatcher.Execute never returns an error. Every failure is converted into
// an Outcome with an ErrorKind and mirrored to the Recorder as an "ERROR"
// state change. Callers decide how to present it.
package command
