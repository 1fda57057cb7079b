package command

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Action is the verb of a command.
type Action string

// Recognised actions. Any other word is carried through Parse unchanged and
// rejected by the Dispatcher.
const (
	ActionOn     Action = "on"
	ActionOff    Action = "off"
	ActionStatus Action = "status"
	ActionSet    Action = "set"
)

// Command is one parsed line of input.
type Command struct {
	// Raw is the line as entered.
	Raw string

	Action Action

	// Target is the sanitised device name.
	Target string

	// Value is the set argument; meaningful only when HasValue is true.
	Value    int
	HasValue bool
}

// Parse splits a line into a Command.
//
// The first whitespace-delimited word is the action. For set, the remainder
// is split at its last space into device name and value; the value must be
// ASCII digits only. A set with no space in the remainder yields an empty
// target and no value, which the Dispatcher rejects.
//
// Returns:
//   - Command: the parsed command
//   - error: wraps ErrInvalidNumber if the set value is not numeric
func Parse(line string) (Command, error) {
	cmd := Command{Raw: line}

	action, rest := splitAction(line)
	cmd.Action = Action(action)

	if cmd.Action != ActionSet {
		cmd.Target = SanitizeName(rest)
		return cmd, nil
	}

	pos := strings.LastIndexByte(rest, ' ')
	if pos < 0 {
		return cmd, nil
	}

	cmd.Target = SanitizeName(rest[:pos])
	token := rest[pos+1:]
	if !isNumeric(token) {
		return cmd, fmt.Errorf("%w: %q", ErrInvalidNumber, token)
	}

	value, err := strconv.Atoi(token)
	if err != nil {
		// Digits only, so the one failure left is overflow.
		return cmd, fmt.Errorf("%w: %q", ErrInvalidNumber, token)
	}

	cmd.Value = value
	cmd.HasValue = true
	return cmd, nil
}

// SanitizeName removes angle brackets left over from placeholder text such
// as "<device>". Nothing else is changed.
func SanitizeName(name string) string {
	return strings.NewReplacer("<", "", ">", "").Replace(name)
}

// splitAction returns the leading word and the text after it with leading
// blanks removed.
func splitAction(line string) (action, rest string) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)

	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeft(line[i:], " \t")
}

// isNumeric reports whether s is non-empty and made only of ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
