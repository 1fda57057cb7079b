// Package repl is the interactive console for the simulator.
//
// Session reads lines from a LineReader and handles the built-ins itself:
//
//	exit            end the session
//	list            device names in registration order
//	show            every device's status
//	history [n]     the last n commands, newest first (all when n is omitted)
//	save <file>     write the command history to file
//	help            print the command summary again
//
// Every other line goes to command.Dispatcher unchanged. Terminal adapts
// chzyer/readline to LineReader with line editing and tab completion.
package repl
