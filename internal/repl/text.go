package repl

const banner = `
   ____                   _                _        ____  _
  / ___|_ __ __ _ _   _  | |    ___   __ _(_) ___  / ___|(_)_ __ ___
 | |  _| '__/ _' | | | | | |   / _ \ / _' | |/ __| \___ \| | '_ ' _ \
 | |_| | | | (_| | |_| | | |__| (_) | (_| | | (__   ___) | | | | | | |
  \____|_|  \__,_|\__, | |_____\___/ \__, |_|\___| |____/|_|_| |_| |_|
                  |___/              |___/`

const helpText = `Available commands:
- list : List all devices
- on <device> : Turn on a device
- off <device> : Turn off a device
- status <device> : Check device status
- set <device> <value> : Adjust device setting
- show : Show status of all devices
- history [n] : Show last n commands (shows all if n not specified)
- save <filename> : Save command history to file
- help : Show this list again
- exit : Exit the program`
