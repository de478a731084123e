package actionlog

import (
	"slices"
	"strings"
)

// Command names fixed by the runner's line protocol.
const (
	cmdDebug        = "debug"
	cmdWarning      = "warning"
	cmdError        = "error"
	cmdAddMask      = "add-mask"
	cmdSetEnv       = "set-env"
	cmdSetOutput    = "set-output"
	cmdAddPath      = "add-path"
	cmdStopCommands = "stop-commands"
)

// A command is one line of the wire protocol before serialization: a command
// name, optional parameters and a body. The marker resuming a suppressed
// scope is a command too, with the suppression token as its name and nothing
// else, which keeps line rendering in one place.
type command struct {
	name   string
	params []string
	body   string
}

func resumeMarker(token string) command { return command{name: token} }

// render produces the full protocol line, without trailing newline:
//
//	::name key=value,key=value::body
//
// Parameters are comma-joined in lexicographic order of their "key=value"
// form, so a line never depends on map iteration order. Without parameters
// the space after the name is omitted. Nothing is escaped: the runner takes
// the rest of the line after the second "::" verbatim.
func (c command) render() string {
	var b strings.Builder
	b.WriteString("::")
	b.WriteString(c.name)
	if len(c.params) > 0 {
		slices.Sort(c.params)
		b.WriteByte(' ')
		b.WriteString(strings.Join(c.params, ","))
	}
	b.WriteString("::")
	b.WriteString(c.body)
	return b.String()
}
