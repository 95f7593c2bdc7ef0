package docpp

import (
	"errors"
	"fmt"
	"strings"
)

// NotFound is returned by the various Find operations if no match exists.
const NotFound = -1

// ErrOutOfRange is returned for positional access to a position which does not
// exist or which holds a child of the wrong kind.
var ErrOutOfRange = errors.New("index out of range")

// ErrInvalidArgument is returned for semantically malformed input.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotFound is returned if a value-based erase finds no matching child.
var ErrNotFound = fmt.Errorf("%w: not found", ErrOutOfRange)

// ErrInvalidTag is returned if a tag identifier or tag name cannot be resolved.
var ErrInvalidTag = fmt.Errorf("%w: invalid tag", ErrInvalidArgument)

// Formatting selects the whitespace layout of rendered output.
type Formatting int

// Formatting modes. The zero value is Compact.
const (
	Compact Formatting = iota // no indentation, no newlines
	Pretty                    // tab indentation and newlines
	Newline                   // newlines only
)

// None is an alias for Compact.
const None = Compact

func (f Formatting) String() string {
	switch f {
	case Compact:
		return "compact"
	case Pretty:
		return "pretty"
	case Newline:
		return "newline"
	}
	return fmt.Sprintf("Formatting(%d)", int(f))
}

// Indent returns the line-leading whitespace for indentation level `level`.
// Only Pretty formatting produces indentation; negative levels are treated
// as 0.
func (f Formatting) Indent(level int) string {
	if f != Pretty || level <= 0 {
		return ""
	}
	return strings.Repeat("\t", level)
}

// EOL returns the line terminator for f, i.e. a newline for Pretty and Newline.
func (f Formatting) EOL() string {
	if f == Pretty || f == Newline {
		return "\n"
	}
	return ""
}
