package tag

import "fmt"

// Closing is the convention governing how a tag is opened and closed.
type Closing int8

// Closing conventions.
const (
	SelfClosing     Closing = iota // <name attrs/>
	PairedClose                    // <name attrs>payload</name>
	VoidNoClose                    // <name attrs>
	CloseOnly                      // </name>
	RawText                        // payload, indented in pretty mode
	RawTextNoFormat                // payload, verbatim in every mode
)

var closingNames = [...]string{
	SelfClosing:     "SelfClosing",
	PairedClose:     "PairedClose",
	VoidNoClose:     "VoidNoClose",
	CloseOnly:       "CloseOnly",
	RawText:         "RawText",
	RawTextNoFormat: "RawTextNoFormat",
}

func (c Closing) String() string {
	if c < 0 || int(c) >= len(closingNames) {
		return fmt.Sprintf("Closing(%d)", int(c))
	}
	return closingNames[c]
}

// IsRaw is true for the conventions which emit the payload without any tag.
func (c Closing) IsRaw() bool {
	return c == RawText || c == RawTextNoFormat
}
