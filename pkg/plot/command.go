package plot

import (
	"fmt"
	"strings"
)

// GCode represents a gcode (e.g. G0, G1, G90)
type GCode string

// list of gcodes. See https://marlinfw.org/docs/gcode/G000-G001.html
// We point out only codes used in this project.
const (
	// G0 is a travel move
	G0 GCode = "G0"
	// G1 is a linear move (drawing)
	G1 GCode = "G1"
	// G90 sets absolute positioning
	G90 GCode = "G90"
)

// Command is a single line of G-code. An empty Code makes it a comment-only line.
type Command struct {
	Code        GCode
	Args        []Arg
	LineComment string
}

// Arg is an axis/parameter letter with its value.
type Arg struct {
	Name  string
	Value float64
}

func (c *Command) String(comments bool) string {
	parts := make([]string, 0, len(c.Args)+2)
	if c.Code != "" {
		parts = append(parts, string(c.Code))
	}

	for _, arg := range c.Args {
		parts = append(parts, fmt.Sprintf("%s%.3f", arg.Name, arg.Value))
	}

	if c.LineComment != "" && comments {
		parts = append(parts, "; "+c.LineComment)
	}

	return strings.Join(parts, " ")
}
