package plot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kpango/glg"

	"github.com/gucio321/polarbez/pkg/polar"
)

// G91 sets relative positioning. It is only recognized when parsing.
const G91 GCode = "G91"

// ParseGCode reads G-code back into commands.
// Only absolute positioning is supported; commands given in relative mode are skipped.
func ParseGCode(gcode []byte) ([]Command, error) {
	var result []Command

	relative := false
	for n, line := range strings.Split(string(gcode), "\n") {
		command, comment, _ := strings.Cut(line, ";")
		comment = strings.TrimSpace(comment)

		fields := strings.Fields(command)
		if len(fields) == 0 {
			if comment != "" {
				result = append(result, Command{LineComment: comment})
			}

			continue
		}

		code := GCode(strings.ToUpper(fields[0]))
		switch code {
		case G90:
			relative = false
		case G91:
			relative = true
		default:
			if relative {
				glg.Warnf("Got \"%s\" command but is in Relative Positioning mode which is not supported", code)
				continue
			}
		}

		cmd := Command{Code: code, LineComment: comment}
		for _, arg := range fields[1:] {
			if len(arg) <= 1 {
				// bare axis letters, e.g. G28 X Y
				continue
			}

			value, err := strconv.ParseFloat(arg[1:], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: cant parse argument %q: %w", n+1, arg, err)
			}

			cmd.Args = append(cmd.Args, Arg{Name: strings.ToUpper(arg[:1]), Value: value})
		}

		result = append(result, cmd)
	}

	return result, nil
}

// Strokes replays cmds and returns every polyline drawn with the pen down (Z < 0),
// in machine coordinates.
func Strokes(cmds []Command) [][]polar.Vec2 {
	var (
		result  [][]polar.Vec2
		current []polar.Vec2
		pos     polar.Vec2
		down    bool
	)

	flush := func() {
		if len(current) > 1 {
			result = append(result, current)
		}

		current = nil
	}

	for _, cmd := range cmds {
		if cmd.Code != G0 && cmd.Code != G1 {
			continue
		}

		moved := false
		for _, arg := range cmd.Args {
			switch arg.Name {
			case "X":
				pos.X, moved = arg.Value, true
			case "Y":
				pos.Y, moved = arg.Value, true
			case "Z":
				if isDown := arg.Value < 0; isDown != down {
					down = isDown
					if down {
						current = []polar.Vec2{pos}
					} else {
						flush()
					}
				}
			}
		}

		if moved && down {
			current = append(current, pos)
		}
	}

	flush()

	return result
}
