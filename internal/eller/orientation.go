package eller

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Orientation skews wall placement so that corridors tend to run in one
// direction.
type Orientation uint8

const (
	Normal Orientation = iota
	Vertical
	Horizontal
)

var orientationNames = [...]string{
	Normal:     "normal",
	Vertical:   "vertical",
	Horizontal: "horizontal",
}

func (o Orientation) String() string {
	if int(o) < len(orientationNames) {
		return orientationNames[o]
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// ParseOrientation accepts any non-empty prefix of a mode name, ignoring case:
// "h", "Hor" and "horizontal" all mean [Horizontal].
func ParseOrientation(s string) (Orientation, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	if token != "" {
		for o, name := range orientationNames {
			if strings.HasPrefix(name, token) {
				return Orientation(o), nil
			}
		}
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
}

func (o Orientation) MarshalText() ([]byte, error) {
	if int(o) >= len(orientationNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrientation, uint8(o))
	}
	return []byte(o.String()), nil
}

func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// buildWall decides whether a wall goes up. horizontal is true for the
// boundary between a cell and its right neighbour and false for the boundary
// below a cell.
//
// Vertical orientation favours right walls and open floors, Horizontal does
// the opposite. Each call consumes one or two draws from r.
func buildWall(o Orientation, horizontal bool, r *rand.Rand) bool {
	flip := func() bool { return r.IntN(2) == 1 }
	switch {
	case o == Vertical && horizontal, o == Horizontal && !horizontal:
		return flip() || flip()
	case o == Vertical, o == Horizontal:
		return flip() && flip()
	default:
		return flip()
	}
}
