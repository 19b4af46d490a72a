package eller

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

type Params struct {
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Orientation Orientation `json:"orientation"`
}

func (p Params) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("%w (width = %d, height = %d)",
			ErrInvalidDimensions, p.Width, p.Height)
	}
	if int(p.Orientation) >= len(orientationNames) {
		return fmt.Errorf("%w: %d", ErrUnknownOrientation, uint8(p.Orientation))
	}
	return nil
}

// Key encodes the params together with a seed as "W:H:O:SEED", where O is
// the first letter of the orientation. A key names exactly one maze.
func (p Params) Key(seed uint64) string {
	return fmt.Sprintf("%d:%d:%s:%d",
		p.Width, p.Height, p.Orientation.String()[:1], seed)
}

func ParseKey(key string) (Params, uint64, error) {
	var (
		p      Params
		orient string
		seed   uint64
	)
	skey := strings.ReplaceAll(key, ":", " ")
	n, err := fmt.Sscanf(skey, "%d %d %s %d", &p.Width, &p.Height, &orient, &seed)
	if n != 4 || err != nil {
		return Params{}, 0, fmt.Errorf(
			`invalid maze key (skey = "%s", n = %d, err = %w)`, skey, n, err,
		)
	}
	if p.Orientation, err = ParseOrientation(orient); err != nil {
		return Params{}, 0, err
	}
	if err := p.Validate(); err != nil {
		return Params{}, 0, err
	}
	return p, seed, nil
}

// NewRand returns the generator a seed stands for. Mazes built from equal
// params and equal seeds are identical.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
