package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vancomm/maze-server/internal/eller"
)

const usage = "usage: eller [-seed N] [-key W:H:O:SEED] [-print-key] [-v] " +
	"<width> <height> [h[orizontal]|v[ertical]|n[ormal]]"

var errArgCount = errors.New("expected width, height and an optional mode")

func parseDimension(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %s %q: %w", name, s, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s must be at least 1, got %d", name, n)
	}
	return n, nil
}

// parseArgs turns the positional arguments into maze params. An unknown mode
// is not an error: it is logged and replaced by the normal orientation.
func parseArgs(args []string) (eller.Params, error) {
	if len(args) < 2 || len(args) > 3 {
		return eller.Params{}, errArgCount
	}

	width, err := parseDimension("width", args[0])
	if err != nil {
		return eller.Params{}, err
	}
	height, err := parseDimension("height", args[1])
	if err != nil {
		return eller.Params{}, err
	}

	p := eller.Params{Width: width, Height: height, Orientation: eller.Normal}
	if len(args) == 3 {
		o, err := eller.ParseOrientation(args[2])
		if err != nil {
			log.WithField("mode", args[2]).Warn("cannot parse the mode, assuming normal")
		} else {
			p.Orientation = o
		}
	}
	return p, nil
}
