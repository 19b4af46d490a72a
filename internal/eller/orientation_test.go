package eller

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		input string
		want  Orientation
		err   bool
	}{
		{input: "n", want: Normal},
		{input: "normal", want: Normal},
		{input: "NoRm", want: Normal},
		{input: "v", want: Vertical},
		{input: "Vertical", want: Vertical},
		{input: " ver ", want: Vertical},
		{input: "h", want: Horizontal},
		{input: "HORIZONTAL", want: Horizontal},
		{input: "hor", want: Horizontal},
		{input: "", err: true},
		{input: "x", err: true},
		{input: "horizontally", err: true},
		{input: "diagonal", err: true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			o, err := ParseOrientation(test.input)
			if test.err {
				assert.ErrorIs(t, err, ErrUnknownOrientation)
				assert.Equal(t, Normal, o)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, o)
		})
	}
}

func TestOrientationJSON(t *testing.T) {
	b, err := json.Marshal(Params{Width: 2, Height: 3, Orientation: Horizontal})
	require.NoError(t, err)
	assert.JSONEq(t, `{"width":2,"height":3,"orientation":"horizontal"}`, string(b))

	var p Params
	require.NoError(t, json.Unmarshal([]byte(`{"width":1,"height":1,"orientation":"v"}`), &p))
	assert.Equal(t, Vertical, p.Orientation)

	assert.Error(t, json.Unmarshal([]byte(`{"orientation":"sideways"}`), &p))

	_, err = Orientation(7).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownOrientation)
}

func TestBuildWallBias(t *testing.T) {
	const draws = 20000

	tests := []struct {
		orientation Orientation
		horizontal  bool
		want        float64
	}{
		{Normal, true, 0.5},
		{Normal, false, 0.5},
		{Vertical, true, 0.75},
		{Vertical, false, 0.25},
		{Horizontal, true, 0.25},
		{Horizontal, false, 0.75},
	}

	for _, test := range tests {
		r := rand.New(rand.NewPCG(1, 2))
		walls := 0
		for range draws {
			if buildWall(test.orientation, test.horizontal, r) {
				walls++
			}
		}
		assert.InDelta(t, test.want, float64(walls)/draws, 0.02,
			"%s, horizontal = %t", test.orientation, test.horizontal)
	}
}
