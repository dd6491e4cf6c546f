package color

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.minekube.com/alchemy/pkg/util/errs"
)

func TestFromRGB(t *testing.T) {
	c, err := FromRGB(0x12, 0x34, 0x56)
	require.NoError(t, err)
	assert.Equal(t, 0x123456, c.RGB())
	assert.Equal(t, 0x12, c.Red())
	assert.Equal(t, 0x34, c.Green())
	assert.Equal(t, 0x56, c.Blue())
	assert.Equal(t, "#123456", c.String())

	_, err = FromRGB(256, 0, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = FromRGB(0, -1, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestFromInt(t *testing.T) {
	c, err := FromInt(0xFFA500)
	require.NoError(t, err)
	assert.Equal(t, Orange, c)

	_, err = FromInt(MaxRGB + 1)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = FromInt(-1)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestZeroValueIsBlack(t *testing.T) {
	var c Color
	assert.Equal(t, Black, c)
	assert.Equal(t, "#000000", c.Hex())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "#7cafc6", want: 0x7CAFC6},
		{in: "#7CAFC6", want: 0x7CAFC6},
		{in: "0x385dc6", want: 0x385DC6},
		{in: "7cafc6", want: 0x7CAFC6},
		{in: "8171462", want: 0x7CAFC6},
		{in: "123456", want: 123456},
		{in: " Orange ", want: 0xFFA500},
		{in: "", wantErr: true},
		{in: "#12345", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "16777216", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "not-a-color", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.RGB())
		})
	}
}

func TestWithComponents(t *testing.T) {
	c, err := Black.WithRed(0xAA)
	require.NoError(t, err)
	c, err = c.WithGreen(0xBB)
	require.NoError(t, err)
	c, err = c.WithBlue(0xCC)
	require.NoError(t, err)
	assert.Equal(t, 0xAABBCC, c.RGB())
	assert.Equal(t, 0x000000, Black.RGB(), "receiver must not change")

	_, err = c.WithBlue(300)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestMix(t *testing.T) {
	assert.Equal(t, Black, Mix())
	assert.Equal(t, Red, Mix(Red))
	assert.Equal(t, Red, Mix(Red, Red))
	assert.Equal(t, 0x7F7F7F, Mix(White, Black).RGB())
	assert.Equal(t, Black, Mix(Black, Black))
}

func TestParseMix(t *testing.T) {
	c, err := ParseMix("red+yellow")
	require.NoError(t, err)
	assert.Equal(t, 0xFF7F00, c.RGB())

	c, err = ParseMix("#ffffff + black")
	require.NoError(t, err)
	assert.Equal(t, 0x7F7F7F, c.RGB())

	c, err = ParseMix("teal")
	require.NoError(t, err)
	assert.Equal(t, Teal, c)

	for _, s := range []string{"", "red+", "red+nope"} {
		_, err = ParseMix(s)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument, s)
	}
}

func TestTextMarshaling(t *testing.T) {
	type doc struct {
		Color Color `json:"color"`
	}
	b, err := json.Marshal(doc{Color: Teal})
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":"#008080"}`, string(b))

	var d doc
	require.NoError(t, json.Unmarshal([]byte(`{"color":"navy"}`), &d))
	assert.Equal(t, Navy, d.Color)

	assert.Error(t, json.Unmarshal([]byte(`{"color":"#zz"}`), &d))
}
