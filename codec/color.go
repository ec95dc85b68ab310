package codec

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	paywallui "github.com/reoring/paywallui"
)

// ErrInvalidColor is the cause attached to color decoding issues.
var ErrInvalidColor = errors.New("invalid hex color")

// HexColor returns a Codec converting "#RGB", "#RRGGBB" and "#RRGGBBAA"
// strings to color.NRGBA. Encoding always emits "#RRGGBBAA".
func HexColor() Codec[string, color.NRGBA] { return hexColorCodec{} }

type hexColorCodec struct{}

func (hexColorCodec) Decode(ctx context.Context, a string) (color.NRGBA, error) {
	c, err := parseHex(a)
	if err != nil {
		return color.NRGBA{}, paywallui.Issues{{Path: "/", Code: paywallui.CodeInvalidShape, Message: "invalid hex color", Hint: a, Cause: err}}
	}
	return c, nil
}

func (hexColorCodec) Encode(ctx context.Context, b color.NRGBA) (string, error) {
	return fmt.Sprintf("#%02X%02X%02X%02X", b.R, b.G, b.B, b.A), nil
}

// IsHexColor reports whether s looks like an inline color literal rather
// than an asset id.
func IsHexColor(s string) bool {
	_, err := parseHex(s)
	return err == nil
}

func parseHex(s string) (color.NRGBA, error) {
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, ErrInvalidColor
	}
	h := s[1:]
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "FF"
	case 6:
		h += "FF"
	case 8:
	default:
		return color.NRGBA{}, ErrInvalidColor
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
