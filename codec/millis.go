package codec

import (
	"context"
	"math"
	"time"

	paywallui "github.com/reoring/paywallui"
)

// Millis returns a Codec converting millisecond counts (as found in
// `start_delay`, `duration`, ...) to time.Duration. Negative values are
// rejected.
func Millis() Codec[float64, time.Duration] { return millisCodec{} }

type millisCodec struct{}

func (millisCodec) Decode(ctx context.Context, a float64) (time.Duration, error) {
	if a < 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		return 0, paywallui.Issues{{Path: "/", Code: paywallui.CodeInvalidShape, Message: "invalid millisecond value"}}
	}
	return time.Duration(a * float64(time.Millisecond)), nil
}

func (millisCodec) Encode(ctx context.Context, b time.Duration) (float64, error) {
	return float64(b) / float64(time.Millisecond), nil
}
