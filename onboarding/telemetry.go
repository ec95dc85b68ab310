package onboarding

import (
	"context"

	"github.com/reoring/paywallui/logging"
)

// Telemetry receives screen_presented events as a side effect of processing
// them.
type Telemetry interface {
	ScreenPresented(ctx context.Context, sessionID string, ev ScreenPresented)
}

// TelemetryFunc adapts a function to Telemetry.
type TelemetryFunc func(ctx context.Context, sessionID string, ev ScreenPresented)

func (f TelemetryFunc) ScreenPresented(ctx context.Context, sessionID string, ev ScreenPresented) {
	f(ctx, sessionID, ev)
}

// LogTelemetry writes screen_presented events to a logger.
func LogTelemetry(l logging.Logger) Telemetry {
	l = logging.OrNop(l)
	return TelemetryFunc(func(_ context.Context, sessionID string, ev ScreenPresented) {
		l.Info("onboarding screen presented", logging.Fields{
			"session_id":    sessionID,
			"onboarding_id": ev.OnboardingID,
			"screen_cid":    ev.ScreenClientID,
			"screen_index":  ev.ScreenIndex,
			"total_screens": ev.TotalScreens,
		})
	})
}
