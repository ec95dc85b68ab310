package onboarding

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paywallui "github.com/reoring/paywallui"
	"github.com/reoring/paywallui/internal/metrics"
	"github.com/reoring/paywallui/logging"
)

func recv[T any](t *testing.T, s *Subscription[T]) T {
	t.Helper()
	select {
	case v, ok := <-s.C():
		require.True(t, ok, "subscription closed")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a value")
	}
	var zero T
	return zero
}

func TestViewModel_FanOut(t *testing.T) {
	var presented []ScreenPresented
	vm := NewViewModel(
		WithLogger(logging.NewTestLogger(t)),
		WithSessionID("session-1"),
		WithTelemetry(TelemetryFunc(func(_ context.Context, sid string, ev ScreenPresented) {
			assert.Equal(t, "session-1", sid)
			presented = append(presented, ev)
		})),
	)
	defer vm.Close()
	ctx := context.Background()

	actions := vm.Actions().Subscribe()
	analytics := vm.Analytics().Subscribe()
	errs := vm.Errors().Subscribe()

	vm.SetOnboarding(&Onboarding{ID: "o1"})
	assert.False(t, vm.IsFinishedLoading())

	errorsBefore := testutil.ToFloat64(metrics.OnboardingMessages.WithLabelValues(metrics.KindError))

	vm.ProcessMessage(ctx, `{"type":"onboarding_loaded",`+meta+`}`)
	assert.True(t, vm.IsFinishedLoading())

	vm.ProcessMessage(ctx, `{"type":"custom","action_id":"promo",`+meta+`}`)
	assert.Equal(t, Custom{Meta: testMeta, ActionID: "promo"}, recv(t, actions))

	vm.ProcessMessage(ctx, `{"type":"analytics","name":"screen_presented",`+meta+`}`)
	assert.Equal(t, ScreenPresented{testMeta}, recv(t, analytics))
	require.Len(t, presented, 1)

	vm.ProcessMessage(ctx, `not json`)
	de := recv(t, errs)
	require.NotNil(t, de)
	assert.True(t, paywallui.HasCode(de, paywallui.CodeParseError))
	assert.Equal(t, "not json", de.Raw)
	assert.Equal(t, errorsBefore+1, testutil.ToFloat64(metrics.OnboardingMessages.WithLabelValues(metrics.KindError)))

	// a malformed message leaves the session intact
	vm.ProcessMessage(ctx, `{"type":"close","action_id":"bye",`+meta+`}`)
	assert.Equal(t, TypeClose, recv(t, actions).ActionType())
	assert.True(t, vm.IsFinishedLoading())

	loaded := vm.Loaded().Subscribe()
	assert.Equal(t, Loaded{testMeta}, recv(t, loaded), "late subscribers get the replayed value")

	vm.SetOnboarding(&Onboarding{ID: "o2"})
	assert.False(t, vm.IsFinishedLoading())
	assert.Equal(t, "o2", vm.Onboarding().ID)
}

func TestViewModel_Serve(t *testing.T) {
	vm := NewViewModel(WithLogger(logging.NewTestLogger(t)))
	defer vm.Close()
	assert.NotEmpty(t, vm.SessionID())

	actions := vm.Actions().Subscribe()
	in := make(chan string)
	done := make(chan error, 1)
	go func() { done <- vm.Serve(context.Background(), in) }()

	in <- `{"type":"open_paywall","action_id":"pw",` + meta + `}`
	assert.Equal(t, TypeOpenPaywall, recv(t, actions).ActionType())
	close(in)
	require.NoError(t, <-done)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, vm.Serve(ctx, make(chan string)), context.Canceled)
}
