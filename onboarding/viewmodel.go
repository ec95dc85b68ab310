package onboarding

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/reoring/paywallui/internal/metrics"
	"github.com/reoring/paywallui/logging"
)

// Onboarding identifies the onboarding content shown by a host surface.
type Onboarding struct {
	ID          string
	Name        string
	URL         string
	VariationID string
}

// ViewModel ingests raw messages and fans them out on four broadcasts.
//
// The session fields (Onboarding, IsFinishedLoading) are not synchronized:
// SetOnboarding, ProcessMessage and the getters must be called from one
// goroutine. Serve runs ProcessMessage on the calling goroutine for that
// purpose. The broadcasts may be subscribed from anywhere.
type ViewModel struct {
	deserializer Deserializer
	telemetry    Telemetry
	log          logging.Logger
	sessionID    string

	actions   *Broadcast[Action]
	analytics *Broadcast[Event]
	errors    *Broadcast[*DecodeError]
	loaded    *Broadcast[Loaded]

	onboarding      *Onboarding
	finishedLoading bool
}

// Option configures a ViewModel.
type Option func(*ViewModel)

// WithLogger sets the logger; every line carries the session id.
func WithLogger(l logging.Logger) Option {
	return func(vm *ViewModel) { vm.log = l }
}

// WithTelemetry sets the screen_presented hook.
func WithTelemetry(t Telemetry) Option {
	return func(vm *ViewModel) { vm.telemetry = t }
}

// WithSessionID overrides the generated session id.
func WithSessionID(id string) Option {
	return func(vm *ViewModel) { vm.sessionID = id }
}

// NewViewModel returns a view model with a fresh session id.
func NewViewModel(opts ...Option) *ViewModel {
	vm := &ViewModel{sessionID: uuid.NewString()}
	for _, o := range opts {
		o(vm)
	}
	vm.log = logging.OrNop(vm.log).With(logging.Fields{"session_id": vm.sessionID})
	if vm.telemetry == nil {
		vm.telemetry = LogTelemetry(vm.log)
	}
	vm.actions = NewBroadcast[Action](dropCounter("actions"))
	vm.analytics = NewBroadcast[Event](dropCounter("analytics"))
	vm.errors = NewBroadcast[*DecodeError](dropCounter("errors"))
	vm.loaded = NewBroadcast[Loaded](dropCounter("loaded"))
	return vm
}

func dropCounter(channel string) func() {
	c := metrics.BroadcastDropped.WithLabelValues(channel)
	return c.Inc
}

// SessionID returns the id attached to every log line.
func (vm *ViewModel) SessionID() string { return vm.sessionID }

func (vm *ViewModel) Actions() *Broadcast[Action]  { return vm.actions }
func (vm *ViewModel) Analytics() *Broadcast[Event] { return vm.analytics }
func (vm *ViewModel) Loaded() *Broadcast[Loaded]   { return vm.loaded }

// Errors carries the unknown-message variant: one *DecodeError per inbound
// message that did not decode.
func (vm *ViewModel) Errors() *Broadcast[*DecodeError] { return vm.errors }

// SetOnboarding switches the active onboarding; the new content is not
// loaded yet.
func (vm *ViewModel) SetOnboarding(o *Onboarding) {
	vm.onboarding = o
	vm.finishedLoading = false
}

// Onboarding returns the active onboarding, or nil.
func (vm *ViewModel) Onboarding() *Onboarding { return vm.onboarding }

// IsFinishedLoading reports whether onboarding_loaded was received for the
// active onboarding.
func (vm *ViewModel) IsFinishedLoading() bool { return vm.finishedLoading }

// ProcessMessage decodes raw and publishes the result. A message that cannot
// be decoded is published on Errors and otherwise ignored.
func (vm *ViewModel) ProcessMessage(ctx context.Context, raw string) {
	msg, err := vm.deserializer.Deserialize(raw)
	if err != nil {
		metrics.OnboardingMessages.WithLabelValues(metrics.KindError).Inc()
		vm.log.WithError(err).Warn("onboarding message dropped", logging.Fields{"raw": raw})
		var de *DecodeError
		if !errors.As(err, &de) {
			de = &DecodeError{Raw: raw, Err: err}
		}
		vm.errors.Publish(de)
		return
	}
	switch m := msg.(type) {
	case Loaded:
		metrics.OnboardingMessages.WithLabelValues(metrics.KindLoaded).Inc()
		vm.finishedLoading = true
		vm.log.Debug("onboarding loaded", logging.Fields{"onboarding_id": m.OnboardingID})
		vm.loaded.Publish(m)
	case Action:
		metrics.OnboardingMessages.WithLabelValues(metrics.KindAction).Inc()
		vm.log.Debug("onboarding action", logging.Fields{"type": m.ActionType(), "screen_cid": m.OnboardingMeta().ScreenClientID})
		vm.actions.Publish(m)
	case Event:
		metrics.OnboardingMessages.WithLabelValues(metrics.KindAnalytics).Inc()
		if sp, ok := m.(ScreenPresented); ok {
			vm.telemetry.ScreenPresented(ctx, vm.sessionID, sp)
		}
		vm.analytics.Publish(m)
	}
}

// Serve processes messages from in on the calling goroutine until in is
// closed or ctx is done.
func (vm *ViewModel) Serve(ctx context.Context, in <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case raw, ok := <-in:
			if !ok {
				return nil
			}
			vm.ProcessMessage(ctx, raw)
		}
	}
}

// Close closes every broadcast.
func (vm *ViewModel) Close() {
	vm.actions.Close()
	vm.analytics.Close()
	vm.errors.Close()
	vm.loaded.Close()
}
