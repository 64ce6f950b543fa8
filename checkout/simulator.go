package checkout

import (
	"context"
	"time"

	"curries-burger-api/models"
)

// Event is one update from the simulated gateway: a stage message while
// processing, or Done on completion.
type Event struct {
	Message string `json:"message,omitempty"`
	Done    bool   `json:"done"`
}

// Simulator stands in for a payment gateway. It is a stub, not a gateway
// model: once started it emits its fixed stage sequence and always
// completes successfully. The only failure path is the caller's context.
type Simulator struct {
	VerifyAfter    time.Duration
	AuthorizeAfter time.Duration
	CompleteAfter  time.Duration
}

// DefaultSimulator paces stages the way the storefront animates them.
func DefaultSimulator() Simulator {
	return Simulator{
		VerifyAfter:    1500 * time.Millisecond,
		AuthorizeAfter: 3 * time.Second,
		CompleteAfter:  5 * time.Second,
	}
}

func authorizeMessage(method models.PaymentMethod) string {
	switch method {
	case models.MethodCard:
		return "Authorizing transaction..."
	case models.MethodUPI:
		return "Waiting for UPI approval..."
	default:
		return "Confirming order..."
	}
}

// Run starts the staged sequence and returns its event channel. The first
// stage message is emitted immediately, the rest on their fixed offsets,
// then a single Done event, then the channel closes. Cancelling ctx stops
// the sequence without a Done event; callers that must preserve the
// run-to-completion behavior pass a context that does not cancel.
func (s Simulator) Run(ctx context.Context, method models.PaymentMethod) <-chan Event {
	events := make(chan Event, 4)
	go func() {
		defer close(events)

		events <- Event{Message: "Securely connecting to payment gateway..."}

		stages := []struct {
			at  time.Duration
			msg string
		}{
			{s.VerifyAfter, "Verifying payment details..."},
			{s.AuthorizeAfter, authorizeMessage(method)},
		}

		start := time.Now()
		for _, stage := range stages {
			if !sleepUntil(ctx, start, stage.at) {
				return
			}
			events <- Event{Message: stage.msg}
		}
		if !sleepUntil(ctx, start, s.CompleteAfter) {
			return
		}
		events <- Event{Done: true}
	}()
	return events
}

// sleepUntil waits until offset past start, reporting false on cancellation.
func sleepUntil(ctx context.Context, start time.Time, offset time.Duration) bool {
	remaining := offset - time.Since(start)
	if remaining <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
