// Package notify hands outbound mail to the external dispatcher. Sending is
// fire-and-forget from the caller's perspective: failures are logged by the
// caller, never retried here, and must not fail the surrounding operation.
package notify

import "context"

type Notifier interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// Discard drops every notification. Used in tests and when no broker is
// configured.
type Discard struct{}

func (Discard) Send(context.Context, string, string, string) error { return nil }
