package sms

import (
	"context"
	"log/slog"
)

// ConsoleSender logs the message instead of dispatching it. Used in
// development and tests; production swaps in a gateway adapter behind the
// same port.
type ConsoleSender struct{}

func NewConsoleSender() *ConsoleSender {
	return &ConsoleSender{}
}

func (s *ConsoleSender) Send(ctx context.Context, phoneNumber, body string) error {
	slog.InfoContext(ctx, "sms (console)", "to", phoneNumber, "body", body)
	return nil
}
