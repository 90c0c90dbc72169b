// Package notify delivers best-effort messages to candidates. The scheduler
// composes the message; this package owns the transport.
package notify

import (
	"context"

	"go.uber.org/zap"
)

// Notifier sends a message to a recipient. Delivery is best-effort; callers
// must not treat a send failure as fatal.
type Notifier interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// LogNotifier is used when no SMTP server is configured. It only records
// that a notification would have been sent.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLog(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(_ context.Context, recipient, subject, _ string) error {
	n.logger.Info("notification skipped, smtp is not configured",
		zap.String("recipient", recipient),
		zap.String("subject", subject),
	)
	return nil
}
