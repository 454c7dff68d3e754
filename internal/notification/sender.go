package notification

import "context"

// Sender delivers a rendered message to a list of recipients. Failures
// are the caller's problem to log; the wallet never fails a withdrawal
// because an email bounced.
type Sender interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
}
