package service

import "context"

// Mailer is the external transactional mail capability. Configured reports
// whether a provider credential is present; an unconfigured mailer is a
// valid state and callers are expected to skip, not fail.
type Mailer interface {
	Configured() bool
	Send(ctx context.Context, to, subject, htmlBody string) error
}
