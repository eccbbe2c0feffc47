package middleware

import (
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/microapp"
)

// ReportPanic reports panics raised while handling a request to Sentry
// and re-panics so Recover can respond.
//
// In development, NoopAdapter returns and this middleware does nothing.
func ReportPanic(env microapp.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         true,
		WaitForDelivery: true,
		Timeout:         2 * time.Second,
	})

	return sh.Handle
}
