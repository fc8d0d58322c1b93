package middleware

import (
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
)

// SentryMiddleware wraps the handler so panics and errors in request
// handling are captured with request context before being re-raised.
func SentryMiddleware(next http.Handler) http.Handler {
	sentryHandler := sentryhttp.New(sentryhttp.Options{
		Repanic:         true,
		WaitForDelivery: true,
		Timeout:         2 * time.Second,
	})

	return sentryHandler.Handle(next)
}
