package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// LoginAttempts is the number of login requests accepted per IP and minute.
const LoginAttempts = 5

// AuthRateLimit limits authentication endpoints per client IP.
func AuthRateLimit() func(http.Handler) http.Handler {
	return httprate.Limit(LoginAttempts, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "too many login attempts, wait a minute and try again", http.StatusTooManyRequests)
		})),
	)
}
