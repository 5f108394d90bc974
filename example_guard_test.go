package muxguard_test

import (
	"context"
	"time"

	_ "github.com/muxguard/muxguard.go"
	"github.com/muxguard/muxguard.go/pkg/redisconn"
)

// ExampleNew shows the intended call pattern: fetch the handle before every
// operation, classify the error yourself, and report connection failures
// back to the guard. Never retain a handle across a failure report.
func ExampleNew() {
	guard, err := redisconn.NewGuard(redisconn.ConfigFromEnv(), redisconn.GuardParams{
		MinReconnectInterval:    10 * time.Second,
		ErrorConfirmationWindow: 5 * time.Second,
	})
	if err != nil {
		panic(err)
	}
	defer guard.Close()

	client, err := guard.Current()
	if err != nil {
		panic(err)
	}

	if err := client.Set(context.Background(), "greeting", "hello", 0).Err(); err != nil {
		if redisconn.IsConnectionFailure(err) {
			guard.OnConnectionFailure()
		}
		// Re-fetch guard.Current() before the next attempt; the old
		// reference may have been replaced.
	}
}
