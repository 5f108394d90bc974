// Package redisconn wires a Redis client into the reconnection guard: a
// handle factory that never aborts on initial connect failure, the matching
// close helper, and the connection-failure classifier callers need before
// reporting to the guard.
package redisconn

import (
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	muxguard "github.com/muxguard/muxguard.go"
	"github.com/muxguard/muxguard.go/pkg/logger"
)

// Connect returns the handle factory for cfg. Building the client neither
// dials nor pings: go-redis materializes sockets lazily per command, so a
// transient startup failure surfaces on the first real use of the handle
// instead of here. That is deliberate, and it is also why the factory never
// returns an error.
func Connect(cfg Config) muxguard.ConnectFunc[*redis.Client] {
	return func() (*redis.Client, error) {
		return redis.NewClient(&redis.Options{
			Addr:         cfg.Addr,
			Username:     cfg.Username,
			Password:     cfg.Password,
			DB:           cfg.DB,
			DialTimeout:  cfg.DialTimeout,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		}), nil
	}
}

// CloseHandle releases a superseded client.
func CloseHandle(c *redis.Client) error {
	return c.Close()
}

// GuardParams carries the guard thresholds for NewGuard. Zero values mean
// the muxguard defaults.
type GuardParams struct {
	MinReconnectInterval    time.Duration
	ErrorConfirmationWindow time.Duration
	Logger                  logger.Logger
}

// NewGuard builds a ReconnectGuard over a Redis client for cfg. When no
// Logger is given, decisions are logged as JSON to stdout.
func NewGuard(cfg Config, params GuardParams) (*muxguard.Guard[*redis.Client], error) {
	log := params.Logger
	if log == nil {
		log = logger.New(os.Stdout)
	}

	return muxguard.New(muxguard.Params[*redis.Client]{
		Connect:                 Connect(cfg),
		Close:                   CloseHandle,
		MinReconnectInterval:    params.MinReconnectInterval,
		ErrorConfirmationWindow: params.ErrorConfirmationWindow,
		Logger:                  log,
	})
}
