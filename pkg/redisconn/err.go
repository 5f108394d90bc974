package redisconn

import (
	"context"
	"errors"
	"io"
	"net"
	"syscall"

	"github.com/redis/go-redis/v9"
)

// IsConnectionFailure reports whether err signals a broken connection to the
// store, as opposed to a command timeout, a cancelled context, or a protocol
// reply. Only errors classified here as connection failures should be
// reported via Guard.OnConnectionFailure; feeding it timeouts would make the
// guard tear down a client that is merely slow.
func IsConnectionFailure(err error) bool {
	if err == nil {
		return false
	}

	// A missing key is a reply, not a failure.
	if errors.Is(err, redis.Nil) {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Command timeouts are the client library's business, not the guard's.
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return false
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	// Seen when a caller keeps using a handle the guard already replaced.
	if errors.Is(err, net.ErrClosed) {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}

	var opErr *net.OpError
	return errors.As(err, &opErr)
}
