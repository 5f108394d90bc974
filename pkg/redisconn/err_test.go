package redisconn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestIsConnectionFailure(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "missing key reply", err: redis.Nil, want: false},
		{name: "cancelled context", err: context.Canceled, want: false},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: false},
		{
			name: "wrapped deadline",
			err:  fmt.Errorf("GET failed: %w", context.DeadlineExceeded),
			want: false,
		},
		{
			name: "io timeout",
			err:  &net.OpError{Op: "read", Err: os.ErrDeadlineExceeded},
			want: false,
		},
		{name: "eof", err: io.EOF, want: true},
		{name: "unexpected eof", err: io.ErrUnexpectedEOF, want: true},
		{name: "closed network connection", err: net.ErrClosed, want: true},
		{
			name: "connection refused",
			err: &net.OpError{Op: "dial", Err: &os.SyscallError{
				Syscall: "connect", Err: syscall.ECONNREFUSED,
			}},
			want: true,
		},
		{
			name: "connection reset",
			err:  &net.OpError{Op: "read", Err: syscall.ECONNRESET},
			want: true,
		},
		{name: "broken pipe", err: syscall.EPIPE, want: true},
		{name: "protocol error", err: errors.New("WRONGTYPE Operation against a key"), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsConnectionFailure(tc.err))
		})
	}
}
