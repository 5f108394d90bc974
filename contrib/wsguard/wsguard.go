// Package wsguard adapts raw WebSocket handles to the reconnection guard.
//
// It exists mostly to show that the guard is client-agnostic: any pair of
// connect/close functions works, including one where connecting dials
// eagerly instead of materializing lazily like a multiplexing store client.
package wsguard

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	muxguard "github.com/muxguard/muxguard.go"
	"github.com/muxguard/muxguard.go/pkg/logger"
)

// closeGracePeriod bounds how long CloseHandle waits for the close frame to
// be written before tearing the socket down regardless.
const closeGracePeriod = time.Second

// Dial returns a handle factory dialing url with the default gorilla dialer.
// A WebSocket handle connects eagerly, so a dial failure here is returned
// from Guard.Current and retried on the next access.
func Dial(url string, header http.Header) muxguard.ConnectFunc[*websocket.Conn] {
	return func() (*websocket.Conn, error) {
		conn, _, err := websocket.DefaultDialer.Dial(url, header)
		return conn, err
	}
}

// CloseHandle attempts a normal-closure frame, then tears down the socket.
// The frame is best-effort; the Close always happens.
func CloseHandle(conn *websocket.Conn) error {
	deadline := time.Now().Add(closeGracePeriod)
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)

	return conn.Close()
}

// GuardParams carries the guard thresholds for NewGuard. Zero values mean
// the muxguard defaults.
type GuardParams struct {
	MinReconnectInterval    time.Duration
	ErrorConfirmationWindow time.Duration
	Logger                  logger.Logger
}

// NewGuard builds a ReconnectGuard over a WebSocket connection to url.
func NewGuard(url string, header http.Header, params GuardParams) (*muxguard.Guard[*websocket.Conn], error) {
	return muxguard.New(muxguard.Params[*websocket.Conn]{
		Connect:                 Dial(url, header),
		Close:                   CloseHandle,
		MinReconnectInterval:    params.MinReconnectInterval,
		ErrorConfirmationWindow: params.ErrorConfirmationWindow,
		Logger:                  params.Logger,
	})
}
