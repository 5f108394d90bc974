package muxguard

import "errors"

// ErrNilConnectFunc is returned by New when Params.Connect is missing.
var ErrNilConnectFunc = errors.New("muxguard: Params.Connect must not be nil")
