package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/muxguard/muxguard.go/pkg/logger"
)

type logLine struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Attempt int    `json:"attempt"`
	Arg     string `json:"arg"`
}

func TestLevels(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	log := logger.New(buff)

	methods := map[string]func(string, ...any){
		"debug": log.Debug,
		"info":  log.Info,
		"warn":  log.Warn,
		"error": log.Error,
	}

	for level, fn := range methods {
		t.Run(level, func(t *testing.T) {
			buff.Reset()

			fn("something happened", "attempt", 3)

			var line logLine
			require.NoError(t, json.Unmarshal(buff.Bytes(), &line))
			require.Equal(t, level, line.Level)
			require.Equal(t, "something happened", line.Message)
			require.Equal(t, 3, line.Attempt)
		})
	}
}

func TestDanglingValueIsKept(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	log := logger.New(buff)

	log.Info("odd pairs", "leftover")

	var line logLine
	require.NoError(t, json.Unmarshal(buff.Bytes(), &line))
	require.Equal(t, "leftover", line.Arg)
}

func TestNopDiscards(t *testing.T) {
	require.NotPanics(t, func() {
		logger.Nop().Error("dropped", "key", "value")
	})
}
