// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout
// gridcheck.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// tcpDialTimeout bounds the connection attempt to a TCP JSON Lines collector.
const tcpDialTimeout = 5 * time.Second

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "gridcheck").
//
// The logger is configured with:
//   - global log level set to Debug;
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name.
//
// Output is written to os.Stderr in JSON format so that stdout stays free for
// the settings printed in check mode.
func NewLogger(role string) *Logger {
	return NewLoggerWithWriter(role, os.Stderr)
}

// NewLoggerWithWriter is [NewLogger] writing to w instead of os.Stderr.
func NewLoggerWithWriter(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}

	zerolog.CallerFieldName = "func"
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// Tee returns a copy of l that writes every event to w as well as to the
// receiver's current output.
func (l *Logger) Tee(current, w io.Writer) *Logger {
	return &Logger{l.Output(zerolog.MultiLevelWriter(current, w))}
}

// WithTCPSink connects to a TCP server accepting JSON Lines at addr
// ("host:port") and returns a logger that writes to current and to that
// connection. current should be the writer l already logs to. Each zerolog
// event is one JSON document followed by a newline. The returned closer
// releases the connection.
func (l *Logger) WithTCPSink(addr string, current io.Writer) (*Logger, io.Closer, error) {
	conn, err := net.DialTimeout("tcp", addr, tcpDialTimeout)
	if err != nil {
		return nil, nil, fmt.Errorf("error connecting to log collector %s: %w", addr, err)
	}

	return l.Tee(current, conn), conn, nil
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
