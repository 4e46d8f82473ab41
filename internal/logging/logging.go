// Habbit - Habit Onboarding Flow
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


// Package logging builds the zap logger that records flow events. The
// terminal belongs to the wizard, so events go to a JSON file instead.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures the flow event log.
type Options struct {
	Path    string // log file; "" discards events, "-" writes to stderr
	Level   string // debug, info, warn, error
	Verbose bool   // forces debug level
}

// Logger is a zap logger bound to one wizard session.
type Logger struct {
	*zap.Logger
	Session string
	closer  io.Closer
}

// Open builds the session logger described by opts.
func Open(opts Options) (*Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	var (
		ws     zapcore.WriteSyncer
		closer io.Closer
	)
	switch opts.Path {
	case "":
		return Nop(), nil
	case "-":
		ws = zapcore.Lock(zapcore.AddSync(os.Stderr))
	default:
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
			return nil, fmt.Errorf("creating log dir: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		ws = zapcore.AddSync(f)
		closer = f
	}

	l := New(ws, level)
	l.closer = closer
	return l, nil
}

// New writes JSON events at level or above to ws.
func New(ws zapcore.WriteSyncer, level zapcore.Level) *Logger {
	core := zapcore.NewCore(buildEncoder(), ws, zap.NewAtomicLevelAt(level))
	session := uuid.NewString()
	return &Logger{
		Logger:  zap.New(core).With(zap.String("session", session)),
		Session: session,
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Close flushes buffered entries and closes the log file.
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

func buildEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	return zapcore.NewJSONEncoder(cfg)
}
