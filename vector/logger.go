// SPDX-License-Identifier: MIT

package vector

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var pkgLogger atomic.Pointer[zap.Logger]

func init() {
	pkgLogger.Store(newDefaultLogger())
}

// newDefaultLogger writes warnings and worse to stderr in console format,
// so a fatal allocation failure always leaves a diagnostic behind.
func newDefaultLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())

	return zap.New(zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zapcore.WarnLevel))
}

// Logger returns the package logger used by vectors built without WithLogger.
func Logger() *zap.Logger {
	return pkgLogger.Load()
}

// SetLogger replaces the package logger and returns a function restoring the
// previous one. A nil l restores the stderr default.
func SetLogger(l *zap.Logger) (restore func()) {
	if l == nil {
		l = newDefaultLogger()
	}
	prev := pkgLogger.Swap(l)

	return func() { pkgLogger.Store(prev) }
}

// logger resolves the effective logger for this vector.
func (s *state) logger() *zap.Logger {
	if s.opts.logger != nil {
		return s.opts.logger
	}

	return Logger()
}
