package logger

import (
	"io"
	"log/slog"
	"os"
)

// TestLogEnv names the variable that turns on log output in tests.
const TestLogEnv = "TEST_LOG"

// NewTest returns a debug-level text logger writing to w when TEST_LOG is
// set, and a discarding logger otherwise.
//
//	log := logger.NewTest(os.Stderr)
func NewTest(w io.Writer) *slog.Logger {
	if os.Getenv(TestLogEnv) == "" {
		return Discard()
	}
	return New(WithOutput(w), WithFormat(FormatText), WithLevel(slog.LevelDebug))
}
