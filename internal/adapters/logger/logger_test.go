package logger_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.pakt.dev/pakt/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated
// testing. It also sets NO_COLOR=1 to ensure deterministic output without
// ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("some message")

	g := goldie.New(t)
	g.Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("some warning")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(os.ErrPermission)

	g := goldie.New(t)
	g.Assert(t, "error_simple", buf.Bytes())
}

func TestLogger_ErrorChain(t *testing.T) {
	lg, buf := newTestLogger(t)
	inner := zerr.New("inner cause")
	lg.Error(zerr.Wrap(inner, "outer failure"))

	g := goldie.New(t)
	g.Assert(t, "error_chain", buf.Bytes())
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Zero(t, buf.Len())
}

func TestLogger_DebugSuppressedByDefault(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Debug("housekeeping")
	assert.Zero(t, buf.Len())
}

func TestLogger_Verbose(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.SetVerbose(true)
	lg.Debug("housekeeping")

	g := goldie.New(t)
	g.Assert(t, "debug_verbose", buf.Bytes())

	// Toggling back suppresses debug output on the live handler.
	buf.Reset()
	lg.SetVerbose(false)
	lg.Debug("housekeeping")
	assert.Zero(t, buf.Len())
}

func TestLogger_JSONMode(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Info("structured message")

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "{"), "expected JSON output, got %q", out)
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, `"msg":"structured message"`)
}
