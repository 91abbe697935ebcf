package log

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ToLogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ToLogLevel("info"))
	assert.Equal(t, slog.LevelWarn, ToLogLevel("warn"))
	assert.Equal(t, slog.LevelError, ToLogLevel("error"))

	assert.Panics(t, func() { ToLogLevel("verbose") })
}

func TestErrAttr(t *testing.T) {
	attr := ErrAttr(assert.AnError)
	assert.Equal(t, ErrAttrKey, attr.Key)
	assert.Equal(t, assert.AnError, attr.Value.Any())
}
