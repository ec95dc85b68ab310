package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapAdapter_FieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewZapAdapter(zap.New(core)).With(Fields{"session": "s1"})

	l.Debug("dropped", nil)
	l.Info("mapped", Fields{"screens": 2})
	l.WithError(errors.New("boom")).Error("failed", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "mapped", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "s1", ctx["session"])
	assert.EqualValues(t, 2, ctx["screens"])
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestNew_LevelFallback(t *testing.T) {
	l, err := New("verbose", "json")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
	assert.False(t, l.Core().Enabled(zap.DebugLevel))

	l, err = New("debug", "console")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
	tl := NewTestLogger(t)
	assert.Same(t, tl, OrNop(tl))
}
