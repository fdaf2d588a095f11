package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests exercise the App lifecycle without opening a window; they
// also keep the whole package, including the widget wiring, in the
// compiled test build.

func TestNewApp(t *testing.T) {
	a, err := NewApp()
	require.NoError(t, err)
	defer a.exporter.Close()

	assert.False(t, a.IsOpen(), "no window is open before OpenOrFocus")
	assert.NotNil(t, a.reg)
}

func TestCopiedDuration(t *testing.T) {
	assert.Equal(t, int64(2), int64(copiedDuration.Seconds()))
}
