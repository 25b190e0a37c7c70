package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, IDFromContent("example 1"), IDFromContent("example 1"))
	})

	t.Run("distinct content distinct ids", func(t *testing.T) {
		assert.NotEqual(t, IDFromContent("example 1"), IDFromContent("example 2"))
	})

	t.Run("empty content", func(t *testing.T) {
		assert.Equal(t, IDFromContent(""), IDFromContent(""))
	})
}

func TestMode(t *testing.T) {
	assert.Equal(t, "ratio", ModeRatio.String())
	assert.Equal(t, "partial_ratio", ModePartialRatio.String())
	assert.Equal(t, "unknown", Mode(0).String())

	assert.True(t, ModeRatio.Valid())
	assert.True(t, ModePartialRatio.Valid())
	assert.False(t, Mode(99).Valid())
}
