package glyph

import (
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fontbits/config"
)

func TestNotWhite(t *testing.T) {
	assert.False(t, NotWhite(color.NRGBA{0xff, 0xff, 0xff, 0xff}))
	assert.False(t, NotWhite(color.NRGBA{0xff, 0xff, 0xff, 0}), "alpha is ignored")
	assert.True(t, NotWhite(color.NRGBA{0xff, 0xff, 0xfe, 0xff}))
	assert.True(t, NotWhite(color.NRGBA{0, 0, 0, 0}))
	assert.True(t, NotWhite(color.NRGBA{0xff, 0, 0, 0xff}))
}

func TestOpaqueNotWhite(t *testing.T) {
	assert.False(t, OpaqueNotWhite(color.NRGBA{0, 0, 0, 0}))
	assert.True(t, OpaqueNotWhite(color.NRGBA{0, 0, 0, 1}))
	assert.False(t, OpaqueNotWhite(color.NRGBA{0xff, 0xff, 0xff, 0xff}))
}

func TestAlpha(t *testing.T) {
	assert.False(t, Alpha(color.NRGBA{0, 0, 0, 0x7f}))
	assert.True(t, Alpha(color.NRGBA{0xff, 0xff, 0xff, 0x80}))
}

func TestClassifierByName(t *testing.T) {
	assert.Equal(t, []string{"alpha", "not-white", "opaque-not-white"}, Classifiers())

	for _, name := range Classifiers() {
		classify, err := ClassifierByName(name)
		require.NoError(t, err)
		assert.NotNil(t, classify)
	}

	_, err := ClassifierByName("grey")
	var cfgErr *config.Error
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "ink", cfgErr.Field)
	assert.Contains(t, err.Error(), "not-white")
}
