package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "fontbits.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	codes := cfg.CharSet()
	assert.Equal(t, 165, len(codes))
	assert.Equal(t, 165, cfg.CharCount())
	assert.Equal(t, rune(33), codes[0])
	assert.Equal(t, rune(126), codes[93])
	assert.Equal(t, rune(161), codes[94])
	assert.Equal(t, rune(231), codes[len(codes)-1])
	assert.Equal(t, 165*7, cfg.AtlasWidth())

	// changing a default config must not change the next one
	cfg.Ranges[0].Start = 0
	assert.Equal(t, 33, Default().Ranges[0].Start)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name  string
		edit  func(c *Config)
		field string
	}{
		{"zero width", func(c *Config) { c.CellWidth = 0 }, "cell_width"},
		{"negative height", func(c *Config) { c.CellHeight = -1 }, "cell_height"},
		{"no ranges", func(c *Config) { c.Ranges = nil }, "ranges"},
		{"empty range", func(c *Config) { c.Ranges = []Range{{Start: 40, End: 40}} }, "range"},
		{"inverted range", func(c *Config) { c.Ranges = []Range{{Start: 50, End: 40}} }, "range"},
		{"past table", func(c *Config) { c.Ranges = []Range{{Start: 250, End: 257}} }, "range"},
		{"negative code", func(c *Config) { c.Ranges = []Range{{Start: -1, End: 5}} }, "range"},
		{"overlap", func(c *Config) { c.Ranges = []Range{{Start: 33, End: 127}, {Start: 100, End: 110}} }, "range"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.edit(&cfg)

			err := cfg.Validate()
			var cfgErr *Error
			require.True(t, errors.As(err, &cfgErr), "expected a config error, got %v", err)
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
cell_width: 5
cell_height: 8
ranges: [[48, 58], [65, 91]]
ink: alpha
format: json
sample_text: "Hi"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 5, cfg.CellWidth)
	assert.Equal(t, 8, cfg.CellHeight)
	assert.Equal(t, []Range{{Start: 48, End: 58}, {Start: 65, End: 91}}, cfg.Ranges)
	assert.Equal(t, "alpha", cfg.Ink)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "Hi", cfg.SampleText)
	assert.Equal(t, 36, cfg.CharCount())
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "cell_height: 16\n"))
	require.NoError(t, err)

	expected := Default()
	expected.CellHeight = 16
	assert.Equal(t, expected, cfg)

	cfg, err = Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "cell_widht: 7\n"))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = Load(writeConfig(t, "ranges: [[1, 2, 3]]\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "ranges: [[a, b]]\n"))
	assert.Error(t, err)
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "[33,127)", Range{Start: 33, End: 127}.String())
	assert.Equal(t, 94, Range{Start: 33, End: 127}.Len())
}
