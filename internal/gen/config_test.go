package gen

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovidgoyal/colorimetry/spectral"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, "go", c.Format)
	assert.Equal(t, "CAT02", c.Adaptation)
	assert.Equal(t, "dark skin", c.Swatch)
	assert.Len(t, c.ColorSpaces, 21)
	assert.Equal(t, spectral.NewShape(380, 770, 10), c.Shape())
	l, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, l)

	d, err := LoadConfig("-")
	require.NoError(t, err)
	if diff := cmp.Diff(c, d); diff != "" {
		t.Fatalf("LoadConfig(-) differs from the defaults:\n%s", diff)
	}
}

func TestReadConfig(t *testing.T) {
	c, err := ReadConfig(strings.NewReader(`
format = "rust"
precision = 12
log_level = "debug"
swatch = "blue sky"

[weighting]
start = 400
end = 700
interval = 20

[[colorspace]]
name = "sRGB"
table = "SRGB"

[[colorspace]]
name = "acescg"
table = "ACES_CG"
`))
	require.NoError(t, err)
	assert.Equal(t, "rust", c.Format)
	assert.Equal(t, 12, c.Precision)
	assert.Equal(t, "blue sky", c.Swatch)
	assert.Equal(t, "D65", c.Illuminant)
	assert.Equal(t, []ColorSpaceTable{{"sRGB", "SRGB"}, {"acescg", "ACES_CG"}}, c.ColorSpaces)
	assert.Equal(t, spectral.NewShape(400, 700, 20), c.Shape())
	l, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
	f, err := c.Formatter()
	require.NoError(t, err)
	assert.IsType(t, &RustFormat{}, f)
}

func TestReadConfigRejectsBadInput(t *testing.T) {
	for _, src := range []string{
		`colour = "red"`,
		`format = "python"`,
		`precision = 99`,
		`log_level = "loud"`,
		`illuminant = "F2"`,
		`adaptation = "Hunt"`,
		"[[colorspace]]\nname = \"Rec. 601\"\ntable = \"X\"",
		"[[colorspace]]\nname = \"sRGB\"\ntable = \"\"",
		"[[colorspace]]\nname = \"sRGB\"\ntable = \"A\"\n[[colorspace]]\nname = \"ACEScg\"\ntable = \"A\"",
		"[weighting]\nstart = 700\nend = 400\ninterval = 10",
		"[weighting]\nstart = 385\nend = 705\ninterval = 10",
		"[weighting]\nstart = 400.5\nend = 700.5\ninterval = 10",
		"[weighting]\nstart = 400\nend = 700\ninterval = 2.5",
		`precision = "high"`,
	} {
		_, err := ReadConfig(strings.NewReader(src))
		assert.ErrorIs(t, err, ErrInvalidConfig, src)
	}
}

func TestUnsupportedAdaptationNamesTheSupportedOnes(t *testing.T) {
	_, err := ReadConfig(strings.NewReader(`adaptation = "Hunt"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Hunt"`)
	assert.Contains(t, err.Error(), "Bradford")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir() + "/missing.toml")
	assert.Error(t, err)
}
