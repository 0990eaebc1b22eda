package gen

import (
	"bytes"
	"go/parser"
	"go/token"
	"maps"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovidgoyal/colorimetry"
	"github.com/kovidgoyal/colorimetry/datasets"
	"github.com/kovidgoyal/colorimetry/rgbspace"
	"github.com/kovidgoyal/colorimetry/spectral"
)

func generatedTables(cfg *Config) []string {
	ans := []string{"XYZ_D65", "VSPD"}
	for _, cs := range cfg.ColorSpaces {
		ans = append(ans, cs.Table+"_SCENE_REFERRED", cs.Table+"_ENCODED")
	}
	return append(ans, "ACES_XYZ_TO_RGB", "CAT02_SRGB_TO_ACES", "BRADFORD_SRGB_TO_ACES",
		"W_X", "W_Y", "W_Z", "BABELCOLOR", "CAT02_SRGB_TO_ACES_DERIVED", "ACES_FROM_SRGB")
}

func generate(t *testing.T, cfg *Config) (src, log string) {
	out, logs := bytes.Buffer{}, bytes.Buffer{}
	require.NoError(t, GenerateData(&out, cfg, cfg.Logger(&logs)))
	return out.String(), logs.String()
}

func TestGenerateDataGo(t *testing.T) {
	cfg := DefaultConfig()
	src, log := generate(t, cfg)
	f := &GoFormat{}
	for _, table := range generatedTables(cfg) {
		assert.Contains(t, src, "var "+f.Ident(table)+" = ", table)
	}
	assert.Contains(t, src, `"dark_skin":`)
	assert.Contains(t, src, "// Registered colour spaces: ")
	assert.Contains(t, src, "// d65_xyz: [0.95045593, 1.00000000, 1.08905775]")
	_, err := parser.ParseFile(token.NewFileSet(), "colorchecker_data.go", src, parser.ParseComments)
	require.NoError(t, err)

	assert.Contains(t, log, "Derived CAT02 matrix agrees with the library")
	assert.Contains(t, log, "Single precision weighting factor XYZ")
	assert.NotContains(t, log, "level=WARN")

	again, _ := generate(t, cfg)
	assert.Equal(t, src, again, "output must be deterministic")
}

func TestGenerateDataRust(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "rust"
	src, _ := generate(t, cfg)
	assert.True(t, strings.HasPrefix(src, "// Generated by generate-data "+colorimetry.Version.String()+", do not edit.\nuse std::collections::HashMap;\n\nlazy_static! {\n"))
	for _, table := range generatedTables(cfg) {
		assert.Contains(t, src, "pub static ref "+table+": ", table)
	}
	assert.Contains(t, src, "pub static ref XYZ_D65: HashMap<String, XYZf64> = hashmap! {\n    \"dark_skin\".into() => xyz(")
	assert.Contains(t, src, "pub static ref W_Y: SPD = SPD::new([\n")
	assert.Contains(t, src, "pub static ref BABELCOLOR: HashMap<String, SPD> = hashmap! {\n")
	assert.True(t, strings.HasSuffix(src, "}\n"))
}

func TestGenerateDataSubset(t *testing.T) {
	cfg, err := ReadConfig(strings.NewReader("format = \"rust\"\n[[colorspace]]\nname = \"ACEScct\"\ntable = \"CCT\"\n[weighting]\nstart = 400\nend = 700\ninterval = 20\n"))
	require.NoError(t, err)
	src, _ := generate(t, cfg)
	assert.Contains(t, src, "pub static ref CCT_ENCODED: ")
	assert.NotContains(t, src, "SRGB_ENCODED")
	// one weight per wavelength
	start := strings.Index(src, "pub static ref W_X: SPD = SPD::new([\n")
	require.GreaterOrEqual(t, start, 0)
	body := src[start:]
	body = body[:strings.Index(body, "]);")]
	assert.Equal(t, 16, strings.Count(body, ",\n"))
}

func TestACESFromSRGBMatchesDirectConversion(t *testing.T) {
	chart, err := NewChart(DefaultConfig())
	require.NoError(t, err)
	direct, _, err := chart.RGBTables(rgbspace.MustGet("ACES2065-1"), rgbspace.DefaultCAT)
	require.NoError(t, err)
	via, err := chart.ACESFromSRGB()
	require.NoError(t, err)
	require.Len(t, via, len(direct))
	for i := range direct {
		assert.Equal(t, direct[i].ID, via[i].ID)
		assert.InDeltaSlice(t, direct[i].V[:], via[i].V[:], 1e-4, direct[i].Name)
	}
}

func TestChartWhiteIsNearlyNeutral(t *testing.T) {
	chart, err := NewChart(DefaultConfig())
	require.NoError(t, err)
	scene, encoded, err := chart.RGBTables(rgbspace.MustGet("sRGB"), rgbspace.DefaultCAT)
	require.NoError(t, err)
	for i, r := range scene {
		if r.ID != "white_95" {
			continue
		}
		// a near perfect reflector, so close to equal channels
		assert.InDelta(t, r.V[0], r.V[1], 0.05)
		assert.InDelta(t, r.V[2], r.V[1], 0.05)
		assert.Greater(t, encoded[i].V[1], r.V[1])
		return
	}
	t.Fatal("white swatch missing")
}

func TestCheckFixedSkipsNonFiniteSwatches(t *testing.T) {
	cfg := DefaultConfig()
	chart, err := NewChart(cfg)
	require.NoError(t, err)
	shape := cfg.Shape()
	w, err := chart.WeightingFactors(shape)
	require.NoError(t, err)
	_, err = chart.XYZTable()
	require.NoError(t, err)

	spectra := maps.Clone(chart.Checker.Spectra)
	spectra["dark skin"], err = spectral.Constant("dark skin", shape, math.NaN())
	require.NoError(t, err)
	chart.Checker = &datasets.Checker{Name: chart.Checker.Name, Names: chart.Checker.Names, Spectra: spectra}

	logs := bytes.Buffer{}
	worst, worstName, err := chart.CheckFixed(shape, w, cfg.Logger(&logs))
	require.NoError(t, err)
	assert.False(t, math.IsNaN(worst))
	assert.NotEmpty(t, worstName)
	assert.NotEqual(t, "dark skin", worstName)
	assert.Contains(t, logs.String(), "Skipping swatch with non-finite single precision samples")
	assert.Contains(t, logs.String(), "swatch=dark_skin")
}

func TestGenerateReference(t *testing.T) {
	cfg := DefaultConfig()
	out, logs := bytes.Buffer{}, bytes.Buffer{}
	require.NoError(t, GenerateReference(&out, cfg, "dark skin", cfg.Logger(&logs)))
	src := out.String()
	assert.Contains(t, src, "// dark skin XYZ: [")
	assert.Contains(t, src, "// dark skin sRGB: [")
	assert.Contains(t, src, "func referenceValues() (refXyz, refSrgb map[string][3]float64) {")
	_, err := parser.ParseFile(token.NewFileSet(), "reference_values.go", src, 0)
	require.NoError(t, err)

	prev := -1
	for _, name := range datasets.SwatchNames() {
		id, err := datasets.SwatchID(name)
		require.NoError(t, err)
		idx := strings.Index(src, `refXyz["`+id+`"]`)
		require.Greater(t, idx, prev, "%s must follow the previous swatch", id)
		assert.Contains(t, src, `refSrgb["`+id+`"] = [3]float64{`)
		prev = idx
	}
	assert.Contains(t, logs.String(), "Reference swatch")
}

func TestGenerateReferenceRust(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "rust"
	out := bytes.Buffer{}
	require.NoError(t, GenerateReference(&out, cfg, "blue sky", discard))
	src := out.String()
	assert.Contains(t, src, "let ref_xyz = HashMap::new();\nlet ref_srgb = HashMap::new();\n")
	assert.Contains(t, src, `ref_xyz.insert("dark_skin", xyz(`)
	assert.Contains(t, src, `ref_srgb.insert("blue_sky", rgbf32(`)
	assert.Equal(t, 2*len(datasets.SwatchNames()), strings.Count(src, ".insert("))
}

func TestGenerateReferenceUnknownSwatch(t *testing.T) {
	out := bytes.Buffer{}
	err := GenerateReference(&out, DefaultConfig(), "mauve", discard)
	assert.ErrorIs(t, err, datasets.ErrUnknownSwatch)
	assert.Zero(t, out.Len())
}

func TestReferenceSRGBIsEncodedFromTheReferenceXYZ(t *testing.T) {
	chart, err := NewChart(DefaultConfig())
	require.NoError(t, err)
	xyz, err := chart.XYZTable()
	require.NoError(t, err)
	for _, r := range xyz {
		srgb, err := rgbspace.XYZToSRGB(r.V.Scale(0.01))
		require.NoError(t, err)
		cs := rgbspace.MustGet("sRGB")
		linear := cs.DecodeRGB(srgb)
		back := cs.RGBToXYZ.MulVec(linear).Scale(100)
		assert.InDeltaSlice(t, r.V[:], back[:], 5e-3, r.Name)
	}
}
