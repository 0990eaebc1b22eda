// Package datasets contains the reference colorimetric data used by the
// generators: the CIE 1931 standard observer, CIE illuminant D65, standard
// whitepoint chromaticities and the BabelColor Average ColorChecker
// reflectances.
package datasets

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/kovidgoyal/colorimetry/colorconv"
	"github.com/kovidgoyal/colorimetry/spectral"
)

var (
	ErrUnknownSwatch     = errors.New("unknown swatch")
	ErrUnknownDataset    = errors.New("unknown dataset")
	ErrUnknownWhitepoint = errors.New("unknown whitepoint")
)

const (
	CIE1931Name    = "CIE 1931 2 Degree Standard Observer"
	BabelColorName = "BabelColor Average"
)

// Whitepoints are CIE 1931 2° chromaticities of common reference whites.
var Whitepoints = map[string]colorconv.Vec2{
	"A":      {0.44757, 0.40745},
	"D50":    {0.34570, 0.35850},
	"D55":    {0.33243, 0.34744},
	"D60":    {0.32168, 0.33767},
	"D65":    {0.31270, 0.32900},
	"D75":    {0.29902, 0.31485},
	"E":      {1. / 3, 1. / 3},
	"DCI-P3": {0.31400, 0.35100},
	"ACES":   {0.32168, 0.33767},
}

func Whitepoint(name string) (colorconv.Vec2, error) {
	if wp, found := Whitepoints[name]; found {
		return wp, nil
	}
	return colorconv.Vec2{}, fmt.Errorf("%w: %q", ErrUnknownWhitepoint, name)
}

func CIE1931Observer() *spectral.CMFS {
	ans, err := spectral.NewCMFS(CIE1931Name, cie1931Shape, cie1931Rows)
	if err != nil {
		panic(err)
	}
	return ans
}

func IlluminantD65() *spectral.Distribution {
	return spectral.MustFromValues("D65", d65Shape, d65Values)
}

// Observer returns the named colour matching functions.
func Observer(name string) (*spectral.CMFS, error) {
	switch strings.ToLower(name) {
	case strings.ToLower(CIE1931Name), "cie_2_1931", "cie 1931":
		return CIE1931Observer(), nil
	}
	return nil, fmt.Errorf("%w: no observer named %q", ErrUnknownDataset, name)
}

// Illuminant returns the spectral distribution of the named illuminant.
func Illuminant(name string) (*spectral.Distribution, error) {
	switch name {
	case "D65":
		return IlluminantD65(), nil
	}
	return nil, fmt.Errorf("%w: no illuminant named %q", ErrUnknownDataset, name)
}

// Checker is a set of reference reflectances in chart order.
type Checker struct {
	Name    string
	Names   []string
	Spectra map[string]*spectral.Distribution
}

// Get returns the reflectance of the named swatch.
func (c *Checker) Get(name string) (*spectral.Distribution, error) {
	if sd, found := c.Spectra[name]; found {
		return sd, nil
	}
	return nil, fmt.Errorf("%w: %q is not part of %s", ErrUnknownSwatch, name, c.Name)
}

var babelColorShape = spectral.Shape{Start: 380, End: 780, Interval: 10}

func BabelColorAverage() *Checker {
	ans := &Checker{Name: BabelColorName, Spectra: make(map[string]*spectral.Distribution, len(babelColorAverage))}
	for _, s := range babelColorAverage {
		ans.Names = append(ans.Names, s.name)
		ans.Spectra[s.name] = spectral.MustFromValues(s.name, babelColorShape, s.values)
	}
	return ans
}

// ColorChecker returns the named reference chart.
func ColorChecker(name string) (*Checker, error) {
	if name == BabelColorName {
		return BabelColorAverage(), nil
	}
	return nil, fmt.Errorf("%w: no colour checker named %q", ErrUnknownDataset, name)
}

// swatchIDs maps chart swatch names to the identifiers used in generated
// tables.
var swatchIDs = map[string]string{
	"black 2 (1.5 D)":      "black_20",
	"blue":                 "blue",
	"blue flower":          "blue_flower",
	"blue sky":             "blue_sky",
	"bluish green":         "bluish_green",
	"cyan":                 "cyan",
	"dark skin":            "dark_skin",
	"foliage":              "foliage",
	"green":                "green",
	"light skin":           "light_skin",
	"magenta":              "magenta",
	"moderate red":         "moderate_red",
	"neutral 3.5 (1.05 D)": "neutral_35",
	"neutral 5 (.70 D)":    "neutral_50",
	"neutral 6.5 (.44 D)":  "neutral_65",
	"neutral 8 (.23 D)":    "neutral_80",
	"orange":               "orange",
	"orange yellow":        "orange_yellow",
	"purple":               "purple",
	"purplish blue":        "purplish_blue",
	"red":                  "red",
	"white 9.5 (.05 D)":    "white_95",
	"yellow":               "yellow",
	"yellow green":         "yellow_green",
}

// SwatchID returns the table identifier of a swatch name.
func SwatchID(name string) (string, error) {
	if id, found := swatchIDs[name]; found {
		return id, nil
	}
	return "", fmt.Errorf("%w: %q has no identifier", ErrUnknownSwatch, name)
}

// SwatchNames returns the names known to SwatchID, sorted.
func SwatchNames() []string {
	return slices.Sorted(maps.Keys(swatchIDs))
}
