package gen

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/kovidgoyal/go-parallel"

	"github.com/kovidgoyal/colorimetry/colorconv"
	"github.com/kovidgoyal/colorimetry/datasets"
	"github.com/kovidgoyal/colorimetry/rgbspace"
	"github.com/kovidgoyal/colorimetry/spectral"
)

// Chart is a colour checker measured under one illuminant by one observer.
// Tables keep the checker's chart order.
type Chart struct {
	Checker    *datasets.Checker
	CMFS       *spectral.CMFS
	Illuminant *spectral.Distribution
	// Whitepoint is the chromaticity XYZ values are relative to.
	Whitepoint colorconv.Vec2

	xyz func() ([]Row, error)
}

func NewChart(cfg *Config) (*Chart, error) {
	checker, err := datasets.ColorChecker(cfg.Checker)
	if err != nil {
		return nil, err
	}
	cmfs, err := datasets.Observer(cfg.Observer)
	if err != nil {
		return nil, err
	}
	ill, err := datasets.Illuminant(cfg.Illuminant)
	if err != nil {
		return nil, err
	}
	wp, err := datasets.Whitepoint(cfg.Illuminant)
	if err != nil {
		return nil, err
	}
	if cmfs, err = cmfs.Align(spectral.ASTME308Shape); err != nil {
		return nil, err
	}
	if ill, err = ill.Align(spectral.ASTME308Shape); err != nil {
		return nil, err
	}
	ans := &Chart{Checker: checker, CMFS: cmfs, Illuminant: ill, Whitepoint: wp}
	ans.xyz = sync.OnceValues(func() ([]Row, error) {
		return ans.tabulate(func(sd *spectral.Distribution) (colorconv.Vec3, error) {
			return spectral.ToXYZ(sd, ans.Illuminant, ans.CMFS)
		})
	})
	return ans, nil
}

// tabulate evaluates f for every swatch in parallel. Each worker writes only
// to its own index, and the first error wins.
func (c *Chart) tabulate(f func(*spectral.Distribution) (colorconv.Vec3, error)) ([]Row, error) {
	names := c.Checker.Names
	ans := make([]Row, len(names))
	errs := make([]error, len(names))
	err := parallel.Run_in_parallel_over_range(0, func(start, limit int) {
		for i := start; i < limit; i++ {
			name := names[i]
			id, err := datasets.SwatchID(name)
			if err != nil {
				errs[i] = err
				continue
			}
			v, err := f(c.Checker.Spectra[name])
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", name, err)
				continue
			}
			ans[i] = Row{ID: id, Name: name, V: v}
		}
	}, 0, len(names))
	if err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return ans, nil
}

// XYZTable returns the XYZ values of every swatch, with the perfect
// diffuser at Y = 100.
func (c *Chart) XYZTable() ([]Row, error) {
	return c.xyz()
}

func (c *Chart) mapXYZ(f func(xyz colorconv.Vec3) (colorconv.Vec3, error)) ([]Row, error) {
	xyz, err := c.xyz()
	if err != nil {
		return nil, err
	}
	ans := make([]Row, len(xyz))
	for i, r := range xyz {
		v, err := f(r.V)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.Name, err)
		}
		ans[i] = Row{ID: r.ID, Name: r.Name, V: v}
	}
	return ans, nil
}

// RGBTables converts the chart to cs, adapting from the chart's whitepoint
// with cat, and returns the linear and the encoded values.
func (c *Chart) RGBTables(cs *rgbspace.ColorSpace, cat string) (scene, encoded []Row, err error) {
	if scene, err = c.mapXYZ(func(xyz colorconv.Vec3) (colorconv.Vec3, error) {
		return rgbspace.XYZToRGB(xyz.Scale(0.01), c.Whitepoint, cs.Whitepoint, cs.XYZToRGB, cat)
	}); err != nil {
		return nil, nil, fmt.Errorf("converting %s to %s: %w", c.Checker.Name, cs.Name, err)
	}
	encoded = make([]Row, len(scene))
	for i, r := range scene {
		encoded[i] = Row{ID: r.ID, Name: r.Name, V: cs.EncodeRGB(r.V)}
	}
	return
}

// ACESFromSRGB converts the chart to linear sRGB and from there to
// ACES2065-1 with CAT02, rather than going to ACES directly from XYZ.
func (c *Chart) ACESFromSRGB() ([]Row, error) {
	srgb, aces := rgbspace.MustGet("sRGB"), rgbspace.MustGet("ACES2065-1")
	m, err := rgbspace.RGBToRGBMatrix(srgb, aces, rgbspace.DefaultCAT)
	if err != nil {
		return nil, err
	}
	scene, _, err := c.RGBTables(srgb, rgbspace.DefaultCAT)
	if err != nil {
		return nil, err
	}
	for i := range scene {
		scene[i].V = m.MulVec(scene[i].V)
	}
	return scene, nil
}

// Spectra returns the raw reflectances of every swatch.
func (c *Chart) Spectra() ([]SpectrumRow, error) {
	ans := make([]SpectrumRow, 0, len(c.Checker.Names))
	for _, name := range c.Checker.Names {
		id, err := datasets.SwatchID(name)
		if err != nil {
			return nil, err
		}
		ans = append(ans, SpectrumRow{ID: id, Samples: c.Checker.Spectra[name].Samples()})
	}
	return ans, nil
}

// ResampledSpectra returns every swatch aligned to shape.
func (c *Chart) ResampledSpectra(shape spectral.Shape) ([]VectorRow, error) {
	ans := make([]VectorRow, 0, len(c.Checker.Names))
	for _, name := range c.Checker.Names {
		id, err := datasets.SwatchID(name)
		if err != nil {
			return nil, err
		}
		a, err := c.Checker.Spectra[name].Align(shape)
		if err != nil {
			return nil, fmt.Errorf("resampling %s: %w", name, err)
		}
		ans = append(ans, VectorRow{ID: id, Values: a.Values()})
	}
	return ans, nil
}

// WeightingFactors returns tristimulus weighting factors for reflectances
// sampled on shape.
func (c *Chart) WeightingFactors(shape spectral.Shape) (spectral.Weights, error) {
	return spectral.WeightingFactors(c.CMFS, c.Illuminant, shape)
}

// CheckFixed compares the XYZ of the single precision reflectances weighted
// by w against the reference table, returning the largest CIEDE2000
// difference and the swatch it occurs for.
func (c *Chart) CheckFixed(shape spectral.Shape, w spectral.Weights, logger *slog.Logger) (worst float64, worstName string, err error) {
	ref, err := c.xyz()
	if err != nil {
		return
	}
	white := colorconv.XYToXYZ(c.Whitepoint).Scale(100)
	for _, r := range ref {
		f, err := spectral.FixedFrom(c.Checker.Spectra[r.Name], shape)
		if err != nil {
			return 0, "", err
		}
		if !f.Finite() {
			logger.Warn("Skipping swatch with non-finite single precision samples", "swatch", r.ID)
			continue
		}
		v, err := f.Dot(w)
		if err != nil {
			return 0, "", err
		}
		xyz := colorconv.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
		de := colorconv.DeltaE2000(colorconv.XYZToLab(xyz, white), colorconv.XYZToLab(r.V, white))
		logger.Debug("Fixed precision XYZ", "swatch", r.ID, "xyz", xyz, "reference", r.V, "dE2000", de)
		if de > worst || worstName == "" {
			worst, worstName = de, r.Name
		}
	}
	return
}
