package gen

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kovidgoyal/colorimetry"
	"github.com/kovidgoyal/colorimetry/colorconv"
	"github.com/kovidgoyal/colorimetry/datasets"
	"github.com/kovidgoyal/colorimetry/rgbspace"
	"github.com/kovidgoyal/colorimetry/spectral"
)

// DerivedMatrixTolerance is the largest element-wise difference allowed
// between the step by step Von Kries derivation and the library matrix.
const DerivedMatrixTolerance = 1e-8

var tableNameReplacer = strings.NewReplacer("-", "_", " ", "_", ".", "_", "(", "", ")", "")

func tableName(parts ...string) string {
	return strings.ToUpper(tableNameReplacer.Replace(strings.Join(parts, "_")))
}

func writeVec3Table(w io.Writer, f Format, name string, kind TableKind, rows []Row) {
	f.OpenTable(w, name, kind)
	for _, r := range rows {
		f.Vec3Entry(w, kind, r.ID, r.V)
	}
	f.CloseTable(w, kind)
}

func formatVec(v colorconv.Vec3) string {
	return fmt.Sprintf("[%.8f, %.8f, %.8f]", v[0], v[1], v[2])
}

// GenerateData writes the colour checker data tables to w: XYZ, raw
// spectra, scene referred and encoded RGB for every configured colour space,
// whitepoint and adaptation matrices, ASTM E2022 weighting factors, the
// resampled spectra they apply to and ACES values derived from sRGB. It then
// cross-checks the step by step CAT02 derivation and the single precision
// weighting path, logging the results.
func GenerateData(w io.Writer, cfg *Config, logger *slog.Logger) (err error) {
	f, err := cfg.Formatter()
	if err != nil {
		return err
	}
	chart, err := NewChart(cfg)
	if err != nil {
		return err
	}
	buf := bytes.Buffer{}
	b := &buf
	f.Begin(b, "generate-data "+colorimetry.Version.String(), true)

	xyz, err := chart.XYZTable()
	if err != nil {
		return err
	}
	writeVec3Table(b, f, tableName("XYZ", cfg.Illuminant), XYZTable, xyz)
	logger.Info("Tabulated XYZ", "checker", chart.Checker.Name, "illuminant", cfg.Illuminant, "swatches", len(xyz))

	spectra, err := chart.Spectra()
	if err != nil {
		return err
	}
	f.OpenTable(b, "VSPD", SpectrumTable)
	for _, s := range spectra {
		f.SpectrumEntry(b, s.ID, s.Samples)
	}
	f.CloseTable(b, SpectrumTable)

	for _, t := range cfg.ColorSpaces {
		cs, err := rgbspace.Get(t.Name)
		if err != nil {
			return err
		}
		scene, encoded, err := chart.RGBTables(cs, cfg.Adaptation)
		if err != nil {
			return err
		}
		writeVec3Table(b, f, t.Table+"_SCENE_REFERRED", RGBTable, scene)
		writeVec3Table(b, f, t.Table+"_ENCODED", RGBTable, encoded)
		logger.Debug("Tabulated colour space", "space", cs.String(), "table", t.Table)
	}
	f.Comment(b, "Registered colour spaces: "+strings.Join(rgbspace.Names(), ", "))

	srgb, aces := rgbspace.MustGet("sRGB"), rgbspace.MustGet("ACES2065-1")
	wpSRGB, wpACES := srgb.WhitepointXYZ(), aces.WhitepointXYZ()
	f.Comment(b, fmt.Sprintf("sRGB whitepoint: xy %v XYZ %s\nACES whitepoint: xy %v XYZ %s",
		srgb.Whitepoint, formatVec(wpSRGB), aces.Whitepoint, formatVec(wpACES)))
	f.MatrixConst(b, "ACES_XYZ_TO_RGB", aces.XYZToRGB)

	library := map[string]colorconv.Mat3{}
	for _, transform := range []string{"CAT02", "Bradford"} {
		m, err := colorconv.AdaptationMatrix(wpSRGB, wpACES, transform)
		if err != nil {
			return err
		}
		library[transform] = m
		f.MatrixConst(b, tableName(transform, "SRGB_TO_ACES"), m)
	}

	shape := cfg.Shape()
	weights, err := chart.WeightingFactors(shape)
	if err != nil {
		return fmt.Errorf("weighting factors for %s: %w", shape, err)
	}
	f.VectorConst(b, "W_X", weights.X)
	f.VectorConst(b, "W_Y", weights.Y)
	f.VectorConst(b, "W_Z", weights.Z)

	resampled, err := chart.ResampledSpectra(shape)
	if err != nil {
		return err
	}
	f.OpenTable(b, tableName(strings.ReplaceAll(chart.Checker.Name, " Average", "")), VectorTable)
	for _, r := range resampled {
		f.VectorEntry(b, r.ID, r.Values)
	}
	f.CloseTable(b, VectorTable)

	derived, err := DeriveVonKries(wpSRGB, wpACES, "CAT02", logger)
	if err != nil {
		return err
	}
	f.MatrixConst(b, "CAT02_SRGB_TO_ACES_DERIVED", derived)

	fromSRGB, err := chart.ACESFromSRGB()
	if err != nil {
		return err
	}
	writeVec3Table(b, f, "ACES_FROM_SRGB", RGBTable, fromSRGB)

	f.Comment(b, "d65_xyz: "+formatVec(colorconv.XYToXYZ(colorconv.Vec2{0.31270, 0.32900})))
	f.End(b, true)

	if diff := derived.MaxAbsDiff(library["CAT02"]); diff > DerivedMatrixTolerance {
		logger.Warn("Derived CAT02 matrix disagrees with the library", "max_difference", diff, "derived", derived, "library", library["CAT02"])
	} else {
		logger.Info("Derived CAT02 matrix agrees with the library", "max_difference", diff)
	}
	worst, worstName, err := chart.CheckFixed(shape, weights, logger)
	if err != nil {
		return fmt.Errorf("checking single precision weighting: %w", err)
	}
	logger.Info("Single precision weighting factor XYZ", "max_dE2000", worst, "swatch", worstName)

	src, err := f.Finish("colorchecker_data.go", buf.Bytes())
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// GenerateReference writes the XYZ and encoded sRGB values of every swatch
// as insertion statements, for use as test fixtures. The values of swatch
// are also written as a comment, an unknown swatch is an error.
func GenerateReference(w io.Writer, cfg *Config, swatch string, logger *slog.Logger) error {
	f, err := cfg.Formatter()
	if err != nil {
		return err
	}
	checker, err := datasets.ColorChecker(cfg.Checker)
	if err != nil {
		return err
	}
	cmfs, err := datasets.Observer(cfg.Observer)
	if err != nil {
		return err
	}
	ill, err := datasets.Illuminant(cfg.Illuminant)
	if err != nil {
		return err
	}
	convert := func(name string) (xyz, srgb colorconv.Vec3, err error) {
		sd, err := checker.Get(name)
		if err != nil {
			return
		}
		if xyz, err = spectral.ToXYZ(sd, ill, cmfs); err != nil {
			return
		}
		xyz = xyz.Scale(0.01)
		srgb, err = rgbspace.XYZToSRGB(xyz)
		return
	}
	xyz, srgb, err := convert(swatch)
	if err != nil {
		return err
	}
	logger.Info("Reference swatch", "swatch", swatch, "xyz", xyz, "srgb", srgb)

	buf := bytes.Buffer{}
	b := &buf
	f.Begin(b, "gen-ref "+colorimetry.Version.String(), false)
	f.Comment(b, fmt.Sprintf("%s XYZ: %s\n%s sRGB: %s", swatch, formatVec(xyz), swatch, formatVec(srgb)))
	refXYZ, refSRGB := InsertTable{"ref_xyz", "xyz"}, InsertTable{"ref_srgb", "rgbf32"}
	f.OpenInserts(b, refXYZ, refSRGB)
	for _, name := range datasets.SwatchNames() {
		id, err := datasets.SwatchID(name)
		if err != nil {
			return err
		}
		xyz, srgb, err := convert(name)
		if err != nil {
			return err
		}
		f.InsertStatement(b, refXYZ, id, xyz)
		f.InsertStatement(b, refSRGB, id, srgb)
	}
	f.CloseInserts(b, refXYZ, refSRGB)
	f.End(b, false)

	src, err := f.Finish("reference_values.go", buf.Bytes())
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}
