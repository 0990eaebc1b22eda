package gen

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/kovidgoyal/colorimetry/colorconv"
	"github.com/kovidgoyal/colorimetry/datasets"
	"github.com/kovidgoyal/colorimetry/rgbspace"
	"github.com/kovidgoyal/colorimetry/spectral"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// ColorSpaceTable selects a colour space to tabulate and the prefix of its
// table names.
type ColorSpaceTable struct {
	Name  string `toml:"name"`
	Table string `toml:"table"`
}

type WeightingConfig struct {
	Start    float64 `toml:"start"`
	End      float64 `toml:"end"`
	Interval float64 `toml:"interval"`
}

// Config controls both generators. The zero value of every field means
// "use the default".
type Config struct {
	Format      string            `toml:"format"`
	Package     string            `toml:"package"`
	Precision   int               `toml:"precision"`
	Checker     string            `toml:"checker"`
	Illuminant  string            `toml:"illuminant"`
	Observer    string            `toml:"observer"`
	Adaptation  string            `toml:"adaptation"`
	Swatch      string            `toml:"swatch"`
	LogLevel    string            `toml:"log_level"`
	ColorSpaces []ColorSpaceTable `toml:"colorspace"`
	Weighting   WeightingConfig   `toml:"weighting"`
}

var defaultColorSpaces = []ColorSpaceTable{
	{"sRGB", "SRGB"},
	{"ITU-R BT.709", "ITUR_BT709"},
	{"ALEXA Wide Gamut", "ALEXA_WIDE_GAMUT"},
	{"ACEScc", "ACES_CC"},
	{"ACEScct", "ACES_CCT"},
	{"ACEScg", "ACES_CG"},
	{"aces", "ACES"},
	{"ACESproxy", "ACES_PROXY"},
	{"DCI-P3+", "DCI_P3_P"},
	{"DCI-P3", "DCI_P3"},
	{"ProPhoto RGB", "PRO_PHOTO_RGB"},
	{"Beta RGB", "BETA_RGB"},
	{"REDcolor", "RED_COLOR"},
	{"REDcolor2", "RED_COLOR2"},
	{"REDcolor3", "RED_COLOR3"},
	{"REDcolor4", "RED_COLOR4"},
	{"DRAGONcolor", "DRAGON_COLOR"},
	{"DRAGONcolor2", "DRAGON_COLOR2"},
	{"Sharp RGB", "SHARP_RGB"},
	{"ITU-R BT.2020", "ITUR_BT2020"},
	{"Adobe RGB (1998)", "ADOBE_RGB_1998"},
}

func DefaultConfig() *Config {
	c := &Config{}
	c.fillDefaults()
	return c
}

func (c *Config) fillDefaults() {
	def := func(s *string, v string) {
		if *s == "" {
			*s = v
		}
	}
	def(&c.Format, "go")
	def(&c.Package, "colorchecker")
	def(&c.Checker, datasets.BabelColorName)
	def(&c.Illuminant, "D65")
	def(&c.Observer, datasets.CIE1931Name)
	def(&c.Adaptation, rgbspace.DefaultCAT)
	def(&c.Swatch, "dark skin")
	def(&c.LogLevel, "info")
	if c.Precision == 0 {
		c.Precision = 24
	}
	if len(c.ColorSpaces) == 0 {
		c.ColorSpaces = append([]ColorSpaceTable(nil), defaultColorSpaces...)
	}
	if c.Weighting == (WeightingConfig{}) {
		c.Weighting = WeightingConfig{380, 770, 10}
	}
}

// ReadConfig decodes a TOML configuration, rejecting unknown keys, and
// fills in defaults for everything not specified.
func ReadConfig(r io.Reader) (*Config, error) {
	c := &Config{}
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(c); err != nil {
		var sm *toml.StrictMissingError
		if errors.As(err, &sm) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, sm.String())
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	c.fillDefaults()
	return c, c.Validate()
}

// LoadConfig reads the configuration file at path. An empty path or "-"
// returns the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" || path == "-" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := ReadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks that everything the configuration names exists.
func (c *Config) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}
	if _, err := c.Formatter(); err != nil {
		return err
	}
	if c.Precision < 1 || c.Precision > 30 {
		return bad("precision must be between 1 and 30, not %d", c.Precision)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := datasets.ColorChecker(c.Checker); err != nil {
		return bad("%s", err)
	}
	if _, err := datasets.Illuminant(c.Illuminant); err != nil {
		return bad("%s", err)
	}
	if _, err := datasets.Whitepoint(c.Illuminant); err != nil {
		return bad("%s", err)
	}
	if _, err := datasets.Observer(c.Observer); err != nil {
		return bad("%s", err)
	}
	if _, err := colorconv.SensorMatrix(c.Adaptation); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	seen := make(map[string]bool, len(c.ColorSpaces))
	for _, cs := range c.ColorSpaces {
		if _, err := rgbspace.Get(cs.Name); err != nil {
			return bad("%s", err)
		}
		if cs.Table == "" {
			return bad("colour space %q has no table name", cs.Name)
		}
		if seen[cs.Table] {
			return bad("table name %q is used more than once", cs.Table)
		}
		seen[cs.Table] = true
	}
	if err := spectral.ValidateWeightingShape(c.Shape(), spectral.ASTME308Shape); err != nil {
		return bad("weighting: %s", err)
	}
	return nil
}

// Shape is the domain of the weighting factors and resampled spectra.
func (c *Config) Shape() spectral.Shape {
	return spectral.NewShape(c.Weighting.Start, c.Weighting.End, c.Weighting.Interval)
}

func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return l, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return l, nil
}

// Formatter returns the output format named by the configuration.
func (c *Config) Formatter() (Format, error) {
	switch strings.ToLower(c.Format) {
	case "go":
		return &GoFormat{Package: c.Package, Precision: c.Precision}, nil
	case "rust":
		return &RustFormat{Precision: c.Precision}, nil
	}
	return nil, fmt.Errorf("%w: unknown output format %q, supported formats are: go, rust", ErrInvalidConfig, c.Format)
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	l, err := c.Level()
	if err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}
