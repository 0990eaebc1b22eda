package rgbspace

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/kovidgoyal/colorimetry/colorconv"
	"github.com/kovidgoyal/colorimetry/datasets"
)

var ErrUnknownColorSpace = errors.New("unknown colour space")

var (
	primariesAP0   = [3]colorconv.Vec2{{0.7347, 0.2653}, {0.0000, 1.0000}, {0.0001, -0.0770}}
	primariesAP1   = [3]colorconv.Vec2{{0.713, 0.293}, {0.165, 0.830}, {0.128, 0.044}}
	primariesBT709 = [3]colorconv.Vec2{{0.64, 0.33}, {0.30, 0.60}, {0.15, 0.06}}
	primariesP3    = [3]colorconv.Vec2{{0.680, 0.320}, {0.265, 0.690}, {0.150, 0.060}}
)

// RED camera gamuts, D65 based.
var redPrimaries = []struct {
	name      string
	primaries [3]colorconv.Vec2
}{
	{"REDcolor", [3]colorconv.Vec2{{0.699747001290731, 0.329046930312637}, {0.304264039023547, 0.623641145553478}, {0.134913961296487, 0.034717441781042}}},
	{"REDcolor2", [3]colorconv.Vec2{{0.878682510476129, 0.324964007409910}, {0.300888714367432, 0.679054755790568}, {0.095398694605615, -0.029379326834327}}},
	{"REDcolor3", [3]colorconv.Vec2{{0.701181035906413, 0.329014155583010}, {0.300600304651563, 0.683788834268552}, {0.108154455624011, -0.008688175786398}}},
	{"REDcolor4", [3]colorconv.Vec2{{0.701180591891983, 0.329013699115539}, {0.300600395529389, 0.683788824257266}, {0.145331946228869, 0.051616803622619}}},
	{"DRAGONcolor", [3]colorconv.Vec2{{0.758656334663880, 0.330355699156547}, {0.294938071408519, 0.708079540207147}, {0.111260344267764, 0.020483383163611}}},
	{"DRAGONcolor2", [3]colorconv.Vec2{{0.758656334663880, 0.330355699156547}, {0.294938071408519, 0.708079540207147}, {0.144127305805131, 0.050331606491240}}},
}

var aliases = map[string]string{
	"aces":     "ACES2065-1",
	"ap0":      "ACES2065-1",
	"ap1":      "ACEScg",
	"srgb":     "sRGB",
	"rec709":   "ITU-R BT.709",
	"rec2020":  "ITU-R BT.2020",
	"prophoto": "ProPhoto RGB",
	"romm rgb": "ProPhoto RGB",
	"adobe":    "Adobe RGB (1998)",
	"p3":       "DCI-P3",
	"alexa":    "ALEXA Wide Gamut",
}

var registry = sync.OnceValue(func() map[string]*ColorSpace {
	wp := func(name string) colorconv.Vec2 {
		ans, err := datasets.Whitepoint(name)
		if err != nil {
			panic(err)
		}
		return ans
	}
	ans := make(map[string]*ColorSpace, 32)
	add := func(cs *ColorSpace, err error) {
		if err != nil {
			panic(err)
		}
		ans[cs.Name] = cs
	}
	derived := func(name string, primaries [3]colorconv.Vec2, white string, curve Curve) {
		add(New(name, primaries, white, wp(white), curve))
	}

	add(NewWithMatrices("sRGB", primariesBT709, "D65", wp("D65"),
		colorconv.Mat3{
			{3.2406, -1.5372, -0.4986},
			{-0.9689, 1.8758, 0.0415},
			{0.0557, -0.2040, 1.0570},
		},
		colorconv.Mat3{
			{0.4124, 0.3576, 0.1805},
			{0.2126, 0.7152, 0.0722},
			{0.0193, 0.1192, 0.9505},
		}, SRGBCurve{}), nil)
	derived("ITU-R BT.709", primariesBT709, "D65", BT709Curve)
	derived("ITU-R BT.2020", [3]colorconv.Vec2{{0.708, 0.292}, {0.170, 0.797}, {0.131, 0.046}}, "D65", BT2020Curve)

	add(NewWithMatrices("ALEXA Wide Gamut", [3]colorconv.Vec2{{0.6840, 0.3130}, {0.2210, 0.8480}, {0.0861, -0.1020}}, "D65", wp("D65"),
		colorconv.Mat3{
			{1.789066, -0.482534, -0.200076},
			{-0.639849, 1.396400, 0.194432},
			{-0.041532, 0.082335, 0.878868},
		},
		colorconv.Mat3{
			{0.638008, 0.214704, 0.097744},
			{0.291954, 0.823841, -0.115795},
			{0.002798, -0.067034, 1.153294},
		}, LogCv3Curve{}), nil)

	add(NewWithMatrices("ACES2065-1", primariesAP0, "ACES", wp("ACES"),
		colorconv.Mat3{
			{1.0498110175, 0.0000000000, -0.0000974845},
			{-0.4959030231, 1.3733130458, 0.0982400361},
			{0.0000000000, 0.0000000000, 0.9912520182},
		},
		colorconv.Mat3{
			{0.9525523959, 0.0000000000, 0.0000936786},
			{0.3439664498, 0.7281660966, -0.0721325464},
			{0.0000000000, 0.0000000000, 1.0088251844},
		}, LinearCurve{}), nil)
	derived("ACEScg", primariesAP1, "ACES", LinearCurve{})
	derived("ACEScc", primariesAP1, "ACES", ACESccCurve{})
	derived("ACEScct", primariesAP1, "ACES", ACEScctCurve{})
	derived("ACESproxy", primariesAP1, "ACES", ACESproxyCurve{})

	derived("DCI-P3", primariesP3, "DCI-P3", GammaCurve{2.6})
	derived("DCI-P3+", [3]colorconv.Vec2{{0.740, 0.270}, {0.220, 0.780}, {0.090, -0.090}}, "DCI-P3", GammaCurve{2.6})
	derived("P3-D65", primariesP3, "D65", GammaCurve{2.6})

	derived("ProPhoto RGB", [3]colorconv.Vec2{{0.7347, 0.2653}, {0.1596, 0.8404}, {0.0366, 0.0001}}, "D50", ROMMCurve{})
	derived("Beta RGB", [3]colorconv.Vec2{{0.6888, 0.3112}, {0.1986, 0.7551}, {0.1265, 0.0352}}, "D50", GammaCurve{2.2})
	derived("Sharp RGB", [3]colorconv.Vec2{{0.6898, 0.3206}, {0.0736, 0.9003}, {0.1166, 0.0374}}, "E", LinearCurve{})
	for _, r := range redPrimaries {
		derived(r.name, r.primaries, "D65", REDLogFilmCurve)
	}
	derived("Adobe RGB (1998)", [3]colorconv.Vec2{{0.64, 0.33}, {0.21, 0.71}, {0.15, 0.06}}, "D65", GammaCurve{563. / 256})
	return ans
})

// Names returns the names of all registered colour spaces, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(registry()))
}

// Get looks up a colour space by name or alias, ignoring case.
func Get(name string) (*ColorSpace, error) {
	r := registry()
	if cs, found := r[name]; found {
		return cs, nil
	}
	key := strings.ToLower(name)
	if canonical, found := aliases[key]; found {
		return r[canonical], nil
	}
	for k, cs := range r {
		if strings.ToLower(k) == key {
			return cs, nil
		}
	}
	return nil, fmt.Errorf("%w: %q, known colour spaces are: %s", ErrUnknownColorSpace, name, strings.Join(Names(), ", "))
}

// MustGet is Get for names known to be registered.
func MustGet(name string) *ColorSpace {
	cs, err := Get(name)
	if err != nil {
		panic(err)
	}
	return cs
}
