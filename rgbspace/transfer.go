package rgbspace

import (
	"fmt"
	"math"
)

// Curve is a per channel transfer function. Encode maps scene linear values
// to the non-linear encoding of a colour space and Decode reverses it.
// Values outside the domain of a logarithm or a fractional power yield NaN,
// exactly as the underlying math functions do.
type Curve interface {
	Encode(x float64) float64
	Decode(x float64) float64
	String() string
}

type LinearCurve struct{}

// GammaCurve encodes with x^(1/Gamma).
type GammaCurve struct{ Gamma float64 }

type SRGBCurve struct{}

// Rec709Curve is the ITU-R BT.709 / BT.2020 OETF family:
// Alpha·x^0.45 − (Alpha−1) above Beta, 4.5·x below.
type Rec709Curve struct{ Alpha, Beta float64 }

// ROMMCurve is the ROMM RGB (ProPhoto) encoding for floating point data.
type ROMMCurve struct{}

// LogCv3Curve is ARRI ALEXA LogC v3 at EI 800.
type LogCv3Curve struct{}

type ACESccCurve struct{}
type ACEScctCurve struct{}

// ACESproxyCurve is the 10 bit ACESproxy encoding, producing code values
// normalised to [0, 1].
type ACESproxyCurve struct{}

// CineonCurve is the Kodak Cineon log encoding with a configurable black
// offset. REDLogFilm is Cineon with the default black offset.
type CineonCurve struct{ BlackOffset float64 }

var _ Curve = LinearCurve{}
var _ Curve = GammaCurve{}
var _ Curve = SRGBCurve{}
var _ Curve = Rec709Curve{}
var _ Curve = ROMMCurve{}
var _ Curve = LogCv3Curve{}
var _ Curve = ACESccCurve{}
var _ Curve = ACEScctCurve{}
var _ Curve = ACESproxyCurve{}
var _ Curve = CineonCurve{}

var (
	BT709Curve       = Rec709Curve{Alpha: 1.099, Beta: 0.018}
	BT2020Curve      = Rec709Curve{Alpha: 1.099, Beta: 0.018}
	BT2020Curve12Bit = Rec709Curve{Alpha: 1.0993, Beta: 0.0181}
	REDLogFilmCurve  = CineonCurve{BlackOffset: math.Pow(10, (95-685)/300.)}
)

func (LinearCurve) Encode(x float64) float64 { return x }
func (LinearCurve) Decode(x float64) float64 { return x }
func (LinearCurve) String() string           { return "Linear" }

func (c GammaCurve) Encode(x float64) float64 { return math.Pow(x, 1/c.Gamma) }
func (c GammaCurve) Decode(x float64) float64 { return math.Pow(x, c.Gamma) }
func (c GammaCurve) String() string           { return fmt.Sprintf("Gamma(%g)", c.Gamma) }

func (SRGBCurve) Encode(x float64) float64 {
	if x <= 0.0031308 {
		return x * 12.92
	}
	return 1.055*math.Pow(x, 1/2.4) - 0.055
}

func (SRGBCurve) Decode(x float64) float64 {
	if x <= 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

func (SRGBCurve) String() string { return "sRGB" }

func (c Rec709Curve) Encode(x float64) float64 {
	if x < c.Beta {
		return x * 4.5
	}
	return c.Alpha*math.Pow(x, 0.45) - (c.Alpha - 1)
}

func (c Rec709Curve) Decode(x float64) float64 {
	if x < c.Beta*4.5 {
		return x / 4.5
	}
	return math.Pow((x+(c.Alpha-1))/c.Alpha, 1/0.45)
}

func (c Rec709Curve) String() string { return fmt.Sprintf("Rec709(α=%g, β=%g)", c.Alpha, c.Beta) }

const (
	rommGamma = 1.8
	// 16^(1.8/(1-1.8)), the end of the linear segment
	rommThreshold = 1. / 512
)

func (ROMMCurve) Encode(x float64) float64 {
	if x < rommThreshold {
		return x * 16
	}
	return math.Pow(x, 1/rommGamma)
}

func (ROMMCurve) Decode(x float64) float64 {
	if x < 16*rommThreshold {
		return x / 16
	}
	return math.Pow(x, rommGamma)
}

func (ROMMCurve) String() string { return "ROMM RGB" }

// LogC v3 parameters for EI 800
const (
	logcCut = 0.010591
	logcA   = 5.555556
	logcB   = 0.052272
	logcC   = 0.247190
	logcD   = 0.385537
	logcE   = 5.367655
	logcF   = 0.092809
)

func (LogCv3Curve) Encode(x float64) float64 {
	if x > logcCut {
		return logcC*math.Log10(logcA*x+logcB) + logcD
	}
	return logcE*x + logcF
}

func (LogCv3Curve) Decode(t float64) float64 {
	if t > logcE*logcCut+logcF {
		return (math.Pow(10, (t-logcD)/logcC) - logcB) / logcA
	}
	return (t - logcF) / logcE
}

func (LogCv3Curve) String() string { return "ARRI LogC v3 (EI 800)" }

const (
	acesLogOffset = 9.72
	acesLogScale  = 17.52
	// largest finite half float
	acesHalfMax = 65504
)

func (ACESccCurve) Encode(x float64) float64 {
	switch {
	case x < 0:
		return (-16 + acesLogOffset) / acesLogScale
	case x < 1./(1<<15):
		return (math.Log2(1./(1<<16)+x*0.5) + acesLogOffset) / acesLogScale
	}
	return (math.Log2(x) + acesLogOffset) / acesLogScale
}

func (ACESccCurve) Decode(y float64) float64 {
	switch {
	case y < (acesLogOffset-15)/acesLogScale:
		return (math.Exp2(y*acesLogScale-acesLogOffset) - 1./(1<<16)) * 2
	case y >= (math.Log2(acesHalfMax)+acesLogOffset)/acesLogScale:
		return acesHalfMax
	}
	return math.Exp2(y*acesLogScale - acesLogOffset)
}

func (ACESccCurve) String() string { return "ACEScc" }

const (
	acescctXBreak = 0.0078125
	acescctYBreak = 0.155251141552511
	acescctA      = 10.5402377416545
	acescctB      = 0.0729055341958355
)

func (ACEScctCurve) Encode(x float64) float64 {
	if x <= acescctXBreak {
		return acescctA*x + acescctB
	}
	return (math.Log2(x) + acesLogOffset) / acesLogScale
}

func (ACEScctCurve) Decode(y float64) float64 {
	if y <= acescctYBreak {
		return (y - acescctB) / acescctA
	}
	return math.Exp2(y*acesLogScale - acesLogOffset)
}

func (ACEScctCurve) String() string { return "ACEScct" }

const (
	proxyCVMin         = 64
	proxyCVMax         = 940
	proxyStepsPerStop  = 50
	proxyMidCVOffset   = 425
	proxyMidLogOffset  = 2.5
	proxyCodeValueMax  = 1023
	proxyLinearMinimum = -9.72
)

func (ACESproxyCurve) Encode(x float64) float64 {
	cv := float64(proxyCVMin)
	if x > math.Exp2(proxyLinearMinimum) {
		cv = math.RoundToEven((math.Log2(x)+proxyMidLogOffset)*proxyStepsPerStop + proxyMidCVOffset)
		cv = max(proxyCVMin, min(proxyCVMax, cv))
	}
	return cv / proxyCodeValueMax
}

func (ACESproxyCurve) Decode(y float64) float64 {
	return math.Exp2((y*proxyCodeValueMax-proxyMidCVOffset)/proxyStepsPerStop - proxyMidLogOffset)
}

func (ACESproxyCurve) String() string { return "ACESproxy 10-bit" }

func (c CineonCurve) Encode(x float64) float64 {
	return (685 + 300*math.Log10(x*(1-c.BlackOffset)+c.BlackOffset)) / 1023
}

func (c CineonCurve) Decode(y float64) float64 {
	return (math.Pow(10, (1023*y-685)/300) - c.BlackOffset) / (1 - c.BlackOffset)
}

func (c CineonCurve) String() string { return fmt.Sprintf("Cineon(black offset=%g)", c.BlackOffset) }
