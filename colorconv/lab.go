package colorconv

import (
	"math"
)

const labDelta = 6.0 / 29.0

func finv(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return 3 * labDelta * labDelta * (t - 4.0/29.0)
}

func ff(t float64) float64 {
	if t > labDelta*labDelta*labDelta {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}

// XYZToLab converts XYZ into CIELAB relative to white. Both must use the
// same scale, i.e. either both have Y in [0,1] or both in [0,100].
func XYZToLab(xyz, white Vec3) Vec3 {
	fx := ff(xyz[0] / white[0])
	fy := ff(xyz[1] / white[1])
	fz := ff(xyz[2] / white[2])
	return Vec3{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

// LabToXYZ is the inverse of XYZToLab.
func LabToXYZ(lab, white Vec3) Vec3 {
	fy := (lab[0] + 16) / 116
	fx := fy + lab[1]/500
	fz := fy - lab[2]/200
	return Vec3{finv(fx) * white[0], finv(fy) * white[1], finv(fz) * white[2]}
}

// DeltaE1976 is the Euclidean distance between two CIELAB colors.
func DeltaE1976(a, b Vec3) float64 {
	d := a.Sub(b)
	return math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
}

func deg(rad float64) float64 { return rad * 180 / math.Pi }
func rad(deg float64) float64 { return deg * math.Pi / 180 }

// DeltaE2000 implements the CIEDE2000 color difference with unit weighting
// factors, following Sharma, Wu and Dalal (2005).
func DeltaE2000(lab1, lab2 Vec3) float64 {
	L1, a1, b1 := lab1[0], lab1[1], lab1[2]
	L2, a2, b2 := lab2[0], lab2[1], lab2[2]

	c1 := math.Hypot(a1, b1)
	c2 := math.Hypot(a2, b2)
	cbar7 := math.Pow((c1+c2)/2, 7)
	g := 0.5 * (1 - math.Sqrt(cbar7/(cbar7+math.Pow(25, 7))))

	a1p, a2p := (1+g)*a1, (1+g)*a2
	c1p, c2p := math.Hypot(a1p, b1), math.Hypot(a2p, b2)

	hue := func(b, ap float64) float64 {
		if b == 0 && ap == 0 {
			return 0
		}
		h := deg(math.Atan2(b, ap))
		if h < 0 {
			h += 360
		}
		return h
	}
	h1p, h2p := hue(b1, a1p), hue(b2, a2p)

	dLp := L2 - L1
	dCp := c2p - c1p
	var dhp float64
	if c1p*c2p != 0 {
		dhp = h2p - h1p
		switch {
		case dhp > 180:
			dhp -= 360
		case dhp < -180:
			dhp += 360
		}
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(rad(dhp/2))

	Lbp := (L1 + L2) / 2
	Cbp := (c1p + c2p) / 2
	hbp := h1p + h2p
	if c1p*c2p != 0 {
		switch {
		case math.Abs(h1p-h2p) <= 180:
			hbp /= 2
		case h1p+h2p < 360:
			hbp = (hbp + 360) / 2
		default:
			hbp = (hbp - 360) / 2
		}
	}

	t := 1 - 0.17*math.Cos(rad(hbp-30)) + 0.24*math.Cos(rad(2*hbp)) +
		0.32*math.Cos(rad(3*hbp+6)) - 0.20*math.Cos(rad(4*hbp-63))
	dTheta := 30 * math.Exp(-((hbp-275)/25)*((hbp-275)/25))
	cbp7 := math.Pow(Cbp, 7)
	rc := 2 * math.Sqrt(cbp7/(cbp7+math.Pow(25, 7)))
	l50 := (Lbp - 50) * (Lbp - 50)
	sl := 1 + 0.015*l50/math.Sqrt(20+l50)
	sc := 1 + 0.045*Cbp
	sh := 1 + 0.015*Cbp*t
	rt := -math.Sin(rad(2*dTheta)) * rc

	tl, tc, th := dLp/sl, dCp/sc, dHp/sh
	return math.Sqrt(tl*tl + tc*tc + th*th + rt*tc*th)
}
