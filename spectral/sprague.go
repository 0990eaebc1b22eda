package spectral

// Boundary coefficients used to pad the data with two samples on each side,
// see Westland, Ripamonti and Cheung, Computational Colour Science.
var spragueC = [4][6]float64{
	{884, -1960, 3033, -2648, 1080, -180},
	{508, -540, 488, -367, 144, -24},
	{-24, 144, -367, 488, -540, 508},
	{-180, 1080, -2648, 3033, -1960, 884},
}

type sprague struct {
	x, y []float64
}

// newSprague builds a fifth order Sprague interpolator over uniformly
// spaced samples. At least six samples are required.
func newSprague(samples []Sample) *sprague {
	n := len(samples)
	interval := samples[1].Nm - samples[0].Nm
	x := make([]float64, 0, n+4)
	y := make([]float64, 0, n+4)
	x = append(x, samples[0].Nm-2*interval, samples[0].Nm-interval)
	for _, s := range samples {
		x = append(x, s.Nm)
	}
	x = append(x, samples[n-1].Nm+interval, samples[n-1].Nm+2*interval)

	dot := func(c [6]float64, s []Sample) (ans float64) {
		for i := range 6 {
			ans += c[i] * s[i].V
		}
		return ans / 209
	}
	head, tail := samples[:6], samples[n-6:]
	y = append(y, dot(spragueC[0], head), dot(spragueC[1], head))
	for _, s := range samples {
		y = append(y, s.V)
	}
	y = append(y, dot(spragueC[2], tail), dot(spragueC[3], tail))
	return &sprague{x: x, y: y}
}

func (s *sprague) evaluate(nm float64) float64 {
	i := len(s.x)
	for k, t := range s.x {
		if nm < t {
			i = k
			break
		}
	}
	i = min(max(i-1, 2), len(s.x)-4)
	dx := (nm - s.x[i]) / (s.x[i+1] - s.x[i])
	r := s.y
	a0 := r[i]
	a1 := (2*r[i-2] - 16*r[i-1] + 16*r[i+1] - 2*r[i+2]) / 24
	a2 := (-r[i-2] + 16*r[i-1] - 30*r[i] + 16*r[i+1] - r[i+2]) / 24
	a3 := (-9*r[i-2] + 39*r[i-1] - 70*r[i] + 66*r[i+1] - 33*r[i+2] + 7*r[i+3]) / 24
	a4 := (13*r[i-2] - 64*r[i-1] + 126*r[i] - 124*r[i+1] + 61*r[i+2] - 12*r[i+3]) / 24
	a5 := (-5*r[i-2] + 25*r[i-1] - 50*r[i] + 50*r[i+1] - 25*r[i+2] + 5*r[i+3]) / 24
	return a0 + dx*(a1+dx*(a2+dx*(a3+dx*(a4+dx*a5))))
}
