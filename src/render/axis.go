package render

import (
	"math"
	"strconv"
)

// ComputeFigureDimensions clamps a requested figure width and derives the height from
// the layout's aspect ratio (height/width).
func ComputeFigureDimensions(rawW int, aspect float64) (int, int) {
	w := rawW
	if w < 640 {
		w = 640
	}
	if w > 3600 {
		w = 3600
	}
	if aspect <= 0 {
		aspect = 0.7
	}
	h := int(math.Round(float64(w) * aspect))
	if h < 360 {
		h = 360
	}
	return w, h
}

// BuildNumericTicks generates up to n tick marks spanning [min,max] on a 1, 2, 2.5, 5
// step pattern. Ticks past max are dropped so fixed axis ranges stay fixed.
func BuildNumericTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := pow10Floor(span / float64(n-1))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Floor(span/step) + 1
		if count < 2 {
			count = 2
		}
		diff := math.Abs(count - float64(n))
		if diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	start := math.Ceil(min/bestStep) * bestStep
	var out []float64
	for v := start; v <= max+bestStep*1e-9; v += bestStep {
		out = append(out, round6(v))
	}
	if len(out) < 2 {
		out = []float64{min, max}
	}
	return out
}

// pow10Floor returns 10^floor(log10(x)) safeguarding tiny values.
func pow10Floor(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Pow(10, math.Floor(math.Log10(x)))
}

func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// FormatNumericTick provides a compact tick label: counts print as integers, small
// fractions keep a few decimals.
func FormatNumericTick(v float64) string {
	av := math.Abs(v)
	switch {
	case av == math.Trunc(av) || av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case av >= 0.01:
		return strconv.FormatFloat(v, 'f', 3, 64)
	default:
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
}
