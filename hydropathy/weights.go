package hydropathy

import "gonum.org/v1/gonum/floats"

// GenerateWeights builds the per-offset weight vector for one window. The
// vector has exactly windowSize entries, rises from edgeWeight at both ends
// to CenterWeight at the middle index, and is symmetric about it.
//
// The rising half holds windowSize/2+1 values interpolated from edgeWeight
// to CenterWeight: evenly spaced for ModelLinear, geometrically spaced
// (equal ratio steps) for ModelExponential. The falling half mirrors it
// without repeating the center value.
//
// Callers must hand in an odd windowSize >= 3 and a positive edgeWeight;
// that invariant is enforced at the Config boundary, not here.
func GenerateWeights(windowSize int, edgeWeight float64, model Model) []float64 {
	half := windowSize / 2

	weights := make([]float64, windowSize)
	rising := weights[:half+1]
	switch model {
	case ModelExponential:
		floats.LogSpan(rising, edgeWeight, CenterWeight)
	default:
		floats.Span(rising, edgeWeight, CenterWeight)
	}
	for i := 0; i < half; i++ {
		weights[windowSize-1-i] = weights[i]
	}
	return weights
}
