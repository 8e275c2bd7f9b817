package hydropathy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ScoreWindow computes the weighted average hydropathy of one window-sized
// segment, rounded to 3 decimal places. It is a pure function of its
// inputs.
//
// This is the sole alphabet checkpoint: any symbol absent from the scale
// fails with an UnknownResidueError (Position relative to the segment)
// instead of being scored as zero.
func ScoreWindow(segment string, weights []float64, scale Scale) (float64, error) {
	if len(segment) != len(weights) {
		return 0, fmt.Errorf("segment length %d does not match weight vector length %d", len(segment), len(weights))
	}
	var sum float64
	for i := 0; i < len(segment); i++ {
		score, ok := scale[segment[i]]
		if !ok {
			return 0, &UnknownResidueError{Symbol: segment[i], Position: i}
		}
		sum += score * weights[i]
	}
	return round3(sum / floats.Sum(weights)), nil
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
