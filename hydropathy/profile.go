package hydropathy

import "errors"

// Profile is the result of sliding a window across a sequence.
// Positions[i] is the 0-indexed center residue scored by Values[i].
type Profile struct {
	Positions []int
	Values    []float64
}

// Len returns the number of scored positions.
func (p Profile) Len() int { return len(p.Positions) }

// Empty reports whether the profile holds no positions. A sequence shorter
// than the window produces an empty profile, which is a valid result.
func (p Profile) Empty() bool { return len(p.Positions) == 0 }

// BuildProfile slides the configured window across seq and scores every
// position that admits a full window, i.e. centers in
// [windowSize/2, len(seq)-windowSize/2). The leading and trailing half
// windows are excluded entirely; there is no padding and no partial
// window.
//
// The weight vector depends only on the configuration, so it is computed
// once and shared across the whole scan. Scoring uses the Kyte-Doolittle
// scale. On an UnknownResidueError the whole computation fails and no
// partial profile is returned; the error's Position is translated to an
// absolute index into seq.
func BuildProfile(seq string, cfg Config) (Profile, error) {
	if err := cfg.Validate(); err != nil {
		return Profile{}, err
	}

	half := cfg.WindowSize / 2
	n := len(seq) - 2*half
	if n <= 0 {
		return Profile{}, nil
	}

	weights := GenerateWeights(cfg.WindowSize, cfg.EdgeWeight, cfg.Model)
	prof := Profile{
		Positions: make([]int, 0, n),
		Values:    make([]float64, 0, n),
	}
	for p := half; p < len(seq)-half; p++ {
		value, err := ScoreWindow(seq[p-half:p+half+1], weights, KyteDoolittle)
		if err != nil {
			var unknown *UnknownResidueError
			if errors.As(err, &unknown) {
				return Profile{}, &UnknownResidueError{
					Symbol:   unknown.Symbol,
					Position: p - half + unknown.Position,
				}
			}
			return Profile{}, err
		}
		prof.Positions = append(prof.Positions, p)
		prof.Values = append(prof.Values, value)
	}
	return prof, nil
}
