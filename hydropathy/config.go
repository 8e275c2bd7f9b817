package hydropathy

import (
	"fmt"
	"strings"
)

// Model selects how weights vary from the window's edge to its center.
type Model int

const (
	// ModelLinear interpolates evenly between edge and center weight.
	ModelLinear Model = iota
	// ModelExponential interpolates geometrically (equal ratio steps).
	ModelExponential
)

func (m Model) String() string {
	switch m {
	case ModelLinear:
		return "linear"
	case ModelExponential:
		return "exponential"
	}
	return fmt.Sprintf("Model(%d)", int(m))
}

// ParseModel converts a user-supplied model name into a Model.
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return ModelLinear, nil
	case "exponential":
		return ModelExponential, nil
	}
	return 0, &InvalidConfigError{Reason: fmt.Sprintf("unknown model %q (want linear or exponential)", s)}
}

// CenterWeight is the fixed weight at the middle of every window.
const CenterWeight = 100.0

// Bounds accepted by the configuration surface.
const (
	MinWindowSize = 3
	MaxWindowSize = 21
	MinEdgeWeight = 1.0
	MaxEdgeWeight = 100.0
)

// Config holds the parameters of one profile computation. Construct it
// through NewConfig so invalid combinations are rejected before any
// window is scored.
type Config struct {
	WindowSize int
	EdgeWeight float64
	Model      Model
}

// NewConfig validates and returns a window configuration.
func NewConfig(windowSize int, edgeWeight float64, model Model) (Config, error) {
	cfg := Config{WindowSize: windowSize, EdgeWeight: edgeWeight, Model: model}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants: an odd window size within
// bounds and a positive edge weight. Even sizes have no single center
// offset and are rejected outright rather than silently producing an
// asymmetric window.
func (c Config) Validate() error {
	if c.WindowSize < MinWindowSize || c.WindowSize > MaxWindowSize {
		return &InvalidConfigError{Reason: fmt.Sprintf("window size %d out of range [%d, %d]", c.WindowSize, MinWindowSize, MaxWindowSize)}
	}
	if c.WindowSize%2 == 0 {
		return &InvalidConfigError{Reason: fmt.Sprintf("window size %d is even; the window needs a single center residue", c.WindowSize)}
	}
	if c.EdgeWeight < MinEdgeWeight || c.EdgeWeight > MaxEdgeWeight {
		return &InvalidConfigError{Reason: fmt.Sprintf("edge weight %g out of range [%g, %g]", c.EdgeWeight, MinEdgeWeight, MaxEdgeWeight)}
	}
	if c.Model != ModelLinear && c.Model != ModelExponential {
		return &InvalidConfigError{Reason: fmt.Sprintf("unknown model %d", int(c.Model))}
	}
	return nil
}
