package hydropathy

import "fmt"

// UnknownResidueError indicates that a symbol outside the scale's alphabet
// appeared inside a scored window. Position is 0-indexed into the sequence
// (or segment) that was being scored.
type UnknownResidueError struct {
	Symbol   byte
	Position int
}

func (e *UnknownResidueError) Error() string {
	return fmt.Sprintf("unknown amino acid code %q at position %d", string(e.Symbol), e.Position)
}

// InvalidConfigError indicates a window configuration that the profile
// builder refuses to operate on.
type InvalidConfigError struct {
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return "invalid window configuration: " + e.Reason
}
