// Package hydropathy computes positional hydropathy profiles for linear
// protein sequences using a sliding, center-weighted window.
package hydropathy

// Scale maps a single-letter amino acid code to its hydropathy score.
type Scale map[byte]float64

// KyteDoolittle is the standard Kyte-Doolittle hydropathy scale covering
// the 20 non-ambiguous amino acids. Positive values are hydrophobic,
// negative values hydrophilic.
var KyteDoolittle = Scale{
	'G': -0.4,
	'A': +1.8,
	'V': +4.2,
	'L': +3.8,
	'I': +4.5,
	'P': -1.6,
	'C': +2.5,
	'M': +1.9,
	'S': -0.8,
	'T': -0.7,
	'N': -3.5,
	'Q': -3.5,
	'F': +2.8,
	'Y': -1.3,
	'W': -0.9,
	'D': -3.5,
	'E': -3.5,
	'K': -3.9,
	'R': -4.5,
	'H': -3.2,
}

// Contains reports whether code is part of the scale's alphabet.
func (s Scale) Contains(code byte) bool {
	_, ok := s[code]
	return ok
}
