package hydropathy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustConfig(t *testing.T, window int, edge float64, model Model) Config {
	t.Helper()
	cfg, err := NewConfig(window, edge, model)
	require.NoError(t, err)
	return cfg
}

func TestBuildProfileGAVLI(t *testing.T) {
	cfg := mustConfig(t, 3, 100, ModelLinear)
	prof, err := BuildProfile("GAVLI", cfg)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, prof.Positions)
	require.Len(t, prof.Values, 3)
	// average(G, A, V) = average(-0.4, 1.8, 4.2)
	assert.Equal(t, 1.867, prof.Values[0])
	// average(A, V, L)
	assert.Equal(t, 3.267, prof.Values[1])
	// average(V, L, I)
	assert.Equal(t, 4.167, prof.Values[2])
}

func TestBuildProfileLength(t *testing.T) {
	seq := "MKTAYIAKQRQISFVKSHFSRQLEERLGLIEVQ"
	tests := []struct {
		window  int
		wantLen int
	}{
		{3, len(seq) - 2},
		{7, len(seq) - 6},
		{21, len(seq) - 20},
	}
	for _, tc := range tests {
		cfg := mustConfig(t, tc.window, 100, ModelLinear)
		prof, err := BuildProfile(seq, cfg)
		require.NoError(t, err)
		assert.Equal(t, tc.wantLen, prof.Len(), "window=%d", tc.window)
		// Valid centers span [half, len-half).
		half := tc.window / 2
		assert.Equal(t, half, prof.Positions[0])
		assert.Equal(t, len(seq)-half-1, prof.Positions[prof.Len()-1])
	}
}

func TestBuildProfileShortSequence(t *testing.T) {
	cfg := mustConfig(t, 7, 100, ModelLinear)
	prof, err := BuildProfile("GAV", cfg)
	require.NoError(t, err)
	assert.True(t, prof.Empty())

	// A sequence exactly one shorter than the window is still empty.
	prof, err = BuildProfile("GAVLIP", cfg)
	require.NoError(t, err)
	assert.True(t, prof.Empty())
}

func TestBuildProfileUnknownResidue(t *testing.T) {
	cfg := mustConfig(t, 3, 100, ModelLinear)
	prof, err := BuildProfile("GAVXLI", cfg)
	var unknown *UnknownResidueError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, byte('X'), unknown.Symbol)
	assert.Equal(t, 3, unknown.Position) // absolute index into the sequence
	assert.True(t, prof.Empty(), "no partial profile on failure")
}

func TestBuildProfileUnknownResidueOutsideValidWindows(t *testing.T) {
	// An out-of-alphabet symbol is only an error if a scored window covers
	// it. This sequence is shorter than the window, so nothing is scored
	// and the bad symbol is never reached.
	cfg := mustConfig(t, 7, 100, ModelLinear)
	prof, err := BuildProfile("XGAVLI", cfg)
	require.NoError(t, err)
	assert.True(t, prof.Empty())
}

func TestBuildProfileDeterministic(t *testing.T) {
	seq := "MKTAYIAKQRQISFVKSHFSRQLEERLGLIEVQ"
	cfg := mustConfig(t, 9, 13, ModelExponential)
	a, err := BuildProfile(seq, cfg)
	require.NoError(t, err)
	b, err := BuildProfile(seq, cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildProfileRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		window int
		edge   float64
		model  Model
	}{
		{"even window", 4, 100, ModelLinear},
		{"window too small", 1, 100, ModelLinear},
		{"window too large", 23, 100, ModelLinear},
		{"edge weight zero", 7, 0, ModelExponential},
		{"edge weight negative", 7, -5, ModelLinear},
		{"edge weight too large", 7, 250, ModelLinear},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConfig(tc.window, tc.edge, tc.model)
			var invalid *InvalidConfigError
			assert.ErrorAs(t, err, &invalid)

			_, err = BuildProfile("GAVLI", Config{WindowSize: tc.window, EdgeWeight: tc.edge, Model: tc.model})
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestParseModel(t *testing.T) {
	m, err := ParseModel("linear")
	require.NoError(t, err)
	assert.Equal(t, ModelLinear, m)

	m, err = ParseModel(" Exponential ")
	require.NoError(t, err)
	assert.Equal(t, ModelExponential, m)

	_, err = ParseModel("quadratic")
	assert.Error(t, err)
}
