package sanity_check

import (
	"fmt"
	"os"

	"hydroplot/config"
	"hydroplot/hydropathy"
)

// Run performs a simple sanity check: it scores the known GAVLI sequence
// with a degenerate window (edge weight = center weight) and compares the
// result against the hand-computed values.
func Run(args []string) {
	fmt.Printf("Running hydroplot self-test (%s)\n", config.Main_version)

	cfg, err := hydropathy.NewConfig(3, 100, hydropathy.ModelLinear)
	if err != nil {
		fmt.Fprintln(os.Stderr, "FAIL: configuration rejected:", err)
		os.Exit(1)
	}

	prof, err := hydropathy.BuildProfile("GAVLI", cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "FAIL: profile computation failed:", err)
		os.Exit(1)
	}

	wantPositions := []int{1, 2, 3}
	wantValues := []float64{1.867, 3.267, 4.167}
	if prof.Len() != len(wantPositions) {
		fmt.Fprintf(os.Stderr, "FAIL: expected %d positions, got %d\n", len(wantPositions), prof.Len())
		os.Exit(1)
	}
	for i := range wantPositions {
		if prof.Positions[i] != wantPositions[i] || prof.Values[i] != wantValues[i] {
			fmt.Fprintf(os.Stderr, "FAIL: position %d: got (%d, %g), want (%d, %g)\n",
				i, prof.Positions[i], prof.Values[i], wantPositions[i], wantValues[i])
			os.Exit(1)
		}
	}

	fmt.Println("PASS: GAVLI profile matches the reference values")
}
