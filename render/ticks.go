package render

import (
	"math"

	"gonum.org/v1/plot"
)

// MinorTicks decorates the default tick marks with unlabeled minor ticks
// at a fixed interval. gonum/plot draws ticks without labels as minor
// ticks, which gives the fine gridlines the chart calls for.
type MinorTicks struct {
	Step float64
}

func (t MinorTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	if t.Step <= 0 {
		return ticks
	}

	const eps = 1e-9
	major := make(map[int64]bool, len(ticks))
	for _, tk := range ticks {
		major[int64(math.Round(tk.Value/t.Step))] = true
	}
	for v := math.Ceil(min/t.Step) * t.Step; v <= max+eps; v += t.Step {
		if major[int64(math.Round(v/t.Step))] {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v})
	}
	return ticks
}
