package services

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
)

// RenderMacroChart draws the macro distribution pie as a PNG.
// When the profile is absent or sums to zero there is nothing to draw and
// it returns (nil, nil) — the skip is silent, not an error.
func RenderMacroChart(profile MacroProfile, present bool) ([]byte, error) {
	if !present || profile.Total() == 0 {
		return nil, nil
	}

	total := float64(profile.Total())
	slice := func(label string, grams int) chart.Value {
		return chart.Value{
			Value: float64(grams),
			Label: fmt.Sprintf("%s %.1f%%", label, float64(grams)*100/total),
		}
	}

	pie := chart.PieChart{
		Title:  "Macronutrient Distribution",
		Width:  512,
		Height: 512,
		Values: []chart.Value{
			slice("Protein", profile.Protein),
			slice("Carbs", profile.Carbs),
			slice("Fat", profile.Fat),
		},
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render macro chart: %w", err)
	}
	return buf.Bytes(), nil
}
