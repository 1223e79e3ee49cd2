package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderMacroChart(t *testing.T) {
	png, err := RenderMacroChart(MacroProfile{Protein: 30, Carbs: 20, Fat: 10}, true)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, pngMagic, png[:4])
}

func TestRenderMacroChartAbsentProfile(t *testing.T) {
	png, err := RenderMacroChart(MacroProfile{}, false)
	require.NoError(t, err)
	assert.Nil(t, png)
}

func TestRenderMacroChartZeroSum(t *testing.T) {
	png, err := RenderMacroChart(MacroProfile{Protein: 0, Carbs: 0, Fat: 0}, true)
	require.NoError(t, err)
	assert.Nil(t, png)
}

func TestRenderMacroChartSingleMacro(t *testing.T) {
	// two zero slices, one full one; still a drawable chart
	png, err := RenderMacroChart(MacroProfile{Protein: 0, Carbs: 0, Fat: 25}, true)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, pngMagic, png[:4])
}
