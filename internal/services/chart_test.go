package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderEmotionPieChartProducesPNG(t *testing.T) {
	png, err := RenderEmotionPieChart(map[string]int{"happy": 2, "calm": 1})
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestRenderEmotionPieChartEmptyCounts(t *testing.T) {
	png, err := RenderEmotionPieChart(map[string]int{})
	assert.ErrorIs(t, err, ErrEmptyChart)
	assert.Nil(t, png)

	png, err = RenderEmotionPieChart(nil)
	assert.ErrorIs(t, err, ErrEmptyChart)
	assert.Nil(t, png)
}

func TestRenderEmotionPieChartDeterministic(t *testing.T) {
	counts := map[string]int{"happy": 3, "calm": 2, "tired": 1}

	first, err := RenderEmotionPieChart(counts)
	require.NoError(t, err)
	second, err := RenderEmotionPieChart(counts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
