package services

import (
	"bytes"
	"errors"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
)

// ErrEmptyChart is returned when there is nothing to plot. Callers render
// no chart at all rather than a degenerate one.
var ErrEmptyChart = errors.New("no emotion counts to chart")

// RenderEmotionPieChart renders the aggregated emotion counts as a PNG pie
// chart. Slices are ordered by tag name so repeated renders of the same
// counts produce the same image.
func RenderEmotionPieChart(counts map[string]int) ([]byte, error) {
	if len(counts) == 0 {
		return nil, ErrEmptyChart
	}

	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	values := make([]chart.Value, 0, len(tags))
	for _, tag := range tags {
		values = append(values, chart.Value{
			Label: tag,
			Value: float64(counts[tag]),
		})
	}

	pie := chart.PieChart{
		Title:  "Emotion Overview",
		Width:  512,
		Height: 512,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
