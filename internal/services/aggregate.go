package services

import "github.com/mindhaven/mindhaven-backend/internal/models"

// AggregateEmotions counts how often each emotion tag appears across the
// given mood logs. Accumulation is commutative, so iteration order never
// changes the result. An empty log set yields an empty map, and callers
// must skip chart rendering in that case.
func AggregateEmotions(logs []models.MoodLog) map[string]int {
	counts := make(map[string]int)
	for _, logEntry := range logs {
		for _, emotion := range logEntry.Emotions {
			if emotion == "" {
				continue
			}
			counts[emotion]++
		}
	}
	return counts
}
