package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/mindhaven/mindhaven-backend/internal/database"
)

const (
	// EmotionCacheKeyPrefix is the Redis key prefix for cached aggregations
	EmotionCacheKeyPrefix = "emotion_counts:"
	// EmotionCacheTTL bounds how stale a cached aggregation can get even
	// if an invalidation is missed.
	EmotionCacheTTL = 6 * time.Hour
)

// GetCachedEmotionCounts returns the cached aggregation for a user, if any.
// A cache miss or decode failure is not an error; callers recompute.
func GetCachedEmotionCounts(userID uuid.UUID) (map[string]int, bool) {
	ctx := context.Background()
	key := EmotionCacheKeyPrefix + userID.String()

	val, err := database.RedisClient.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}

	var counts map[string]int
	if err := json.Unmarshal([]byte(val), &counts); err != nil {
		return nil, false
	}

	return counts, true
}

// SetCachedEmotionCounts stores a user's aggregation. Failures are ignored;
// the cache is an optimization, never the source of truth.
func SetCachedEmotionCounts(userID uuid.UUID, counts map[string]int) {
	ctx := context.Background()
	key := EmotionCacheKeyPrefix + userID.String()

	jsonData, err := json.Marshal(counts)
	if err != nil {
		return
	}

	database.RedisClient.Set(ctx, key, jsonData, EmotionCacheTTL)
}

// InvalidateEmotionCounts drops a user's cached aggregation. Called on every
// mood log create and delete.
func InvalidateEmotionCounts(userID uuid.UUID) {
	ctx := context.Background()
	database.RedisClient.Del(ctx, EmotionCacheKeyPrefix+userID.String())
}
