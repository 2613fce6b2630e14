package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/models"
)

const dashboardCacheKey = "dashboard:summary"

// DashboardCacheRepository caches the dashboard summary in Redis
type DashboardCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached summary
}

// NewDashboardCacheRepository creates a new repository instance with the given TTL
func NewDashboardCacheRepository(client *redis.Client, expiration time.Duration) *DashboardCacheRepository {
	return &DashboardCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetSummary fetches the cached dashboard summary, if present.
func (r *DashboardCacheRepository) GetSummary(ctx context.Context) (*models.DashboardSummary, error) {
	val, err := r.client.Get(ctx, dashboardCacheKey).Result()
	if err != nil {
		logger.Log.Debugw("dashboard cache miss",
			"key", dashboardCacheKey,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("dashboard summary not found in cache")
		}
		return nil, err
	}

	var summary models.DashboardSummary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		logger.Log.Errorw("failed to decode cached dashboard summary",
			"key", dashboardCacheKey,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Debugw("dashboard cache hit", "key", dashboardCacheKey)

	return &summary, nil
}

// SetSummary caches a dashboard summary with the configured expiration.
func (r *DashboardCacheRepository) SetSummary(ctx context.Context, summary *models.DashboardSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, dashboardCacheKey, data, r.exp).Err()

	logger.Log.Debugw("dashboard cache set",
		"key", dashboardCacheKey,
		"ttl", r.exp,
		"error", err,
	)

	return err
}
