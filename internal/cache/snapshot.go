package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"casedesk.app/voicelink/common/logger"
	"casedesk.app/voicelink/internal/model"
)

// SnapshotCache keeps the last successful upstream listing in redis so a
// degraded upstream still yields a displayable (if stale) report list. It is
// deliberately separate from the local reports table: the webhook write path
// and the listing read path are not unified.
type SnapshotCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewSnapshotCache(client *redis.Client, key string, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{client: client, key: key, ttl: ttl}
}

// Put stores the listing snapshot. Called after every successful live fetch.
func (c *SnapshotCache) Put(ctx context.Context, reports []model.Report) error {
	data, err := json.Marshal(reports)
	if err != nil {
		return fmt.Errorf("marshaling report snapshot: %w", err)
	}
	if err := c.client.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("storing report snapshot: %w", err)
	}
	return nil
}

// Reports returns the cached snapshot retagged as fallback data, or an empty
// list when there is no snapshot or redis is unreachable. Best-effort by
// contract: an empty fallback list is a valid, displayable state.
func (c *SnapshotCache) Reports(ctx context.Context) []model.Report {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "voicelink.cache.snapshot"})

	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "report snapshot unavailable", "error", err)
		}
		return []model.Report{}
	}

	var reports []model.Report
	if err := json.Unmarshal(data, &reports); err != nil {
		slog.WarnContext(ctx, "report snapshot corrupt, ignoring", "error", err)
		return []model.Report{}
	}

	for i := range reports {
		reports[i].Source = model.SourceFallback
	}
	return reports
}
