package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/homekeep/homekeep/internal/domain"
)

const (
	previewCachePrefix = "invite:preview:"
	previewCacheTTL    = 5 * time.Minute
)

// PreviewCache caches invite-preview property summaries in Redis so the
// public preview endpoint doesn't hit Postgres for every link open.
type PreviewCache struct {
	client *Client
}

// NewPreviewCache creates a new preview cache
func NewPreviewCache(client *Client) *PreviewCache {
	return &PreviewCache{client: client}
}

// Get retrieves a cached summary for a property
func (c *PreviewCache) Get(ctx context.Context, propertyID uuid.UUID) (*domain.PropertySummary, error) {
	key := fmt.Sprintf("%s%s", previewCachePrefix, propertyID.String())

	data, err := c.client.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, nil // Cache miss
	}

	var summary domain.PropertySummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}

	return &summary, nil
}

// Set caches a summary for a property
func (c *PreviewCache) Set(ctx context.Context, propertyID uuid.UUID, summary *domain.PropertySummary) error {
	key := fmt.Sprintf("%s%s", previewCachePrefix, propertyID.String())

	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	return c.client.rdb.Set(ctx, key, data, previewCacheTTL).Err()
}

// Invalidate removes a cached summary, used after area changes alter the
// area count shown on the preview.
func (c *PreviewCache) Invalidate(ctx context.Context, propertyID uuid.UUID) error {
	key := fmt.Sprintf("%s%s", previewCachePrefix, propertyID.String())
	return c.client.rdb.Del(ctx, key).Err()
}
