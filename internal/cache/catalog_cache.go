package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tehnoshop/storefront-api/internal/models"
)

// CatalogCache is a read-through cache for the hot storefront lists:
// active categories and active banners per position. Admin writes invalidate
// the affected keys; cache failures are reported to the caller, which falls
// back to the database.
type CatalogCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewCatalogCache creates a CatalogCache with the given TTL.
func NewCatalogCache(redis *RedisClient, ttl time.Duration) *CatalogCache {
	return &CatalogCache{redis: redis, ttl: ttl}
}

func (c *CatalogCache) keyCategories() string {
	return "catalog:categories:active"
}

func (c *CatalogCache) keyBanners(position models.BannerPosition) string {
	return fmt.Sprintf("catalog:banners:%s", position)
}

// GetCategories returns the cached active category list, or an error on a miss.
func (c *CatalogCache) GetCategories(ctx context.Context) ([]models.Category, error) {
	raw, err := c.redis.Get(ctx, c.keyCategories())
	if err != nil {
		return nil, err
	}
	var cats []models.Category
	if err := json.Unmarshal([]byte(raw), &cats); err != nil {
		return nil, fmt.Errorf("failed to decode cached categories: %w", err)
	}
	return cats, nil
}

// SetCategories stores the active category list.
func (c *CatalogCache) SetCategories(ctx context.Context, cats []models.Category) error {
	raw, err := json.Marshal(cats)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}
	return c.redis.Set(ctx, c.keyCategories(), string(raw), c.ttl)
}

// GetBanners returns the cached banner list for a position, or an error on a miss.
func (c *CatalogCache) GetBanners(ctx context.Context, position models.BannerPosition) ([]models.Banner, error) {
	raw, err := c.redis.Get(ctx, c.keyBanners(position))
	if err != nil {
		return nil, err
	}
	var banners []models.Banner
	if err := json.Unmarshal([]byte(raw), &banners); err != nil {
		return nil, fmt.Errorf("failed to decode cached banners: %w", err)
	}
	return banners, nil
}

// SetBanners stores the banner list for a position.
func (c *CatalogCache) SetBanners(ctx context.Context, position models.BannerPosition, banners []models.Banner) error {
	raw, err := json.Marshal(banners)
	if err != nil {
		return fmt.Errorf("failed to marshal banners: %w", err)
	}
	return c.redis.Set(ctx, c.keyBanners(position), string(raw), c.ttl)
}

// InvalidateCategories drops the cached category list after an admin write.
func (c *CatalogCache) InvalidateCategories(ctx context.Context) error {
	return c.redis.Delete(ctx, c.keyCategories())
}

// InvalidateBanners drops every cached banner list after an admin write.
func (c *CatalogCache) InvalidateBanners(ctx context.Context) error {
	return c.redis.Delete(ctx,
		c.keyBanners(models.BannerPositionHero),
		c.keyBanners(models.BannerPositionPromo),
		c.keyBanners(""),
	)
}
