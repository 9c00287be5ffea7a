package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/tehnoshop/storefront-api/internal/cache"
	"github.com/tehnoshop/storefront-api/internal/models"
	"github.com/tehnoshop/storefront-api/internal/utils"
)

// BannerStore is the repository surface the banner service needs.
type BannerStore interface {
	ListActive(ctx context.Context, position models.BannerPosition) ([]models.BannerRow, error)
	ListAll(ctx context.Context) ([]models.BannerRow, error)
	GetByID(ctx context.Context, id int) (*models.BannerRow, error)
	Create(ctx context.Context, b *models.BannerRow) (*models.BannerRow, error)
	Update(ctx context.Context, id int, patch models.BannerPatch) (*models.BannerRow, error)
	Delete(ctx context.Context, id int) error
}

// BannerService owns banner reads and admin writes. Storefront reads degrade
// to fallback content on repository failure.
type BannerService struct {
	banners BannerStore
	cache   *cache.CatalogCache
}

// NewBannerService constructs a BannerService. cache may be nil.
func NewBannerService(banners BannerStore, catalogCache *cache.CatalogCache) *BannerService {
	return &BannerService{banners: banners, cache: catalogCache}
}

// ListActive returns display-eligible banners for a position, read through
// the cache when one is configured. Repository failure degrades to the
// fallback list.
func (s *BannerService) ListActive(ctx context.Context, position models.BannerPosition) ([]models.Banner, bool) {
	if s.cache != nil {
		if banners, err := s.cache.GetBanners(ctx, position); err == nil {
			return banners, false
		}
	}

	rows, err := s.banners.ListActive(ctx, position)
	if err != nil {
		log.Error().Err(err).Str("position", string(position)).Msg("banner list failed, serving fallback")
		return fallbackBanners(position), true
	}
	banners := mapBanners(rows)

	if s.cache != nil {
		if err := s.cache.SetBanners(ctx, position, banners); err != nil {
			log.Warn().Err(err).Msg("banner cache write failed")
		}
	}
	return banners, false
}

// ListAll returns every banner for the admin panel, surfacing errors.
func (s *BannerService) ListAll(ctx context.Context) ([]models.Banner, error) {
	rows, err := s.banners.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapBanners(rows), nil
}

// Create validates and inserts a banner.
func (s *BannerService) Create(ctx context.Context, row *models.BannerRow) (*models.Banner, error) {
	if !row.Position.Valid() {
		return nil, utils.ErrInvalidPosition
	}
	stored, err := s.banners.Create(ctx, row)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	b := stored.ToBanner()
	return &b, nil
}

// Update applies a sparse patch; omitted fields are left untouched.
func (s *BannerService) Update(ctx context.Context, id int, patch models.BannerPatch) (*models.Banner, error) {
	if patch.Position != nil && !patch.Position.Valid() {
		return nil, utils.ErrInvalidPosition
	}
	row, err := s.banners.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, utils.ErrNotFound
	}
	s.invalidate(ctx)
	b := row.ToBanner()
	return &b, nil
}

// Delete removes a banner.
func (s *BannerService) Delete(ctx context.Context, id int) error {
	if err := s.banners.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrNotFound
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *BannerService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateBanners(ctx); err != nil {
		log.Warn().Err(err).Msg("banner cache invalidation failed")
	}
}

func mapBanners(rows []models.BannerRow) []models.Banner {
	out := make([]models.Banner, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToBanner())
	}
	return out
}
