package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/tehnoshop/storefront-api/internal/models"
	"github.com/tehnoshop/storefront-api/internal/utils"
)

// PromotionStore is the repository surface the promotion service needs.
type PromotionStore interface {
	ListActive(ctx context.Context, position models.PromotionPosition) ([]models.PromotionRow, error)
	ListAll(ctx context.Context) ([]models.PromotionRow, error)
	GetByID(ctx context.Context, id int) (*models.PromotionRow, error)
	Create(ctx context.Context, p *models.PromotionRow) (*models.PromotionRow, error)
	Update(ctx context.Context, id int, patch models.PromotionPatch) (*models.PromotionRow, error)
	Delete(ctx context.Context, id int) error
}

// PromotionService owns promotion reads and admin writes. Storefront reads
// degrade to an empty list on repository failure.
type PromotionService struct {
	promotions PromotionStore
}

// NewPromotionService constructs a PromotionService.
func NewPromotionService(promotions PromotionStore) *PromotionService {
	return &PromotionService{promotions: promotions}
}

// ListActive returns display-eligible promotions for a position.
func (s *PromotionService) ListActive(ctx context.Context, position models.PromotionPosition) ([]models.Promotion, bool) {
	rows, err := s.promotions.ListActive(ctx, position)
	if err != nil {
		log.Error().Err(err).Str("position", string(position)).Msg("promotion list failed")
		return []models.Promotion{}, true
	}
	return mapPromotions(rows), false
}

// ListAll returns every promotion for the admin panel, surfacing errors.
func (s *PromotionService) ListAll(ctx context.Context) ([]models.Promotion, error) {
	rows, err := s.promotions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapPromotions(rows), nil
}

// Create validates and inserts a promotion.
func (s *PromotionService) Create(ctx context.Context, row *models.PromotionRow) (*models.Promotion, error) {
	if !row.Position.Valid() {
		return nil, utils.ErrInvalidPosition
	}
	stored, err := s.promotions.Create(ctx, row)
	if err != nil {
		return nil, err
	}
	p := stored.ToPromotion()
	return &p, nil
}

// Update applies a sparse patch; omitted fields are left untouched.
func (s *PromotionService) Update(ctx context.Context, id int, patch models.PromotionPatch) (*models.Promotion, error) {
	if patch.Position != nil && !patch.Position.Valid() {
		return nil, utils.ErrInvalidPosition
	}
	row, err := s.promotions.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, utils.ErrNotFound
	}
	p := row.ToPromotion()
	return &p, nil
}

// Delete removes a promotion.
func (s *PromotionService) Delete(ctx context.Context, id int) error {
	if err := s.promotions.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrNotFound
		}
		return err
	}
	return nil
}

func mapPromotions(rows []models.PromotionRow) []models.Promotion {
	out := make([]models.Promotion, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToPromotion())
	}
	return out
}
