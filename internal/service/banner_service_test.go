package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tehnoshop/storefront-api/internal/models"
	"github.com/tehnoshop/storefront-api/internal/utils"
)

type fakeBannerStore struct {
	rows []models.BannerRow
	err  error
}

func (f *fakeBannerStore) ListActive(context.Context, models.BannerPosition) ([]models.BannerRow, error) {
	return f.rows, f.err
}

func (f *fakeBannerStore) ListAll(context.Context) ([]models.BannerRow, error) {
	return f.rows, f.err
}

func (f *fakeBannerStore) GetByID(_ context.Context, id int) (*models.BannerRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBannerStore) Create(_ context.Context, b *models.BannerRow) (*models.BannerRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	b.ID = 1
	return b, nil
}

func (f *fakeBannerStore) Update(_ context.Context, id int, _ models.BannerPatch) (*models.BannerRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.GetByID(context.Background(), id)
}

func (f *fakeBannerStore) Delete(context.Context, int) error { return f.err }

func TestListActiveBannersFallsBackOnError(t *testing.T) {
	svc := NewBannerService(&fakeBannerStore{err: errors.New("connection refused")}, nil)

	banners, degraded := svc.ListActive(context.Background(), models.BannerPositionHero)

	if !degraded {
		t.Fatal("expected degraded flag on repository failure")
	}
	if len(banners) == 0 {
		t.Fatal("hero fallback must not be empty")
	}
	for _, b := range banners {
		if b.Position != models.BannerPositionHero {
			t.Fatalf("fallback leaked a %s banner into the hero slot", b.Position)
		}
	}
}

func TestListActiveBannersFallbackRespectsPosition(t *testing.T) {
	svc := NewBannerService(&fakeBannerStore{err: errors.New("connection refused")}, nil)

	banners, degraded := svc.ListActive(context.Background(), models.BannerPositionPromo)

	if !degraded {
		t.Fatal("expected degraded flag on repository failure")
	}
	if len(banners) != 0 {
		t.Fatalf("no promo fallback exists, got %d banners", len(banners))
	}
}

func TestListActiveBannersMapsRows(t *testing.T) {
	store := &fakeBannerStore{rows: []models.BannerRow{{
		ID:       3,
		TitleSr:  "Dobrodošli",
		TitleEn:  "Welcome",
		Position: models.BannerPositionHero,
		IsActive: true,
	}}}
	svc := NewBannerService(store, nil)

	banners, degraded := svc.ListActive(context.Background(), models.BannerPositionHero)

	if degraded {
		t.Fatal("healthy read must not be degraded")
	}
	if len(banners) != 1 || banners[0].Title.Sr != "Dobrodošli" || banners[0].Title.En != "Welcome" {
		t.Fatalf("unexpected mapping: %+v", banners)
	}
}

func TestCreateBannerRejectsUnknownPosition(t *testing.T) {
	svc := NewBannerService(&fakeBannerStore{}, nil)

	_, err := svc.Create(context.Background(), &models.BannerRow{Position: "sidebar"})
	if !errors.Is(err, utils.ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}
}

func TestUpdateBannerNotFound(t *testing.T) {
	svc := NewBannerService(&fakeBannerStore{}, nil)

	_, err := svc.Update(context.Background(), 42, models.BannerPatch{})
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
