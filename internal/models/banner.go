package models

import "time"

// BannerPosition enumerates where a banner may be displayed.
type BannerPosition string

const (
	BannerPositionHero  BannerPosition = "hero"
	BannerPositionPromo BannerPosition = "promo"
)

// Valid reports whether p is a known banner position.
func (p BannerPosition) Valid() bool {
	return p == BannerPositionHero || p == BannerPositionPromo
}

// BannerRow mirrors the banners table.
type BannerRow struct {
	ID            int            `db:"id"`
	TitleSr       string         `db:"title_sr"`
	TitleEn       string         `db:"title_en"`
	DescriptionSr string         `db:"description_sr"`
	DescriptionEn string         `db:"description_en"`
	Image         string         `db:"image"`
	TargetURL     string         `db:"target_url"`
	IsActive      bool           `db:"is_active"`
	Position      BannerPosition `db:"position"`
	DisplayOrder  int            `db:"display_order"`
	StartsAt      *time.Time     `db:"starts_at"`
	EndsAt        *time.Time     `db:"ends_at"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

// Banner is the view-model for a storefront banner. Active banners inside
// their date window, ordered ascending by display order, are eligible for
// display. Nil window bounds are open-ended.
type Banner struct {
	ID           int            `json:"id"`
	Title        LocalizedText  `json:"title"`
	Description  LocalizedText  `json:"description"`
	Image        string         `json:"image"`
	TargetURL    string         `json:"targetUrl"`
	IsActive     bool           `json:"isActive"`
	Position     BannerPosition `json:"position"`
	DisplayOrder int            `json:"order"`
	StartsAt     *time.Time     `json:"startDate,omitempty"`
	EndsAt       *time.Time     `json:"endDate,omitempty"`
}

// ToBanner maps a database row to the view-model.
func (r *BannerRow) ToBanner() Banner {
	return Banner{
		ID:           r.ID,
		Title:        LocalizedText{Sr: r.TitleSr, En: r.TitleEn},
		Description:  LocalizedText{Sr: r.DescriptionSr, En: r.DescriptionEn},
		Image:        r.Image,
		TargetURL:    r.TargetURL,
		IsActive:     r.IsActive,
		Position:     r.Position,
		DisplayOrder: r.DisplayOrder,
		StartsAt:     r.StartsAt,
		EndsAt:       r.EndsAt,
	}
}

// BannerPatch is a sparse update: nil fields are left untouched in storage.
type BannerPatch struct {
	TitleSr       *string         `json:"titleSr"`
	TitleEn       *string         `json:"titleEn"`
	DescriptionSr *string         `json:"descriptionSr"`
	DescriptionEn *string         `json:"descriptionEn"`
	Image         *string         `json:"image"`
	TargetURL     *string         `json:"targetUrl"`
	IsActive      *bool           `json:"isActive"`
	Position      *BannerPosition `json:"position"`
	DisplayOrder  *int            `json:"order"`
	StartsAt      *time.Time      `json:"startDate"`
	EndsAt        *time.Time      `json:"endDate"`
}
