package models

import "time"

// PromotionPosition enumerates where a promotion may be displayed.
type PromotionPosition string

const (
	PromotionPositionHome     PromotionPosition = "home"
	PromotionPositionCategory PromotionPosition = "category"
)

// Valid reports whether p is a known promotion position.
func (p PromotionPosition) Valid() bool {
	return p == PromotionPositionHome || p == PromotionPositionCategory
}

// PromotionRow mirrors the promotions table.
type PromotionRow struct {
	ID            int               `db:"id"`
	TitleSr       string            `db:"title_sr"`
	TitleEn       string            `db:"title_en"`
	DescriptionSr string            `db:"description_sr"`
	DescriptionEn string            `db:"description_en"`
	Image         string            `db:"image"`
	Link          string            `db:"link"`
	IsActive      bool              `db:"is_active"`
	Position      PromotionPosition `db:"position"`
	DisplayOrder  int               `db:"display_order"`
	Discount      *float64          `db:"discount"`
	StartsAt      *time.Time        `db:"starts_at"`
	EndsAt        *time.Time        `db:"ends_at"`
	CreatedAt     time.Time         `db:"created_at"`
	UpdatedAt     time.Time         `db:"updated_at"`
}

// Promotion is the view-model for a storefront promotion. Discount is a
// percentage when present.
type Promotion struct {
	ID           int               `json:"id"`
	Title        LocalizedText     `json:"title"`
	Description  LocalizedText     `json:"description"`
	Image        string            `json:"image"`
	Link         string            `json:"link"`
	IsActive     bool              `json:"isActive"`
	Position     PromotionPosition `json:"position"`
	DisplayOrder int               `json:"order"`
	Discount     *float64          `json:"discount,omitempty"`
	StartsAt     *time.Time        `json:"startDate,omitempty"`
	EndsAt       *time.Time        `json:"endDate,omitempty"`
}

// ToPromotion maps a database row to the view-model.
func (r *PromotionRow) ToPromotion() Promotion {
	return Promotion{
		ID:           r.ID,
		Title:        LocalizedText{Sr: r.TitleSr, En: r.TitleEn},
		Description:  LocalizedText{Sr: r.DescriptionSr, En: r.DescriptionEn},
		Image:        r.Image,
		Link:         r.Link,
		IsActive:     r.IsActive,
		Position:     r.Position,
		DisplayOrder: r.DisplayOrder,
		Discount:     r.Discount,
		StartsAt:     r.StartsAt,
		EndsAt:       r.EndsAt,
	}
}

// PromotionPatch is a sparse update: nil fields are left untouched in storage.
type PromotionPatch struct {
	TitleSr       *string            `json:"titleSr"`
	TitleEn       *string            `json:"titleEn"`
	DescriptionSr *string            `json:"descriptionSr"`
	DescriptionEn *string            `json:"descriptionEn"`
	Image         *string            `json:"image"`
	Link          *string            `json:"link"`
	IsActive      *bool              `json:"isActive"`
	Position      *PromotionPosition `json:"position"`
	DisplayOrder  *int               `json:"order"`
	Discount      *float64           `json:"discount"`
	StartsAt      *time.Time         `json:"startDate"`
	EndsAt        *time.Time         `json:"endDate"`
}
