package models

import "time"

// CategoryRow mirrors the categories table.
type CategoryRow struct {
	ID            int       `db:"id"`
	Slug          string    `db:"slug"`
	NameSr        string    `db:"name_sr"`
	NameEn        string    `db:"name_en"`
	DescriptionSr string    `db:"description_sr"`
	DescriptionEn string    `db:"description_en"`
	Image         string    `db:"image"`
	IsActive      bool      `db:"is_active"`
	DisplayOrder  int       `db:"display_order"`
	ParentID      *int      `db:"parent_id"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// Category is the view-model for a storefront category. slug uniquely
// resolves one category; display_order drives presentation sequence.
type Category struct {
	ID           int           `json:"id"`
	Slug         string        `json:"slug"`
	Name         LocalizedText `json:"name"`
	Description  LocalizedText `json:"description"`
	Image        string        `json:"image"`
	IsActive     bool          `json:"isActive"`
	DisplayOrder int           `json:"displayOrder"`
	ParentID     *int          `json:"parentId"`
}

// ToCategory maps a database row to the view-model.
func (r *CategoryRow) ToCategory() Category {
	return Category{
		ID:           r.ID,
		Slug:         r.Slug,
		Name:         LocalizedText{Sr: r.NameSr, En: r.NameEn},
		Description:  LocalizedText{Sr: r.DescriptionSr, En: r.DescriptionEn},
		Image:        r.Image,
		IsActive:     r.IsActive,
		DisplayOrder: r.DisplayOrder,
		ParentID:     r.ParentID,
	}
}

// CategoryPatch is a sparse update: nil fields are left untouched in storage.
type CategoryPatch struct {
	Slug          *string `json:"slug"`
	NameSr        *string `json:"nameSr"`
	NameEn        *string `json:"nameEn"`
	DescriptionSr *string `json:"descriptionSr"`
	DescriptionEn *string `json:"descriptionEn"`
	Image         *string `json:"image"`
	IsActive      *bool   `json:"isActive"`
	DisplayOrder  *int    `json:"displayOrder"`
	ParentID      *int    `json:"parentId"`
}
