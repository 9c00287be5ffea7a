package models

import "time"

// ProductStatus enumerates the supported product lifecycle states.
type ProductStatus string

const (
	ProductStatusActive     ProductStatus = "active"
	ProductStatusOutOfStock ProductStatus = "outOfStock"
	ProductStatusDraft      ProductStatus = "draft"
)

// Valid reports whether s is one of the known statuses.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusActive, ProductStatusOutOfStock, ProductStatusDraft:
		return true
	}
	return false
}

// ProductRow mirrors the products table. Bilingual fields live in paired
// _sr/_en columns.
type ProductRow struct {
	ID            int           `db:"id"`
	TitleSr       string        `db:"title_sr"`
	TitleEn       string        `db:"title_en"`
	Price         float64       `db:"price"`
	OldPrice      *float64      `db:"old_price"`
	Image         string        `db:"image"`
	Category      string        `db:"category"`
	IsNew         bool          `db:"is_new"`
	IsOnSale      bool          `db:"is_on_sale"`
	SKU           string        `db:"sku"`
	Stock         int           `db:"stock"`
	Status        ProductStatus `db:"status"`
	DescriptionSr string        `db:"description_sr"`
	DescriptionEn string        `db:"description_en"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}

// Product is the storefront view-model for a product.
type Product struct {
	ID       int           `json:"id"`
	Title    LocalizedText `json:"title"`
	Price    float64       `json:"price"`
	OldPrice *float64      `json:"oldPrice"`
	Image    string        `json:"image"`
	Category string        `json:"category"`
	IsNew    bool          `json:"isNew"`
	IsOnSale bool          `json:"isOnSale"`
}

// AdminProduct extends Product with the fields the admin panel edits.
type AdminProduct struct {
	Product
	SKU           string        `json:"sku"`
	Stock         int           `json:"stock"`
	Status        ProductStatus `json:"status"`
	DescriptionSr string        `json:"descriptionSr"`
	DescriptionEn string        `json:"descriptionEn"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// ToProduct maps a database row to the storefront view-model.
func (r *ProductRow) ToProduct() Product {
	return Product{
		ID:       r.ID,
		Title:    LocalizedText{Sr: r.TitleSr, En: r.TitleEn},
		Price:    r.Price,
		OldPrice: r.OldPrice,
		Image:    r.Image,
		Category: r.Category,
		IsNew:    r.IsNew,
		IsOnSale: r.IsOnSale,
	}
}

// ToAdminProduct maps a database row to the admin view-model.
func (r *ProductRow) ToAdminProduct() AdminProduct {
	return AdminProduct{
		Product:       r.ToProduct(),
		SKU:           r.SKU,
		Stock:         r.Stock,
		Status:        r.Status,
		DescriptionSr: r.DescriptionSr,
		DescriptionEn: r.DescriptionEn,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ProductFilter narrows product list queries. Empty fields are ignored.
type ProductFilter struct {
	Category string
	Status   ProductStatus
	Sort     ProductSort
	Limit    int
}

// ProductSort enumerates the orderings a caller may request. Product lists
// carry no guaranteed order unless one of these is supplied.
type ProductSort string

const (
	ProductSortNone      ProductSort = ""
	ProductSortPriceAsc  ProductSort = "priceAsc"
	ProductSortPriceDesc ProductSort = "priceDesc"
	ProductSortNewest    ProductSort = "newest"
)

// ProductPatch is a sparse update: nil fields are left untouched in storage.
type ProductPatch struct {
	TitleSr       *string        `json:"titleSr"`
	TitleEn       *string        `json:"titleEn"`
	Price         *float64       `json:"price"`
	OldPrice      *float64       `json:"oldPrice"`
	Image         *string        `json:"image"`
	Category      *string        `json:"category"`
	IsNew         *bool          `json:"isNew"`
	IsOnSale      *bool          `json:"isOnSale"`
	SKU           *string        `json:"sku"`
	Stock         *int           `json:"stock"`
	Status        *ProductStatus `json:"status"`
	DescriptionSr *string        `json:"descriptionSr"`
	DescriptionEn *string        `json:"descriptionEn"`
}
