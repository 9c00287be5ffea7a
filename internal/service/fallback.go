package service

import "github.com/tehnoshop/storefront-api/internal/models"

// Static fallback content served when the database is unreachable. The
// storefront degrades to this instead of surfacing backend outages to
// shoppers; responses carry a degraded flag so monitors can still tell.

func fallbackProducts() []models.Product {
	oldPrice := 3990.0
	return []models.Product{
		{
			ID:       -1,
			Title:    models.LocalizedText{Sr: "USB-C punjač 20W", En: "USB-C Charger 20W"},
			Price:    2990,
			OldPrice: &oldPrice,
			Image:    "/images/fallback/charger.jpg",
			Category: "chargers",
			IsOnSale: true,
		},
		{
			ID:       -2,
			Title:    models.LocalizedText{Sr: "Bežične slušalice", En: "Wireless Earbuds"},
			Price:    5490,
			Image:    "/images/fallback/earbuds.jpg",
			Category: "audio",
			IsNew:    true,
		},
		{
			ID:       -3,
			Title:    models.LocalizedText{Sr: "Zaštitno staklo", En: "Screen Protector"},
			Price:    990,
			Image:    "/images/fallback/glass.jpg",
			Category: "accessories",
		},
	}
}

func fallbackCategories() []models.Category {
	return []models.Category{
		{
			ID:           -1,
			Slug:         "chargers",
			Name:         models.LocalizedText{Sr: "Punjači", En: "Chargers"},
			Image:        "/images/fallback/cat-chargers.jpg",
			IsActive:     true,
			DisplayOrder: 1,
		},
		{
			ID:           -2,
			Slug:         "audio",
			Name:         models.LocalizedText{Sr: "Audio", En: "Audio"},
			Image:        "/images/fallback/cat-audio.jpg",
			IsActive:     true,
			DisplayOrder: 2,
		},
		{
			ID:           -3,
			Slug:         "accessories",
			Name:         models.LocalizedText{Sr: "Dodaci", En: "Accessories"},
			Image:        "/images/fallback/cat-accessories.jpg",
			IsActive:     true,
			DisplayOrder: 3,
		},
	}
}

func fallbackBanners(position models.BannerPosition) []models.Banner {
	if position != "" && position != models.BannerPositionHero {
		return []models.Banner{}
	}
	return []models.Banner{
		{
			ID:           -1,
			Title:        models.LocalizedText{Sr: "Dobrodošli", En: "Welcome"},
			Description:  models.LocalizedText{Sr: "Najbolja tehnika na jednom mestu", En: "The best tech in one place"},
			Image:        "/images/fallback/hero.jpg",
			TargetURL:    "/products",
			IsActive:     true,
			Position:     models.BannerPositionHero,
			DisplayOrder: 1,
		},
	}
}
