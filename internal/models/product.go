package models

import (
	"encoding/json"
	"time"
)

const (
	PricingUnit           = "unit"
	PricingPerKg          = "per_kg"
	PricingWeightPackages = "weight_packages"
)

const (
	EggTypeEgg     = "egg"
	EggTypeEggless = "eggless"
	EggTypeBoth    = "both"
)

type Product struct {
	ID                string          `json:"id"`
	CategoryID        string          `json:"category_id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	BasePrice         float64         `json:"base_price"`
	PricingType       string          `json:"pricing_type"`
	IsSoldByWeight    bool            `json:"is_sold_by_weight"`
	MinWeightGrams    int             `json:"min_weight_grams,omitempty"`
	AllowCustomWeight bool            `json:"allow_custom_weight"`
	EggType           string          `json:"egg_type,omitempty"`
	ImageURL          string          `json:"image_url,omitempty"`
	IsAvailable       bool            `json:"is_available"`
	Variations        json.RawMessage `json:"variations,omitempty"`
	CategoryName      string          `json:"category_name,omitempty"`
	AvgRating         float64         `json:"avg_rating,omitempty"`
	ReviewsCount      int             `json:"reviews_count,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         *time.Time      `json:"updated_at,omitempty"`
}

// EffectivePricingType folds the legacy is_sold_by_weight flag into the
// pricing_type column for rows created before the column existed.
func (p Product) EffectivePricingType() string {
	if p.PricingType != "" {
		return p.PricingType
	}
	if p.IsSoldByWeight {
		return PricingPerKg
	}
	return PricingUnit
}

// WeightBased reports whether the product is billed by weight.
func (p Product) WeightBased() bool {
	t := p.EffectivePricingType()
	return t == PricingPerKg || t == PricingWeightPackages
}

// MinWeightKg returns the minimum orderable weight. Rows without an explicit
// minimum fall back to 250g, same as the storefront default.
func (p Product) MinWeightKg() float64 {
	if p.MinWeightGrams > 0 {
		return float64(p.MinWeightGrams) / 1000
	}
	return 0.25
}

type BulkAvailabilityRequest struct {
	ProductIDs  []string `json:"product_ids"`
	IsAvailable bool     `json:"is_available"`
}
