package pricing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Vivek212004/bake-cart-manager/internal/models"
)

// Selection validation failures. Callers must block add-to-cart on any of
// these and show the message inline; a price is never substituted.
var (
	ErrVariationRequired    = errors.New("please select a type for this product")
	ErrWeightOptionRequired = errors.New("please select a weight option")
	ErrEggOptionRequired    = errors.New("please choose egg or eggless")
	ErrInvalidWeight        = errors.New("please enter a valid weight")
)

// Selection is the customer's transient choice state for one product.
type Selection struct {
	VariationID     string  `json:"variation_id,omitempty"`
	WeightOption    string  `json:"weight_option,omitempty"`
	CustomWeightKg  float64 `json:"custom_weight_kg,omitempty"`
	UseCustomWeight bool    `json:"use_custom_weight,omitempty"`
	EggOption       string  `json:"egg_option,omitempty"`
}

// Result is rebuilt from scratch on every call; it is never mutated.
type Result struct {
	FinalPrice  float64 `json:"final_price"`
	Description string  `json:"description"`
	WeightKg    float64 `json:"weight_kg,omitempty"`
}

// Resolve computes the line-item price and a human-readable description of
// what was selected. Pure and deterministic: identical inputs always produce
// identical results, so it can run on every selection change.
func Resolve(p models.Product, sel Selection) (Result, error) {
	eggLabel, err := resolveEggOption(p, sel)
	if err != nil {
		return Result{}, err
	}

	vars := Normalize(p.Variations)
	weightBased := p.WeightBased()

	// New weight-based format: the variation list is itself the weight menu.
	if weightBased && len(vars) > 0 && vars[0].WeightGrams > 0 {
		return resolveWeightMenu(p, vars, sel, eggLabel)
	}

	if len(vars) > 0 {
		return resolveVariation(p, vars, sel, eggLabel)
	}

	// No variations at all. Per-kg products without a weight menu are bought
	// by entered weight; everything else is the base price.
	if weightBased && sel.UseCustomWeight {
		kg, err := validCustomWeight(p, sel.CustomWeightKg)
		if err != nil {
			return Result{}, err
		}
		return Result{
			FinalPrice:  p.BasePrice * kg,
			Description: describe(eggLabel, "", customKgLabel(kg)),
			WeightKg:    kg,
		}, nil
	}

	return Result{FinalPrice: p.BasePrice, Description: describe(eggLabel, "", "")}, nil
}

func resolveWeightMenu(p models.Product, vars []Variation, sel Selection, eggLabel string) (Result, error) {
	if sel.UseCustomWeight && p.AllowCustomWeight {
		kg, err := validCustomWeight(p, sel.CustomWeightKg)
		if err != nil {
			return Result{}, err
		}
		return Result{
			FinalPrice:  p.BasePrice * kg,
			Description: describe(eggLabel, "", customKgLabel(kg)),
			WeightKg:    kg,
		}, nil
	}

	if sel.WeightOption == "" {
		return Result{}, ErrWeightOptionRequired
	}
	for _, v := range vars {
		if v.ID != sel.WeightOption || v.WeightGrams <= 0 || v.Price == nil {
			continue
		}
		return Result{
			FinalPrice:  *v.Price,
			Description: describe(eggLabel, "", FormatWeightGrams(v.WeightGrams)),
			WeightKg:    float64(v.WeightGrams) / 1000,
		}, nil
	}
	return Result{}, ErrWeightOptionRequired
}

func resolveVariation(p models.Product, vars []Variation, sel Selection, eggLabel string) (Result, error) {
	if sel.VariationID == "" {
		return Result{}, ErrVariationRequired
	}
	selVar, ok := findVariation(vars, sel.VariationID)
	if !ok {
		return Result{}, ErrVariationRequired
	}

	if selVar.HasNested() {
		return resolveNested(p, selVar, sel, eggLabel)
	}

	// Flat variation; for weight-based products its price is per kilogram.
	if p.WeightBased() && sel.UseCustomWeight {
		perKg := p.BasePrice
		if selVar.Price != nil {
			perKg = *selVar.Price
		}
		kg, err := validCustomWeight(p, sel.CustomWeightKg)
		if err != nil {
			return Result{}, err
		}
		return Result{
			FinalPrice:  perKg * kg,
			Description: describe(eggLabel, selVar.Name, customKgLabel(kg)),
			WeightKg:    kg,
		}, nil
	}

	price := p.BasePrice
	if selVar.Price != nil {
		price = *selVar.Price
	}
	return Result{FinalPrice: price, Description: describe(eggLabel, selVar.Name, "")}, nil
}

func resolveNested(p models.Product, selVar Variation, sel Selection, eggLabel string) (Result, error) {
	if sel.WeightOption == "" {
		// A nested variation with no weight chosen has no price; surface the
		// error instead of silently falling back.
		return Result{}, ErrWeightOptionRequired
	}

	var chosen *WeightOption
	for i := range selVar.Nested {
		if selVar.Nested[i].Weight == sel.WeightOption {
			chosen = &selVar.Nested[i]
			break
		}
	}
	if chosen == nil {
		return Result{}, ErrWeightOptionRequired
	}

	// Custom weight over a nested choice: derive the per-kg rate from the
	// chosen option, since nested prices are totals, not rates.
	if p.WeightBased() && sel.UseCustomWeight {
		optionKg, ok := ParseWeightKg(chosen.Weight)
		if !ok {
			return Result{}, ErrWeightOptionRequired
		}
		kg, err := validCustomWeight(p, sel.CustomWeightKg)
		if err != nil {
			return Result{}, err
		}
		perKg := chosen.Price / optionKg
		return Result{
			FinalPrice:  perKg * kg,
			Description: describe(eggLabel, selVar.Name, "Custom "+customKgLabel(kg)),
			WeightKg:    kg,
		}, nil
	}

	result := Result{
		FinalPrice:  chosen.Price,
		Description: describe(eggLabel, selVar.Name, chosen.Weight),
	}
	if kg, ok := ParseWeightKg(chosen.Weight); ok {
		result.WeightKg = kg
	}
	return result, nil
}

func resolveEggOption(p models.Product, sel Selection) (string, error) {
	if p.EggType != models.EggTypeBoth {
		return "", nil
	}
	switch sel.EggOption {
	case models.EggTypeEgg:
		return "Egg", nil
	case models.EggTypeEggless:
		return "Eggless", nil
	default:
		return "", ErrEggOptionRequired
	}
}

func validCustomWeight(p models.Product, kg float64) (float64, error) {
	if kg <= 0 {
		return 0, ErrInvalidWeight
	}
	if min := p.MinWeightKg(); kg < min {
		return 0, fmt.Errorf("%w (minimum %s)", ErrInvalidWeight, customKgLabel(min))
	}
	return kg, nil
}

func customKgLabel(kg float64) string {
	return strconv.FormatFloat(kg, 'f', -1, 64) + "kg"
}

func findVariation(vars []Variation, id string) (Variation, bool) {
	for _, v := range vars {
		if v.ID == id {
			return v, true
		}
	}
	return Variation{}, false
}

// describe joins the non-empty parts with " - ", never emitting empty
// segments.
func describe(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " - ")
}
