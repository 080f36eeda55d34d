package pricing

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Vivek212004/bake-cart-manager/internal/models"
)

func perKgProduct(basePrice float64, minGrams int) models.Product {
	return models.Product{
		ID:             "p1",
		Name:           "Chocolate Cake",
		BasePrice:      basePrice,
		PricingType:    models.PricingPerKg,
		MinWeightGrams: minGrams,
	}
}

func TestResolve_CustomWeightPerKg(t *testing.T) {
	p := perKgProduct(500, 250)

	got, err := Resolve(p, Selection{UseCustomWeight: true, CustomWeightKg: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FinalPrice != 250 {
		t.Errorf("final price = %f, want 250", got.FinalPrice)
	}
	if got.WeightKg != 0.5 {
		t.Errorf("weight = %f, want 0.5", got.WeightKg)
	}
	if got.Description != "0.5kg" {
		t.Errorf("description = %q, want %q", got.Description, "0.5kg")
	}
}

func TestResolve_CustomWeightValidation(t *testing.T) {
	p := perKgProduct(500, 250)

	cases := []struct {
		name string
		kg   float64
	}{
		{"zero", 0},
		{"negative", -1},
		{"below minimum", 0.2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve(p, Selection{UseCustomWeight: true, CustomWeightKg: tc.kg})
			if !errors.Is(err, ErrInvalidWeight) {
				t.Fatalf("expected ErrInvalidWeight, got %v", err)
			}
		})
	}
}

func TestResolve_BelowMinimumNeverClamped(t *testing.T) {
	p := perKgProduct(500, 500)

	got, err := Resolve(p, Selection{UseCustomWeight: true, CustomWeightKg: 0.4})
	if err == nil {
		t.Fatalf("expected rejection, got price %f", got.FinalPrice)
	}
}

func TestResolve_FlatVariation(t *testing.T) {
	p := models.Product{
		ID:         "p2",
		Name:       "Brownie",
		BasePrice:  40,
		Variations: json.RawMessage(`[{"name":"Small","price":50},{"name":"Large","price":90}]`),
	}

	got, err := Resolve(p, Selection{VariationID: "Large"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FinalPrice != 90 {
		t.Errorf("final price = %f, want 90", got.FinalPrice)
	}
	if got.Description != "Large" {
		t.Errorf("description = %q, want %q", got.Description, "Large")
	}
}

func TestResolve_FlatVariationWithoutPriceFallsBackToBase(t *testing.T) {
	p := models.Product{
		BasePrice:  120,
		Variations: json.RawMessage(`[{"name":"Classic"}]`),
	}

	got, err := Resolve(p, Selection{VariationID: "Classic"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FinalPrice != 120 {
		t.Errorf("final price = %f, want base 120", got.FinalPrice)
	}
}

func TestResolve_NestedWeightOption(t *testing.T) {
	p := models.Product{
		ID:         "p3",
		Name:       "Fruit Cake",
		BasePrice:  300,
		Variations: json.RawMessage(`{"Egg":{"variations":[{"weight":"500g","price":300},{"weight":"1kg","price":550}]}}`),
	}

	got, err := Resolve(p, Selection{VariationID: "Egg", WeightOption: "1kg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FinalPrice != 550 {
		t.Errorf("final price = %f, want 550", got.FinalPrice)
	}
	if got.Description != "Egg - 1kg" {
		t.Errorf("description = %q, want %q", got.Description, "Egg - 1kg")
	}
	if got.WeightKg != 1 {
		t.Errorf("weight = %f, want 1", got.WeightKg)
	}
}

func TestResolve_NestedWithoutWeightOptionRejected(t *testing.T) {
	p := models.Product{
		BasePrice:  300,
		Variations: json.RawMessage(`{"Egg":{"variations":[{"weight":"500g","price":300}]}}`),
	}

	_, err := Resolve(p, Selection{VariationID: "Egg"})
	if !errors.Is(err, ErrWeightOptionRequired) {
		t.Fatalf("expected ErrWeightOptionRequired, got %v", err)
	}
}

func TestResolve_VariationRequired(t *testing.T) {
	p := models.Product{
		BasePrice:  100,
		Variations: json.RawMessage(`[{"name":"Small","price":50}]`),
	}

	_, err := Resolve(p, Selection{})
	if !errors.Is(err, ErrVariationRequired) {
		t.Fatalf("expected ErrVariationRequired, got %v", err)
	}

	_, err = Resolve(p, Selection{VariationID: "Huge"})
	if !errors.Is(err, ErrVariationRequired) {
		t.Fatalf("unknown variation: expected ErrVariationRequired, got %v", err)
	}
}

func TestResolve_WeightMenuOption(t *testing.T) {
	p := models.Product{
		BasePrice:      400,
		PricingType:    models.PricingWeightPackages,
		IsSoldByWeight: true,
		Variations:     json.RawMessage(`[{"weight_grams":500,"price":250},{"weight_grams":1500,"price":700}]`),
	}

	got, err := Resolve(p, Selection{WeightOption: "1500"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FinalPrice != 700 {
		t.Errorf("final price = %f, want 700", got.FinalPrice)
	}
	if got.Description != "1.50kg" {
		t.Errorf("description = %q, want %q", got.Description, "1.50kg")
	}
	if got.WeightKg != 1.5 {
		t.Errorf("weight = %f, want 1.5", got.WeightKg)
	}

	if _, err := Resolve(p, Selection{}); !errors.Is(err, ErrWeightOptionRequired) {
		t.Fatalf("no option selected: expected ErrWeightOptionRequired, got %v", err)
	}
}

func TestResolve_WeightMenuCustomWeight(t *testing.T) {
	p := models.Product{
		BasePrice:         400,
		PricingType:       models.PricingPerKg,
		MinWeightGrams:    500,
		AllowCustomWeight: true,
		Variations:        json.RawMessage(`[{"weight_grams":500,"price":250},{"weight_grams":1000,"price":450}]`),
	}

	got, err := Resolve(p, Selection{UseCustomWeight: true, CustomWeightKg: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FinalPrice != 800 {
		t.Errorf("final price = %f, want 800", got.FinalPrice)
	}
	if got.Description != "2kg" {
		t.Errorf("description = %q, want %q", got.Description, "2kg")
	}
}

func TestResolve_CustomWeightFromNestedRate(t *testing.T) {
	p := models.Product{
		BasePrice:      300,
		PricingType:    models.PricingPerKg,
		IsSoldByWeight: true,
		MinWeightGrams: 250,
		Variations:     json.RawMessage(`{"Eggless":{"variations":[{"weight":"500g","price":300},{"weight":"1kg","price":550}]}}`),
	}

	// 500g at 300 -> 600/kg, so 1.5kg = 900
	got, err := Resolve(p, Selection{
		VariationID:     "Eggless",
		WeightOption:    "500g",
		UseCustomWeight: true,
		CustomWeightKg:  1.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FinalPrice != 900 {
		t.Errorf("final price = %f, want 900", got.FinalPrice)
	}
	if got.Description != "Eggless - Custom 1.5kg" {
		t.Errorf("description = %q, want %q", got.Description, "Eggless - Custom 1.5kg")
	}
}

func TestResolve_EggOptionGating(t *testing.T) {
	p := models.Product{
		BasePrice:  100,
		EggType:    models.EggTypeBoth,
		Variations: json.RawMessage(`[{"name":"Small","price":50}]`),
	}

	if _, err := Resolve(p, Selection{VariationID: "Small"}); !errors.Is(err, ErrEggOptionRequired) {
		t.Fatalf("expected ErrEggOptionRequired, got %v", err)
	}

	withEgg, err := Resolve(p, Selection{VariationID: "Small", EggOption: models.EggTypeEggless})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withEgg.Description != "Eggless - Small" {
		t.Errorf("description = %q, want %q", withEgg.Description, "Eggless - Small")
	}

	// The egg choice is descriptive only: it never moves the price.
	if withEgg.FinalPrice != 50 {
		t.Errorf("final price = %f, want 50", withEgg.FinalPrice)
	}
}

func TestResolve_NoSelectionNoVariations(t *testing.T) {
	p := models.Product{BasePrice: 80}

	got, err := Resolve(p, Selection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FinalPrice != 80 || got.WeightKg != 0 || got.Description != "" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	p := models.Product{
		BasePrice:  300,
		EggType:    models.EggTypeBoth,
		Variations: json.RawMessage(`{"Egg":{"variations":[{"weight":"500g","price":300},{"weight":"1kg","price":550}]},"Eggless":{"variations":[{"weight":"500g","price":330}]}}`),
	}
	sel := Selection{VariationID: "Egg", WeightOption: "1kg", EggOption: models.EggTypeEgg}

	first, err1 := Resolve(p, sel)
	second, err2 := Resolve(p, sel)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
}
