package models

type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Variation string  `json:"variation,omitempty"`
	WeightKg  float64 `json:"weight_kg,omitempty"`
	ImageURL  string  `json:"image_url,omitempty"`
}

type Cart struct {
	Items       []CartItem `json:"items"`
	TotalItems  int        `json:"total_items"`
	TotalAmount float64    `json:"total_amount"`
}

// AddToCartRequest carries the customer's selection; the server resolves the
// price itself and ignores any client-side figure.
type AddToCartRequest struct {
	ProductID       string  `json:"product_id"`
	VariationID     string  `json:"variation_id,omitempty"`
	WeightOption    string  `json:"weight_option,omitempty"`
	CustomWeightKg  float64 `json:"custom_weight_kg,omitempty"`
	UseCustomWeight bool    `json:"use_custom_weight,omitempty"`
	EggOption       string  `json:"egg_option,omitempty"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
