package models

// GeoPoint is a customer-supplied coordinate, produced by the browser
// geolocation API or manual entry. Never persisted on its own.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DeliveryCheck is the result of gating a point against the delivery radius.
// DistanceKm is the road-adjusted distance from the bakery.
type DeliveryCheck struct {
	DistanceKm   float64 `json:"distance_km"`
	WithinRadius bool    `json:"within_radius"`
}
