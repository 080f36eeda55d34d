package delivery

import (
	"math"

	"github.com/Vivek212004/bake-cart-manager/internal/models"
)

const earthRadiusKm = 6371.0

// RoadDistanceFactor approximates travel distance along roads from the
// straight-line figure. Applied uniformly: the calculator never exposes an
// unadjusted distance, so every delivery decision uses the same policy.
const RoadDistanceFactor = 1.5

// Calculator gates delivery eligibility against a fixed bakery location.
// Immutable after construction; safe for concurrent use.
type Calculator struct {
	bakery      models.GeoPoint
	maxRadiusKm float64
	roadFactor  float64
}

func NewCalculator(bakery models.GeoPoint, maxRadiusKm, roadFactor float64) Calculator {
	if roadFactor <= 0 {
		roadFactor = 1
	}
	return Calculator{bakery: bakery, maxRadiusKm: maxRadiusKm, roadFactor: roadFactor}
}

// DistanceKm returns the road-adjusted distance from the bakery to p.
// Total for any finite coordinates; callers that could not obtain a location
// must not call it at all.
func (c Calculator) DistanceKm(p models.GeoPoint) float64 {
	return haversineKm(c.bakery.Latitude, c.bakery.Longitude, p.Latitude, p.Longitude) * c.roadFactor
}

// Check reports whether p is close enough for delivery.
func (c Calculator) Check(p models.GeoPoint) models.DeliveryCheck {
	d := c.DistanceKm(p)
	return models.DeliveryCheck{
		DistanceKm:   d,
		WithinRadius: d <= c.maxRadiusKm,
	}
}

func (c Calculator) MaxRadiusKm() float64 {
	return c.maxRadiusKm
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
