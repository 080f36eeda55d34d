package delivery

import (
	"math"
	"testing"

	"github.com/Vivek212004/bake-cart-manager/internal/models"
)

var bakery = models.GeoPoint{Latitude: 17.385, Longitude: 78.4867}

// one degree of latitude under R=6371
const kmPerDegreeLat = earthRadiusKm * math.Pi / 180

func TestDistanceKm_ZeroAtBakery(t *testing.T) {
	c := NewCalculator(bakery, 20, RoadDistanceFactor)
	if d := c.DistanceKm(bakery); d != 0 {
		t.Fatalf("expected 0 at bakery location, got %f", d)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	p := models.GeoPoint{Latitude: bakery.Latitude + 0.1, Longitude: bakery.Longitude - 0.2}

	from := NewCalculator(bakery, 20, 1)
	back := NewCalculator(p, 20, 1)

	d1 := from.DistanceKm(p)
	d2 := back.DistanceKm(bakery)
	if math.Abs(d1-d2) > 1e-9 {
		t.Fatalf("distance not symmetric: %f vs %f", d1, d2)
	}
}

func TestDistanceKm_MonotonicWithSeparation(t *testing.T) {
	c := NewCalculator(bakery, 20, 1)

	prev := 0.0
	for i := 1; i <= 10; i++ {
		p := models.GeoPoint{Latitude: bakery.Latitude + float64(i)*0.05, Longitude: bakery.Longitude}
		d := c.DistanceKm(p)
		if d <= prev {
			t.Fatalf("distance did not increase at step %d: %f <= %f", i, d, prev)
		}
		prev = d
	}
}

func TestDistanceKm_Idempotent(t *testing.T) {
	c := NewCalculator(bakery, 20, RoadDistanceFactor)
	p := models.GeoPoint{Latitude: bakery.Latitude + 0.07, Longitude: bakery.Longitude + 0.03}

	if a, b := c.DistanceKm(p), c.DistanceKm(p); a != b {
		t.Fatalf("repeated calls differ: %v vs %v", a, b)
	}
}

// Pins the road-factor policy: a point 15 km away straight-line is 22.5 km by
// road at the 1.5x factor and must be refused against a 20 km radius, while
// the same point without the factor is well inside.
func TestCheck_RoadFactorPolicy(t *testing.T) {
	p := models.GeoPoint{Latitude: bakery.Latitude + 15/kmPerDegreeLat, Longitude: bakery.Longitude}

	straight := NewCalculator(bakery, 20, 1)
	if d := straight.DistanceKm(p); math.Abs(d-15) > 0.01 {
		t.Fatalf("test point is %f km straight-line, want ~15", d)
	}

	road := NewCalculator(bakery, 20, RoadDistanceFactor)

	if got := road.Check(p); got.WithinRadius {
		t.Errorf("15 km straight-line with 1.5x factor should be outside a 20 km radius (got %f km)", got.DistanceKm)
	}
	if got := straight.Check(p); !got.WithinRadius {
		t.Errorf("15 km straight-line without the factor should be inside a 20 km radius (got %f km)", got.DistanceKm)
	}
}

func TestNewCalculator_DefaultsFactorToOne(t *testing.T) {
	c := NewCalculator(bakery, 20, 0)
	p := models.GeoPoint{Latitude: bakery.Latitude + 0.05, Longitude: bakery.Longitude}

	want := NewCalculator(bakery, 20, 1).DistanceKm(p)
	if got := c.DistanceKm(p); got != want {
		t.Fatalf("zero factor should behave as 1: got %f want %f", got, want)
	}
}
