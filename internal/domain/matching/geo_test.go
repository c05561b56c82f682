package matching

import (
	"math"
	"testing"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	p := GeoPoint{Latitude: 28.6139, Longitude: 77.2090}
	if d := DistanceKm(p, p); d != 0 {
		t.Errorf("expected 0 distance for identical points, got %g", d)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	pairs := []struct{ a, b GeoPoint }{
		{GeoPoint{28.6139, 77.2090}, GeoPoint{19.0760, 72.8777}},
		{GeoPoint{0, 0}, GeoPoint{0, 180}},
		{GeoPoint{-33.8688, 151.2093}, GeoPoint{51.5074, -0.1278}},
	}
	for _, p := range pairs {
		ab := DistanceKm(p.a, p.b)
		ba := DistanceKm(p.b, p.a)
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("distance not symmetric: %g vs %g", ab, ba)
		}
	}
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Delhi to Mumbai is roughly 1150 km great-circle.
	delhi := GeoPoint{Latitude: 28.6139, Longitude: 77.2090}
	mumbai := GeoPoint{Latitude: 19.0760, Longitude: 72.8777}
	d := DistanceKm(delhi, mumbai)
	if d < 1100 || d > 1200 {
		t.Errorf("expected ~1150 km Delhi-Mumbai, got %g", d)
	}
}

func TestDistanceKm_Antipodal(t *testing.T) {
	// Half the Earth circumference, ~20015 km.
	d := DistanceKm(GeoPoint{0, 0}, GeoPoint{0, 180})
	if math.Abs(d-math.Pi*earthRadiusKm) > 1 {
		t.Errorf("expected ~%g km for antipodal points, got %g", math.Pi*earthRadiusKm, d)
	}
}
