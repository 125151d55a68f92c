package geo

import (
	"math"
	"testing"
)

const (
	officeLat  = -6.2000
	officeLong = 106.8166
)

func TestDistance_SamePoint(t *testing.T) {
	got := Distance(officeLat, officeLong, officeLat, officeLong)
	if got != 0 {
		t.Errorf("Distance(office, office) = %v, want 0", got)
	}
}

func TestDistance_Symmetry(t *testing.T) {
	cases := []struct {
		lat, lon float64
	}{
		{-6.1751, 106.8650},
		{-6.2146, 106.8451},
		{35.6895, 139.6917},
		{0, 0},
	}
	for _, c := range cases {
		ab := Distance(officeLat, officeLong, c.lat, c.lon)
		ba := Distance(c.lat, c.lon, officeLat, officeLong)
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Distance not symmetric for (%v, %v): %v vs %v", c.lat, c.lon, ab, ba)
		}
	}
}

func TestDistance_MonotonicAlongBearing(t *testing.T) {
	// Move due north from the office in equal steps; distance must strictly grow.
	prev := 0.0
	for i := 1; i <= 10; i++ {
		lat := officeLat + float64(i)*0.001
		d := Distance(officeLat, officeLong, lat, officeLong)
		if d <= prev {
			t.Fatalf("distance not increasing at step %d: %v <= %v", i, d, prev)
		}
		prev = d
	}
}

func TestDistance_KnownSeparation(t *testing.T) {
	// One degree of latitude is roughly 111.2 km on a 6371 km sphere.
	got := Distance(0, 0, 1, 0)
	want := 111195.0
	if math.Abs(got-want) > 100 {
		t.Errorf("Distance over 1 degree latitude = %v, want ~%v", got, want)
	}
}

func TestEvaluator_AtOffice(t *testing.T) {
	ev := NewEvaluator(officeLat, officeLong, 100)

	v := ev.Evaluate(officeLat, officeLong)
	if v.DistanceMeters != 0 {
		t.Errorf("DistanceMeters = %v, want 0", v.DistanceMeters)
	}
	if !v.InRange {
		t.Error("expected office coordinate to be in range")
	}
}

func TestEvaluator_FarAway(t *testing.T) {
	ev := NewEvaluator(officeLat, officeLong, 100)

	// ~500m north of the office.
	v := ev.Evaluate(officeLat+0.0045, officeLong)
	if v.DistanceMeters < 400 || v.DistanceMeters > 600 {
		t.Errorf("DistanceMeters = %v, want ~500", v.DistanceMeters)
	}
	if v.InRange {
		t.Error("expected point ~500m away to be out of range")
	}
}

func TestEvaluator_BoundaryIsExclusive(t *testing.T) {
	ev := NewEvaluator(0, 0, 0)

	v := ev.Evaluate(0, 0)
	if v.InRange {
		t.Error("distance 0 with max 0 must be out of range (strict less-than)")
	}
}
