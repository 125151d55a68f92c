package geo

import "math"

const earthRadiusMeters = 6371000

// Distance menghitung jarak haversine antara dua titik koordinat dalam Meter.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	// Konversi ke Radian
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	// Rumus Haversine
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Verdict is the result of a geofence evaluation for one observed coordinate.
type Verdict struct {
	DistanceMeters float64
	InRange        bool
}

// Evaluator checks observed coordinates against the office reference point.
// MaxDistanceMeters is exclusive: a point exactly on the boundary is out of range.
type Evaluator struct {
	Latitude          float64
	Longitude         float64
	MaxDistanceMeters float64
}

func NewEvaluator(lat, lon, maxDistanceMeters float64) Evaluator {
	return Evaluator{
		Latitude:          lat,
		Longitude:         lon,
		MaxDistanceMeters: maxDistanceMeters,
	}
}

func (e Evaluator) Evaluate(lat, lon float64) Verdict {
	d := Distance(e.Latitude, e.Longitude, lat, lon)
	return Verdict{
		DistanceMeters: d,
		InRange:        d < e.MaxDistanceMeters,
	}
}
