package geo

import "math"

const earthRadiusMeters = 6371000

// Point is a WGS84 coordinate in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Distance returns the great-circle distance between a and b in meters.
func Distance(a, b Point) float64 {
	dLat := (b.Lat - a.Lat) * (math.Pi / 180.0)
	dLng := (b.Lng - a.Lng) * (math.Pi / 180.0)

	lat1 := a.Lat * (math.Pi / 180.0)
	lat2 := b.Lat * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1)*math.Cos(lat2)

	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Fence is a circular allowed area. A zero radius disables it.
type Fence struct {
	Center  Point
	RadiusM float64
}

func (f Fence) Enabled() bool {
	return f.RadiusM > 0
}

// Contains reports whether p lies inside the fence. A disabled fence
// contains every point.
func (f Fence) Contains(p Point) bool {
	if !f.Enabled() {
		return true
	}
	return Distance(f.Center, p) <= f.RadiusM
}
