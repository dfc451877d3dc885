package geo

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrLocationUnsupported = errors.New("geolocation is not supported by this browser")
	ErrLocationDenied      = errors.New("location permission was denied")
	ErrLocationTimeout     = errors.New("timed out waiting for location")
)

// LocationError reports why coordinates could not be obtained.
type LocationError struct {
	Err error
}

func (e *LocationError) Error() string {
	return e.Err.Error()
}

func (e *LocationError) Unwrap() error {
	return e.Err
}

// Code is the machine-readable reason sent to clients.
func (e *LocationError) Code() string {
	switch {
	case errors.Is(e.Err, ErrLocationUnsupported):
		return "LOCATION_UNSUPPORTED"
	case errors.Is(e.Err, ErrLocationDenied):
		return "LOCATION_DENIED"
	case errors.Is(e.Err, ErrLocationTimeout):
		return "LOCATION_TIMEOUT"
	default:
		return "LOCATION_UNAVAILABLE"
	}
}

// Locator resolves the caller's current position.
type Locator interface {
	Locate(ctx context.Context) (Point, error)
}

// Reported is a position forwarded by the browser, either coordinates or
// the geolocation API's failure reason.
type Reported struct {
	Lat      string
	Lng      string
	GeoError string // unsupported, denied, timeout
}

// FromForm reads lat, lng and geoError through get (for example r.FormValue).
func FromForm(get func(string) string) Reported {
	return Reported{
		Lat:      strings.TrimSpace(get("lat")),
		Lng:      strings.TrimSpace(get("lng")),
		GeoError: strings.TrimSpace(get("geoError")),
	}
}

// Locate implements Locator. A context that ends first is a timeout.
func (r Reported) Locate(ctx context.Context) (Point, error) {
	if err := ctx.Err(); err != nil {
		return Point{}, &LocationError{Err: ErrLocationTimeout}
	}

	switch strings.ToLower(r.GeoError) {
	case "":
	case "unsupported":
		return Point{}, &LocationError{Err: ErrLocationUnsupported}
	case "denied", "permission_denied":
		return Point{}, &LocationError{Err: ErrLocationDenied}
	case "timeout":
		return Point{}, &LocationError{Err: ErrLocationTimeout}
	default:
		return Point{}, &LocationError{Err: ErrLocationDenied}
	}

	if r.Lat == "" || r.Lng == "" {
		return Point{}, &LocationError{Err: ErrLocationUnsupported}
	}

	lat, ok := parseCoordinate(r.Lat, 90)
	if !ok {
		return Point{}, &LocationError{Err: ErrLocationUnsupported}
	}
	lng, ok := parseCoordinate(r.Lng, 180)
	if !ok {
		return Point{}, &LocationError{Err: ErrLocationUnsupported}
	}

	return Point{Lat: lat, Lng: lng}, nil
}

// parseCoordinate accepts a finite value within [-limit, limit].
func parseCoordinate(s string, limit float64) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v < -limit || v > limit {
		return 0, false
	}
	return v, true
}
