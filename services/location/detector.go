package location

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"serviceconnect/models"

	"github.com/mmcloughlin/geohash"
)

const geohashPrecision = 7

// Position is what the device reported: coordinates, or the reason it could
// not produce them ("denied", "unsupported", "unavailable"). Absent
// coordinates are nil.
type Position struct {
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Failure string   `json:"error"`
}

// At is a Position with both coordinates reported.
func At(lat, lng float64) Position {
	return Position{Lat: &lat, Lng: &lng}
}

// ParsePosition reads a position from form values. Blank or non-numeric
// coordinates are treated as absent.
func ParsePosition(lat, lng, failure string) Position {
	return Position{Lat: parseCoordinate(lat), Lng: parseCoordinate(lng), Failure: failure}
}

func parseCoordinate(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Err converts a reported failure into its sentinel error. A position with
// no failure and a missing coordinate is unavailable.
func (p Position) Err() error {
	switch strings.ToLower(strings.TrimSpace(p.Failure)) {
	case "":
		if p.Lat == nil || p.Lng == nil {
			return ErrUnavailable
		}
		return nil
	case "denied", "permission_denied":
		return ErrPermissionDenied
	case "unsupported":
		return ErrUnsupported
	default:
		return ErrUnavailable
	}
}

// Detector resolves device coordinates to a service area.
type Detector interface {
	Detect(ctx context.Context, lat, lng float64) (models.Location, error)
}

// StubDetector stands in for reverse geocoding: it always names the same
// city and PIN code, but keeps the coordinates it was given.
type StubDetector struct {
	City    string
	Pincode string
}

func NewStubDetector(city, pincode string) *StubDetector {
	return &StubDetector{City: city, Pincode: pincode}
}

func (d *StubDetector) Detect(ctx context.Context, lat, lng float64) (models.Location, error) {
	if err := ctx.Err(); err != nil {
		return models.Location{}, err
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return models.Location{}, fmt.Errorf("%w: (%f, %f)", ErrInvalidCoordinates, lat, lng)
	}
	return models.Location{
		City:    d.City,
		Pincode: d.Pincode,
		Lat:     &lat,
		Lng:     &lng,
		GeoHash: geohash.EncodeWithPrecision(lat, lng, geohashPrecision),
	}, nil
}
