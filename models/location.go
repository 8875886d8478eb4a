package models

import "fmt"

// Location is a customer's service area. Coordinates are only present when
// the location came from device detection.
type Location struct {
	City    string   `json:"city"`
	Pincode string   `json:"pincode"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
	GeoHash string   `json:"geohash,omitempty"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s, %s", l.City, l.Pincode)
}
