package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FilterAll is the wire value meaning "no constraint".
const FilterAll = "all"

var ErrInvalidFilter = errors.New("invalid filter value")

// FilterConfig holds the narrowing criteria chosen on the listing page.
// A nil threshold means the criterion is not applied.
type FilterConfig struct {
	MaxDistanceKm *float64 `json:"maxDistanceKm,omitempty"`
	MinRating     *float64 `json:"minRating,omitempty"`
	VerifiedOnly  bool     `json:"verifiedOnly"`
}

// DefaultFilterConfig returns {all, all, false}.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{}
}

func (f FilterConfig) IsDefault() bool {
	return f.MaxDistanceKm == nil && f.MinRating == nil && !f.VerifiedOnly
}

// DistanceParam renders the distance threshold as its wire value.
func (f FilterConfig) DistanceParam() string {
	return thresholdParam(f.MaxDistanceKm)
}

// RatingParam renders the rating threshold as its wire value.
func (f FilterConfig) RatingParam() string {
	return thresholdParam(f.MinRating)
}

// ParseThreshold parses "all" (or empty) to nil and anything else to a number.
func ParseThreshold(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, FilterAll) {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, s)
	}
	return &v, nil
}

// ParseFilterConfig builds a FilterConfig from its wire form.
func ParseFilterConfig(distance, rating, verified string) (FilterConfig, error) {
	maxKm, err := ParseThreshold(distance)
	if err != nil {
		return FilterConfig{}, fmt.Errorf("distance: %w", err)
	}
	minRating, err := ParseThreshold(rating)
	if err != nil {
		return FilterConfig{}, fmt.Errorf("rating: %w", err)
	}
	verifiedOnly, err := parseFlag(verified)
	if err != nil {
		return FilterConfig{}, fmt.Errorf("verified: %w", err)
	}
	return FilterConfig{MaxDistanceKm: maxKm, MinRating: minRating, VerifiedOnly: verifiedOnly}, nil
}

func parseFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "0", "off":
		return false, nil
	case "true", "1", "on":
		return true, nil
	}
	return false, fmt.Errorf("%w: %q", ErrInvalidFilter, s)
}

func thresholdParam(v *float64) string {
	if v == nil {
		return FilterAll
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
