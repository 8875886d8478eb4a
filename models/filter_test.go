package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterConfig_Defaults(t *testing.T) {
	for _, tc := range []struct{ distance, rating, verified string }{
		{"", "", ""},
		{"all", "all", "false"},
		{"ALL", " all ", "0"},
	} {
		cfg, err := ParseFilterConfig(tc.distance, tc.rating, tc.verified)
		require.NoError(t, err)
		assert.True(t, cfg.IsDefault())
		assert.Equal(t, DefaultFilterConfig(), cfg)
	}
}

func TestParseFilterConfig_Values(t *testing.T) {
	cfg, err := ParseFilterConfig("2", "4.5", "on")
	require.NoError(t, err)
	require.NotNil(t, cfg.MaxDistanceKm)
	require.NotNil(t, cfg.MinRating)
	assert.Equal(t, 2.0, *cfg.MaxDistanceKm)
	assert.Equal(t, 4.5, *cfg.MinRating)
	assert.True(t, cfg.VerifiedOnly)
	assert.Equal(t, "2", cfg.DistanceParam())
	assert.Equal(t, "4.5", cfg.RatingParam())
}

func TestParseFilterConfig_Invalid(t *testing.T) {
	_, err := ParseFilterConfig("near", "all", "")
	assert.True(t, errors.Is(err, ErrInvalidFilter))
	assert.Contains(t, err.Error(), "distance")

	_, err = ParseFilterConfig("all", "NaN", "")
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = ParseFilterConfig("all", "all", "maybe")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestFilterConfig_ParamsDefaultToAll(t *testing.T) {
	cfg := DefaultFilterConfig()
	assert.Equal(t, FilterAll, cfg.DistanceParam())
	assert.Equal(t, FilterAll, cfg.RatingParam())
}
