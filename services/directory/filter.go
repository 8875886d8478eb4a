package directory

import (
	"sort"
	"strings"

	"serviceconnect/models"
)

// Apply derives the display list from a directory, a free-text query and a
// filter configuration. The result is a new slice sorted by ascending
// distance; providers at equal distance keep their directory order. dir is
// never modified.
func Apply(dir []models.Provider, query string, f models.FilterConfig) []models.Provider {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Provider, 0, len(dir))
	for _, p := range dir {
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		if f.MaxDistanceKm != nil && p.Distance > *f.MaxDistanceKm {
			continue
		}
		if f.MinRating != nil && p.Rating < *f.MinRating {
			continue
		}
		if f.VerifiedOnly && !p.Verified {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	return out
}

// q must already be lower-cased.
func matchesQuery(p models.Provider, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Service), q)
}
