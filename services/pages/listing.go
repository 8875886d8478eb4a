package pages

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"serviceconnect/models"
	"serviceconnect/services/directory"
)

const (
	DefaultCategory = "Services"
	DefaultCity     = "Your City"
)

// ListingParams are the navigation parameters of the listing page.
type ListingParams struct {
	CategoryID string `json:"categoryId"`
	Category   string `json:"category"`
	City       string `json:"city"`
	Pincode    string `json:"pincode"`
}

// ListingParamsFrom applies the defaults for absent parameters.
func ListingParamsFrom(categoryID, category, city, pincode string) ListingParams {
	if strings.TrimSpace(category) == "" {
		category = DefaultCategory
	}
	if strings.TrimSpace(city) == "" {
		city = DefaultCity
	}
	return ListingParams{CategoryID: categoryID, Category: category, City: city, Pincode: pincode}
}

// ListingState is the user-controlled part of the listing page.
type ListingState struct {
	Query       string              `json:"query"`
	Filters     models.FilterConfig `json:"filters"`
	ShowFilters bool                `json:"showFilters"`
}

// ListingAction is a single user input on the listing page.
type ListingAction interface {
	apply(ListingState) ListingState
}

type (
	SetQuery      struct{ Query string }
	SetDistance   struct{ MaxKm *float64 }
	SetRating     struct{ Min *float64 }
	SetVerified   struct{ Verified bool }
	ToggleFilters struct{}
	ClearFilters  struct{}
)

func (a SetQuery) apply(s ListingState) ListingState {
	s.Query = a.Query
	return s
}

func (a SetDistance) apply(s ListingState) ListingState {
	s.Filters.MaxDistanceKm = copyFloat(a.MaxKm)
	return s
}

func (a SetRating) apply(s ListingState) ListingState {
	s.Filters.MinRating = copyFloat(a.Min)
	return s
}

func (a SetVerified) apply(s ListingState) ListingState {
	s.Filters.VerifiedOnly = a.Verified
	return s
}

func (ToggleFilters) apply(s ListingState) ListingState {
	s.ShowFilters = !s.ShowFilters
	return s
}

// ClearFilters resets every filter and the search text.
func (ClearFilters) apply(s ListingState) ListingState {
	s.Filters = models.DefaultFilterConfig()
	s.Query = ""
	return s
}

// Reduce applies actions in order and returns the resulting state.
func Reduce(s ListingState, actions ...ListingAction) ListingState {
	s.Filters = cloneFilters(s.Filters)
	for _, a := range actions {
		s = a.apply(s)
	}
	return s
}

// ListingActionsFromQuery turns listing page URL parameters into actions.
func ListingActionsFromQuery(v url.Values) ([]ListingAction, error) {
	var actions []ListingAction
	if q := v.Get("q"); q != "" {
		actions = append(actions, SetQuery{Query: q})
	}
	filters, err := models.ParseFilterConfig(v.Get("distance"), v.Get("rating"), v.Get("verified"))
	if err != nil {
		return nil, err
	}
	actions = append(actions,
		SetDistance{MaxKm: filters.MaxDistanceKm},
		SetRating{Min: filters.MinRating},
		SetVerified{Verified: filters.VerifiedOnly},
	)
	if show, _ := strconv.ParseBool(v.Get("filters")); show {
		actions = append(actions, ToggleFilters{})
	}
	if reset, _ := strconv.ParseBool(v.Get("clear")); reset {
		actions = append(actions, ClearFilters{})
	}
	return actions, nil
}

// Values encodes the params and state back into listing page URL parameters.
func (p ListingParams) Values(s ListingState) url.Values {
	v := url.Values{}
	v.Set("category", p.Category)
	v.Set("city", p.City)
	v.Set("pincode", p.Pincode)
	if s.Query != "" {
		v.Set("q", s.Query)
	}
	if !s.Filters.IsDefault() {
		v.Set("distance", s.Filters.DistanceParam())
		v.Set("rating", s.Filters.RatingParam())
		if s.Filters.VerifiedOnly {
			v.Set("verified", "true")
		}
	}
	if s.ShowFilters {
		v.Set("filters", "true")
	}
	return v
}

// Path is the listing page path for these params.
func (p ListingParams) Path() string {
	if p.CategoryID == "" {
		return "/search"
	}
	return "/providers/" + url.PathEscape(p.CategoryID)
}

// SearchPlaceholder is the hint shown in the listing search box.
func (p ListingParams) SearchPlaceholder() string {
	return fmt.Sprintf("Search %s providers...", strings.ToLower(p.Category))
}

// EmptyMessage is the copy shown in place of the results.
type EmptyMessage struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Action string `json:"action"`
}

// EmptyMessageFor returns the copy for an empty listing, and false when the
// listing has results.
func EmptyMessageFor(l *directory.Listing, p ListingParams) (EmptyMessage, bool) {
	switch l.EmptyReason {
	case directory.EmptyDirectory:
		return EmptyMessage{
			Title:  "No providers found in your area",
			Body:   fmt.Sprintf("Be the first provider in %s for %s!", p.City, strings.ToLower(p.Category)),
			Action: "Become a Provider",
		}, true
	case directory.EmptyNoMatch:
		return EmptyMessage{
			Title:  "No results match your search",
			Body:   "Try adjusting your search terms or filters",
			Action: "Clear Filters",
		}, true
	}
	return EmptyMessage{}, false
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

func cloneFilters(f models.FilterConfig) models.FilterConfig {
	f.MaxDistanceKm = copyFloat(f.MaxDistanceKm)
	f.MinRating = copyFloat(f.MinRating)
	return f
}
