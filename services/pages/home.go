package pages

import (
	"net/url"
	"strings"

	"serviceconnect/models"
	"serviceconnect/services/location"
)

// HomeState is the landing page state: the location prompt and the search box.
type HomeState struct {
	Selector location.Selector
	Query    string
}

// HomeFromParams rebuilds the landing page state from URL parameters. A
// complete city/pincode pair means the location was already captured; change
// reopens the prompt with that pair prefilled.
func HomeFromParams(city, pincode string, change bool, query string) HomeState {
	sel := location.NewSelector(nil)
	if next, err := sel.Submit(city, pincode); err == nil {
		sel = next
		if change {
			sel = sel.Change()
		}
	}
	return HomeState{Selector: sel, Query: query}
}

func (h HomeState) ShowLocationSelector() bool {
	return h.Selector.State() == location.Prompting
}

func (h HomeState) Location() *models.Location {
	return h.Selector.Location()
}

// WithSelector returns a copy of h with the selector replaced.
func (h HomeState) WithSelector(s location.Selector) HomeState {
	h.Selector = s
	return h
}

func (h HomeState) locationValues() url.Values {
	v := url.Values{}
	city, pincode := "", ""
	if loc := h.Location(); loc != nil {
		city, pincode = loc.City, loc.Pincode
	}
	v.Set("city", city)
	v.Set("pincode", pincode)
	return v
}

// HomeLink is the landing page URL that re-threads the captured location.
func (h HomeState) HomeLink() string {
	loc := h.Location()
	if loc == nil {
		return "/"
	}
	return "/?" + h.locationValues().Encode()
}

// ChangeLocationLink reopens the prompt with the current location prefilled.
func (h HomeState) ChangeLocationLink() string {
	v := h.locationValues()
	v.Set("change", "1")
	return "/?" + v.Encode()
}

// CategoryLink is the listing page URL for a category, carrying the location.
func (h HomeState) CategoryLink(c models.ServiceCategory) string {
	v := h.locationValues()
	v.Set("category", c.Name)
	return "/providers/" + url.PathEscape(c.ID) + "?" + v.Encode()
}

// SearchLink is the search URL for the current query; ok is false when the
// query is blank.
func (h HomeState) SearchLink() (link string, ok bool) {
	q := strings.TrimSpace(h.Query)
	if q == "" {
		return "", false
	}
	v := h.locationValues()
	v.Set("q", q)
	return "/search?" + v.Encode(), true
}
