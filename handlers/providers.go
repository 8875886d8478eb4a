package handlers

import (
	"errors"
	"net/http"
	"net/url"

	providerRepo "serviceconnect/database/repository/provider"
	"serviceconnect/models"
	"serviceconnect/services/contact"
	"serviceconnect/services/directory"
	"serviceconnect/services/pages"
	"serviceconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler serves the provider listing and contact actions.
type ProviderHandler struct {
	Directory  directory.DirectoryService
	Dispatcher *contact.Dispatcher
}

func NewProviderHandler(dir directory.DirectoryService, dispatcher *contact.Dispatcher) *ProviderHandler {
	return &ProviderHandler{Directory: dir, Dispatcher: dispatcher}
}

// ProviderCard is one rendered provider with its contact targets.
type ProviderCard struct {
	models.Provider
	Initials    string
	DistanceTxt string
	CallLink    string
	MessageLink string
	QuoteLink   string
}

// FilterOption is one entry of a filter dropdown.
type FilterOption struct {
	Value    string
	Label    string
	Selected bool
}

type listingPage struct {
	AppName         string
	Params          pages.ListingParams
	State           pages.ListingState
	Listing         *directory.Listing
	Cards           []ProviderCard
	Empty           *pages.EmptyMessage
	Notice          *models.Notice
	DistanceOptions []FilterOption
	RatingOptions   []FilterOption
	ToggleLink      string
	ClearLink       string
	BackLink        string
}

var (
	distanceChoices = []FilterOption{{models.FilterAll, "Any distance", false}, {"2", "Within 2km", false}, {"5", "Within 5km", false}, {"10", "Within 10km", false}}
	ratingChoices   = []FilterOption{{models.FilterAll, "Any rating", false}, {"4", "4+ stars", false}, {"4.5", "4.5+ stars", false}}
)

func options(choices []FilterOption, selected string) []FilterOption {
	out := make([]FilterOption, len(choices))
	for i, o := range choices {
		o.Selected = o.Value == selected
		out[i] = o
	}
	return out
}

// listingRequest resolves the navigation parameters and listing state of a
// request. categoryID is empty for /search.
func listingRequest(c *gin.Context, categoryID string) (pages.ListingParams, pages.ListingState, error) {
	params := pages.ListingParamsFrom(categoryID, c.Query("category"), c.Query("city"), c.Query("pincode"))
	actions, err := pages.ListingActionsFromQuery(c.Request.URL.Query())
	if err != nil {
		return params, pages.ListingState{}, err
	}
	return params, pages.Reduce(pages.ListingState{}, actions...), nil
}

func nearbyQuery(p pages.ListingParams) providerRepo.NearbyQuery {
	return providerRepo.NearbyQuery{CategoryID: p.CategoryID, City: p.City, Pincode: p.Pincode}
}

func withValues(path string, v url.Values) string {
	if enc := v.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}

func (h *ProviderHandler) buildPage(c *gin.Context, params pages.ListingParams, state pages.ListingState, listing *directory.Listing) listingPage {
	logger := getLogger(c)
	page := listingPage{
		AppName:         h.Dispatcher.AppName,
		Params:          params,
		State:           state,
		Listing:         listing,
		DistanceOptions: options(distanceChoices, state.Filters.DistanceParam()),
		RatingOptions:   options(ratingChoices, state.Filters.RatingParam()),
		ToggleLink:      withValues(params.Path(), params.Values(pages.Reduce(state, pages.ToggleFilters{}))),
		ClearLink:       withValues(params.Path(), params.Values(pages.Reduce(state, pages.ClearFilters{}))),
		BackLink:        withValues("/", url.Values{"city": {params.City}, "pincode": {params.Pincode}}),
	}
	if msg, ok := pages.EmptyMessageFor(listing, params); ok {
		page.Empty = &msg
	}

	current := params.Values(state)
	for _, p := range listing.Providers {
		card := ProviderCard{
			Provider:    p,
			Initials:    directory.Initials(p.Name),
			DistanceTxt: directory.FormatDistance(p.Distance),
			QuoteLink:   withValues(contactPath(params, p.ID, contact.MethodQuote), current),
		}
		// html/template rejects tel: URLs; link through the contact redirect.
		if _, err := h.Dispatcher.Dispatch(p, contact.MethodCall); err == nil {
			card.CallLink = contactPath(params, p.ID, contact.MethodCall)
		} else {
			logger.Debug("No call target for provider", zap.String("provider", p.ID), zap.Error(err))
		}
		if a, err := h.Dispatcher.Dispatch(p, contact.MethodMessage); err == nil {
			card.MessageLink = a.Target
		}
		page.Cards = append(page.Cards, card)
	}
	return page
}

// categoryParam reads :categoryId, where "all" means every category.
func categoryParam(c *gin.Context) string {
	categoryID := c.Param("categoryId")
	if categoryID == "all" {
		return ""
	}
	return categoryID
}

func contactPath(p pages.ListingParams, providerID string, m contact.Method) string {
	categoryID := p.CategoryID
	if categoryID == "" {
		categoryID = "all"
	}
	return "/providers/" + url.PathEscape(categoryID) + "/contact/" + url.PathEscape(providerID) + "/" + string(m)
}

func (h *ProviderHandler) renderListing(c *gin.Context, categoryID string, notice *models.Notice) {
	logger := getLogger(c)
	params, state, err := listingRequest(c, categoryID)
	if err != nil {
		logger.Info("Invalid listing filter", zap.Error(err))
		c.String(http.StatusBadRequest, "Invalid filter: %s", err.Error())
		return
	}
	listing, err := h.Directory.Listing(c.Request.Context(), nearbyQuery(params), state.Query, state.Filters)
	if err != nil {
		logger.Error("Failed to build listing", zap.String("category", categoryID), zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to load providers")
		return
	}
	page := h.buildPage(c, params, state, listing)
	page.Notice = notice
	c.HTML(http.StatusOK, "providers.html", page)
}

// ListingPage handles GET /providers/:categoryId.
func (h *ProviderHandler) ListingPage(c *gin.Context) {
	h.renderListing(c, categoryParam(c), nil)
}

// SearchPage handles GET /search: a listing across every category.
func (h *ProviderHandler) SearchPage(c *gin.Context) {
	h.renderListing(c, "", nil)
}

func (h *ProviderHandler) dispatch(c *gin.Context) (contact.Action, int, error) {
	method, err := contact.ParseMethod(c.Param("method"))
	if err != nil {
		return contact.Action{}, http.StatusBadRequest, err
	}
	p, err := h.Directory.Provider(c.Request.Context(), c.Param("providerId"))
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return contact.Action{}, http.StatusNotFound, err
		}
		return contact.Action{}, http.StatusInternalServerError, err
	}
	action, err := h.Dispatcher.Dispatch(*p, method)
	if err != nil {
		return contact.Action{}, http.StatusUnprocessableEntity, err
	}
	getLogger(c).Info("Contact dispatched",
		zap.String("provider", p.ID),
		zap.String("method", string(method)),
		zap.String("kind", string(action.Kind)))
	return action, http.StatusOK, nil
}

// ContactRedirect handles GET /providers/:categoryId/contact/:providerId/:method.
func (h *ProviderHandler) ContactRedirect(c *gin.Context) {
	action, status, err := h.dispatch(c)
	if err != nil {
		getLogger(c).Warn("Contact dispatch failed", zap.Error(err))
		c.String(status, "%s", err.Error())
		return
	}
	if action.Kind == contact.KindNotice {
		h.renderListing(c, categoryParam(c), action.Notice)
		return
	}
	c.Redirect(http.StatusFound, action.Target)
}

// ListingAPI handles GET /api/providers/:categoryId.
func (h *ProviderHandler) ListingAPI(c *gin.Context) {
	params, state, err := listingRequest(c, categoryParam(c))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}
	listing, err := h.Directory.Listing(c.Request.Context(), nearbyQuery(params), state.Query, state.Filters)
	if err != nil {
		getLogger(c).Error("Failed to build listing", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load providers", err.Error())
		return
	}
	resp := gin.H{"params": params, "state": state, "listing": listing}
	if msg, ok := pages.EmptyMessageFor(listing, params); ok {
		resp["empty"] = msg
	}
	c.JSON(http.StatusOK, resp)
}

// ContactAPI handles GET /api/providers/:categoryId/contact/:providerId/:method.
func (h *ProviderHandler) ContactAPI(c *gin.Context) {
	action, status, err := h.dispatch(c)
	if err != nil {
		utils.JSONError(c, status, "Contact failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, action)
}
