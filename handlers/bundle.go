// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Landing page and location capture
	HomePage       gin.HandlerFunc
	SubmitLocation gin.HandlerFunc
	DetectLocation gin.HandlerFunc

	// Provider listing and contact
	ListingPage     gin.HandlerFunc
	SearchPage      gin.HandlerFunc
	ContactRedirect gin.HandlerFunc

	// JSON API
	ListCategoriesAPI gin.HandlerFunc
	SubmitLocationAPI gin.HandlerFunc
	DetectLocationAPI gin.HandlerFunc
	ListingAPI        gin.HandlerFunc
	ContactAPI        gin.HandlerFunc

	NotFound gin.HandlerFunc
}

// NewHandlerBundle wires the page and API handlers.
func NewHandlerBundle(home *HomeHandler, providers *ProviderHandler) *HandlerBundle {
	return &HandlerBundle{
		HomePage:       home.HomePage,
		SubmitLocation: home.SubmitLocation,
		DetectLocation: home.DetectLocation,

		ListingPage:     providers.ListingPage,
		SearchPage:      providers.SearchPage,
		ContactRedirect: providers.ContactRedirect,

		ListCategoriesAPI: home.ListCategoriesAPI,
		SubmitLocationAPI: home.SubmitLocationAPI,
		DetectLocationAPI: home.DetectLocationAPI,
		ListingAPI:        providers.ListingAPI,
		ContactAPI:        providers.ContactAPI,

		NotFound: NotFound(home.AppName),
	}
}
