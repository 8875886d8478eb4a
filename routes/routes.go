package routes

import (
	"net/http"
	"time"

	"serviceconnect/handlers"
	"serviceconnect/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes registers the server-rendered pages.
func RegisterPageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.HomePage)
	r.POST("/location", hb.SubmitLocation)
	r.POST("/location/detect", hb.DetectLocation)
	r.GET("/search", hb.SearchPage)

	providers := r.Group("/providers")
	{
		providers.GET("/:categoryId", hb.ListingPage)
		providers.GET("/:categoryId/contact/:providerId/:method", hb.ContactRedirect)
	}
}

// RegisterAPIRoutes registers the JSON API.
func RegisterAPIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/categories", hb.ListCategoriesAPI)
		api.POST("/location", hb.SubmitLocationAPI)
		api.POST("/location/detect", hb.DetectLocationAPI)
		api.GET("/providers/:categoryId", hb.ListingAPI)
		api.GET("/providers/:categoryId/contact/:providerId/:method", hb.ContactAPI)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// background health monitor.
func RegisterHealthRoute(r *gin.Engine, appName string) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		if !status.Healthy() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "checks": status})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm " + appName, "checks": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, appName string, allowOrigins []string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: !allowsAll(allowOrigins),
		MaxAge:           12 * time.Hour,
	}))

	RegisterPageRoutes(r, hb)
	RegisterAPIRoutes(r, hb)
	RegisterHealthRoute(r, appName)
	r.NoRoute(hb.NotFound)
}

func allowsAll(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
