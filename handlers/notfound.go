package handlers

import (
	"net/http"
	"strings"

	"serviceconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotFound renders the 404 page, or a JSON error under /api/.
func NotFound(appName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		getLogger(c).Error("404 Error: User attempted to access non-existent route", zap.String("path", path))

		if strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, utils.ErrorResponse{Message: "Not Found", Details: "no route for " + path})
			return
		}
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{"AppName": appName, "Path": path})
	}
}
