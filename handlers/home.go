package handlers

import (
	"errors"
	"net/http"

	categoryRepo "serviceconnect/database/repository/category"
	"serviceconnect/models"
	"serviceconnect/services/location"
	"serviceconnect/services/pages"
	"serviceconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HomeHandler serves the landing page and location capture.
type HomeHandler struct {
	Categories categoryRepo.CategoryRepository
	Detector   location.Detector
	AppName    string
}

func NewHomeHandler(categories categoryRepo.CategoryRepository, detector location.Detector, appName string) *HomeHandler {
	return &HomeHandler{Categories: categories, Detector: detector, AppName: appName}
}

// CategoryCard is one clickable category on the landing page.
type CategoryCard struct {
	models.ServiceCategory
	Link string
}

type homePage struct {
	AppName     string
	State       pages.HomeState
	FormCity    string
	FormPincode string
	Categories  []CategoryCard
	Notice      *models.Notice
}

func (h *HomeHandler) render(c *gin.Context, status int, state pages.HomeState, notice *models.Notice) {
	logger := getLogger(c)

	page := homePage{AppName: h.AppName, State: state, Notice: notice}
	page.FormCity, page.FormPincode = state.Selector.Prefill()

	if !state.ShowLocationSelector() {
		categories, err := h.Categories.List(c.Request.Context())
		if err != nil {
			logger.Error("Failed to list categories", zap.Error(err))
			c.String(http.StatusInternalServerError, "Failed to load categories")
			return
		}
		for _, cat := range categories {
			page.Categories = append(page.Categories, CategoryCard{ServiceCategory: cat, Link: state.CategoryLink(cat)})
		}
	}
	c.HTML(status, "home.html", page)
}

// HomePage handles GET /. A non-blank q with a captured location is a search
// and is forwarded to the search listing.
func (h *HomeHandler) HomePage(c *gin.Context) {
	state := pages.HomeFromParams(c.Query("city"), c.Query("pincode"), c.Query("change") != "", c.Query("q"))
	if link, ok := state.SearchLink(); ok && !state.ShowLocationSelector() {
		c.Redirect(http.StatusFound, link)
		return
	}
	h.render(c, http.StatusOK, state, nil)
}

// SubmitLocation handles POST /location (manual entry form).
func (h *HomeHandler) SubmitLocation(c *gin.Context) {
	city, pincode := c.PostForm("city"), c.PostForm("pincode")
	state := pages.HomeFromParams("", "", false, "")

	next, err := state.Selector.Submit(city, pincode)
	if err != nil {
		getLogger(c).Info("Rejected manual location", zap.String("city", city), zap.String("pincode", pincode))
		notice := location.NoticeFor(err)
		page := homePage{AppName: h.AppName, State: state, FormCity: city, FormPincode: pincode, Notice: &notice}
		c.HTML(http.StatusBadRequest, "home.html", page)
		return
	}
	c.Redirect(http.StatusSeeOther, state.WithSelector(next).HomeLink())
}

// DetectLocation handles POST /location/detect with the device position.
func (h *HomeHandler) DetectLocation(c *gin.Context) {
	logger := getLogger(c)
	state := pages.HomeFromParams("", "", false, "")

	pos := location.ParsePosition(c.PostForm("lat"), c.PostForm("lng"), c.PostForm("error"))
	next, notice, err := state.Selector.Detect(c.Request.Context(), h.Detector, pos)
	if err != nil {
		logger.Warn("Location detection failed", zap.Error(err))
		h.render(c, http.StatusOK, state, &notice)
		return
	}
	logger.Info("Location detected", zap.String("city", next.Location().City), zap.String("geohash", next.Location().GeoHash))
	c.Redirect(http.StatusSeeOther, state.WithSelector(next).HomeLink())
}

// ListCategoriesAPI handles GET /api/categories.
func (h *HomeHandler) ListCategoriesAPI(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list categories", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list categories", err.Error())
		return
	}
	state := pages.HomeFromParams(c.Query("city"), c.Query("pincode"), false, "")

	type categoryResponse struct {
		models.ServiceCategory
		Link string `json:"link"`
	}
	out := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, categoryResponse{ServiceCategory: cat, Link: state.CategoryLink(cat)})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out, "location": state.Location()})
}

type locationRequest struct {
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

// SubmitLocationAPI handles POST /api/location.
func (h *HomeHandler) SubmitLocationAPI(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	next, err := location.NewSelector(nil).Submit(req.City, req.Pincode)
	if err != nil {
		notice := location.NoticeFor(err)
		utils.JSONError(c, http.StatusBadRequest, notice.Title, notice.Description)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state":    next.State(),
		"location": next.Location(),
		"homeLink": pages.HomeState{Selector: next}.HomeLink(),
	})
}

// DetectLocationAPI handles POST /api/location/detect. Detection failures are
// advisory and still answer 200.
func (h *HomeHandler) DetectLocationAPI(c *gin.Context) {
	var pos location.Position
	if err := c.ShouldBindJSON(&pos); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	next, notice, err := location.NewSelector(nil).Detect(c.Request.Context(), h.Detector, pos)
	if err != nil && !isAdvisory(err) {
		getLogger(c).Warn("Location detection failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{
		"state":    next.State(),
		"location": next.Location(),
		"notice":   notice,
	})
}

func isAdvisory(err error) bool {
	return errors.Is(err, location.ErrPermissionDenied) ||
		errors.Is(err, location.ErrUnsupported) ||
		errors.Is(err, location.ErrUnavailable)
}
