package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	categoryRepo "serviceconnect/database/repository/category"
	providerRepo "serviceconnect/database/repository/provider"
	"serviceconnect/handlers"
	"serviceconnect/models"
	"serviceconnect/routes"
	"serviceconnect/services/contact"
	"serviceconnect/services/directory"
	"serviceconnect/services/location"
	"serviceconnect/views"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const area = "city=Bangalore&pincode=560001"

type emptyRepo struct{}

func (emptyRepo) FetchNearby(context.Context, providerRepo.NearbyQuery) ([]models.Provider, error) {
	return []models.Provider{}, nil
}

func (emptyRepo) GetByID(context.Context, string) (*models.Provider, error) {
	return nil, providerRepo.ErrProviderNotFound
}

func newRouter(t *testing.T) *gin.Engine {
	return newRouterWith(t, providerRepo.NewFixtureRepo())
}

func newRouterWith(t *testing.T, repo providerRepo.ProviderRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := directory.NewDefaultDirectoryService(repo, zap.NewNop())
	home := handlers.NewHomeHandler(categoryRepo.NewStaticCatalog(), location.NewStubDetector("Bangalore", "560001"), "ServiceConnect")
	providers := handlers.NewProviderHandler(dir, contact.NewDispatcher("ServiceConnect"))

	r := gin.New()
	tmpl, err := views.Templates()
	require.NoError(t, err)
	r.SetHTMLTemplate(tmpl)
	routes.RegisterRoutes(r, handlers.NewHandlerBundle(home, providers), "ServiceConnect", []string{"*"})
	return r
}

func do(r http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHomePage(t *testing.T) {
	r := newRouter(t)

	t.Run("prompts for location", func(t *testing.T) {
		w := do(r, http.MethodGet, "/", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Find Services Near You")
		assert.NotContains(t, w.Body.String(), "Popular Services in")
	})

	t.Run("captured location shows categories", func(t *testing.T) {
		w := do(r, http.MethodGet, "/?"+area, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Popular Services in Bangalore")
		assert.Contains(t, body, "/providers/plumbing?")
		assert.Contains(t, body, "House Help")
		assert.NotContains(t, body, "Find Services Near You")
	})

	t.Run("change reopens the prompt prefilled", func(t *testing.T) {
		w := do(r, http.MethodGet, "/?"+area+"&change=1", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Find Services Near You")
		assert.Contains(t, w.Body.String(), `value="Bangalore"`)
	})

	t.Run("query redirects to search", func(t *testing.T) {
		w := do(r, http.MethodGet, "/?"+area+"&q=+plumber+", nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/search?"+area+"&q=plumber", w.Header().Get("Location"))
	})

	t.Run("blank query stays home", func(t *testing.T) {
		w := do(r, http.MethodGet, "/?"+area+"&q=+++", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSubmitLocation(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/location", url.Values{"city": {" Chennai "}, "pincode": {"600001"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?city=Chennai&pincode=600001", w.Header().Get("Location"))

	w = do(r, http.MethodPost, "/location", url.Values{"city": {"Chennai"}, "pincode": {"  "}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Required fields")
	assert.Contains(t, w.Body.String(), `value="Chennai"`)
}

func TestDetectLocation(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/location/detect", url.Values{"lat": {"12.9716"}, "lng": {"77.5946"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?"+area, w.Header().Get("Location"))

	w = do(r, http.MethodPost, "/location/detect", url.Values{"error": {"denied"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Location access denied")
	assert.Contains(t, w.Body.String(), "Find Services Near You")

	for name, form := range map[string]url.Values{
		"no fields":     {},
		"blank fields":  {"lat": {""}, "lng": {""}, "error": {""}},
		"latitude only": {"lat": {"12.9716"}},
	} {
		t.Run(name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/location/detect", form)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Empty(t, w.Header().Get("Location"))
			assert.Contains(t, w.Body.String(), "Location access denied")
		})
	}
}

func TestListingPage(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		name     string
		target   string
		code     int
		contains []string
		excludes []string
	}{
		{
			name:     "category listing",
			target:   "/providers/plumbing?category=Plumbing&" + area,
			code:     http.StatusOK,
			contains: []string{"Rajesh Kumar", "Priya Sharma", "Murugan", "3 providers found", "800m away", "Search plumbing providers..."},
		},
		{
			name:     "every category lists the directory",
			target:   "/providers/tutoring?category=Tutoring&" + area,
			code:     http.StatusOK,
			contains: []string{"3 providers found"},
			excludes: []string{"No providers found in your area"},
		},
		{
			name:     "search within a category page",
			target:   "/providers/plumbing?category=Plumbing&q=murugan&" + area,
			code:     http.StatusOK,
			contains: []string{"Murugan", "1 provider found"},
			excludes: []string{"Rajesh Kumar"},
		},
		{
			name:     "all categories",
			target:   "/providers/all?" + area,
			code:     http.StatusOK,
			contains: []string{"Rajesh Kumar", "3 providers found"},
			excludes: []string{"No providers found in your area"},
		},
		{
			name:     "no match",
			target:   "/providers/plumbing?category=Plumbing&q=zzz&" + area,
			code:     http.StatusOK,
			contains: []string{"No results match your search", "Clear Filters"},
		},
		{
			name:     "defaults when params are missing",
			target:   "/providers/plumbing",
			code:     http.StatusOK,
			contains: []string{"Services", "Your City"},
		},
		{
			name:     "filter panel",
			target:   "/providers/carpentry?filters=true&" + area,
			code:     http.StatusOK,
			contains: []string{"Within 2km", `value="4.5"`, "4.5&#43; stars", "Clear All"},
		},
		{
			name:     "verified filter",
			target:   "/providers/carpentry?verified=true&" + area,
			code:     http.StatusOK,
			contains: []string{"2 providers found", "Rajesh Kumar", "Priya Sharma"},
			excludes: []string{"Murugan"},
		},
		{
			name:     "verified search with no match",
			target:   "/providers/carpentry?verified=true&q=murugan&" + area,
			code:     http.StatusOK,
			contains: []string{"No results match your search"},
		},
		{
			name:   "bad filter",
			target: "/providers/plumbing?distance=far",
			code:   http.StatusBadRequest,
		},
		{
			name:     "search across categories",
			target:   "/search?q=priya&" + area,
			code:     http.StatusOK,
			contains: []string{"Priya Sharma", "1 provider found"},
			excludes: []string{"Rajesh Kumar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.code, w.Code)
			for _, s := range tt.contains {
				assert.Contains(t, w.Body.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, w.Body.String(), s)
			}
		})
	}
}

func TestListingPage_EmptyDirectory(t *testing.T) {
	r := newRouterWith(t, emptyRepo{})

	w := do(r, http.MethodGet, "/providers/tutoring?category=Tutoring&"+area, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No providers found in your area")
	assert.Contains(t, w.Body.String(), "Be the first provider in Bangalore for tutoring!")
	assert.Contains(t, w.Body.String(), "0 providers found")

	w = do(r, http.MethodGet, "/api/providers/tutoring", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"emptyReason":"directory"`)
	assert.Contains(t, w.Body.String(), "Become a Provider")
}

func TestListingPage_ContactLinks(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodGet, "/providers/plumbing?category=Plumbing&"+area, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.NotContains(t, body, "ZgotmplZ")
	assert.Contains(t, body, `<a class="call" href="/providers/plumbing/contact/1/call">Call</a>`)
	assert.Contains(t, body, `href="https://wa.me/919876543210?text=Hi%20Rajesh%20Kumar`)

	// The rendered call link leads to the dialer.
	w = do(r, http.MethodGet, "/providers/plumbing/contact/1/call", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "tel:+91 98765 43210", w.Header().Get("Location"))

	w = do(r, http.MethodGet, "/search?q=priya&"+area, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="/providers/all/contact/2/call"`)
	assert.NotContains(t, w.Body.String(), "ZgotmplZ")
}

func TestContactRedirect(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodGet, "/providers/plumbing/contact/1/call", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "tel:+91 98765 43210", w.Header().Get("Location"))

	w = do(r, http.MethodGet, "/providers/plumbing/contact/1/whatsapp", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "https://wa.me/919876543210?text=Hi%20Rajesh%20Kumar"))

	w = do(r, http.MethodGet, "/providers/plumbing/contact/1/quote?category=Plumbing&"+area, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Quote Request")
	assert.Contains(t, w.Body.String(), "Rajesh Kumar")

	w = do(r, http.MethodGet, "/providers/all/contact/2/quote", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "3 providers found")

	w = do(r, http.MethodGet, "/providers/plumbing/contact/99/call", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/providers/plumbing/contact/1/fax", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI(t *testing.T) {
	r := newRouter(t)

	t.Run("categories", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/categories?"+area, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Categories []struct {
				ID   string `json:"id"`
				Link string `json:"link"`
			} `json:"categories"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Categories, 8)
		assert.Equal(t, "plumbing", resp.Categories[0].ID)
		assert.Equal(t, "/providers/plumbing?category=Plumbing&"+area, resp.Categories[0].Link)
	})

	t.Run("submit location", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/location", `{"city":"Pune","pincode":"411001"}`)
		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "captured", resp["state"])
		assert.Equal(t, "/?city=Pune&pincode=411001", resp["homeLink"])

		w = doJSON(r, http.MethodPost, "/api/location", `{"city":"","pincode":"411001"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Required fields")
	})

	t.Run("detect location", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/location/detect", `{"error":"denied"}`)
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			State  string `json:"state"`
			Notice struct {
				Title string `json:"title"`
			} `json:"notice"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "prompting", resp.State)
		assert.Equal(t, "Location access denied", resp.Notice.Title)

		w = doJSON(r, http.MethodPost, "/api/location/detect", `{"lat":12.9716,"lng":77.5946}`)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "captured", resp.State)
		assert.Equal(t, "Location detected", resp.Notice.Title)

		w = doJSON(r, http.MethodPost, "/api/location/detect", `{}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "prompting", resp.State)
		assert.Equal(t, "Location access denied", resp.Notice.Title)
	})

	t.Run("listing", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/providers/all?verified=true", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Listing directory.Listing `json:"listing"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Listing.Total)
		assert.Equal(t, 3, resp.Listing.DirectorySize)
		assert.Equal(t, "1", resp.Listing.Providers[0].ID)

		w = do(r, http.MethodGet, "/api/providers/plumbing?q=murugan", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Listing.Total)
		assert.Equal(t, "3", resp.Listing.Providers[0].ID)

		w = do(r, http.MethodGet, "/api/providers/all?rating=five", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("contact", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/providers/all/contact/3/quote", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var action contact.Action
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &action))
		assert.Equal(t, contact.KindNotice, action.Kind)
		require.NotNil(t, action.Notice)
		assert.Equal(t, "Quote Request", action.Notice.Title)

		w = do(r, http.MethodGet, "/api/providers/all/contact/404/call", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestNotFound(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodGet, "/no/such/page", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page Not Found")
	assert.Contains(t, w.Body.String(), `href="/"`)

	w = do(r, http.MethodGet, "/api/nothing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Not Found"`)
}

func TestHealth(t *testing.T) {
	r := newRouter(t)
	w := do(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
