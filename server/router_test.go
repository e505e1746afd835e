package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"weather-dashboard/util"
)

// MockDashboardHandler answers every route with its own name.
type MockDashboardHandler struct{}

func (h *MockDashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("dashboard"))
}

func (h *MockDashboardHandler) DailyCharts(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("charts"))
}

func (h *MockDashboardHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("weather"))
}

func (h *MockDashboardHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(util.RequestIDFrom(r.Context())))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	router := mux.NewRouter()
	appRouter := NewRouter(&MockDashboardHandler{}, router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{name: "Dashboard", method: "GET", path: "/?city=Seoul", statusCode: http.StatusOK, response: "dashboard"},
		{name: "Daily Charts", method: "GET", path: "/charts/daily?city=Seoul", statusCode: http.StatusOK, response: "charts"},
		{name: "Weather JSON", method: "GET", path: "/v1/weather?city=Seoul", statusCode: http.StatusOK, response: "weather"},
		{name: "Wrong Method", method: "POST", path: "/v1/weather", statusCode: http.StatusMethodNotAllowed},
		{name: "Invalid Route", method: "GET", path: "/invalid", statusCode: http.StatusNotFound},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, test.statusCode, rr.Code)
			if test.response != "" {
				assert.Equal(t, test.response, rr.Body.String())
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	router := mux.NewRouter()
	NewRouter(&MockDashboardHandler{}, router).RegisterRoutes()

	t.Run("generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("GET", "/ping", nil))

		id := rr.Header().Get(REQUEST_ID_HEADER)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rr.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set(REQUEST_ID_HEADER, "abc-123")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", rr.Header().Get(REQUEST_ID_HEADER))
		assert.Equal(t, "abc-123", rr.Body.String())
	})
}
