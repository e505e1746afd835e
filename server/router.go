package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// DashboardRoutes is the set of handlers served by the router.
type DashboardRoutes interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	DailyCharts(w http.ResponseWriter, r *http.Request)
	GetWeather(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	dashboardHandler DashboardRoutes
	router           *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	dashboardHandler DashboardRoutes,
	router *mux.Router) *Router {
	return &Router{
		dashboardHandler: dashboardHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(RequestIDMiddleware)

	// expects ?city={name}, or ?preset={name}&use_preset=1 for the quick select
	r.router.HandleFunc("/", r.dashboardHandler.Dashboard).Methods("GET")
	r.router.HandleFunc("/charts/daily", r.dashboardHandler.DailyCharts).Methods("GET")

	// expects ?city={name}
	r.router.HandleFunc("/v1/weather", r.dashboardHandler.GetWeather).Methods("GET")

	r.router.HandleFunc("/ping", r.dashboardHandler.Ping).Methods("GET")
}
