// Package server exposes the report pipeline over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/survey"
)

// Tallies loads and replaces stored question tallies.
type Tallies interface {
	Load(ctx context.Context, surveyID, questionKey string) (survey.ResponseSet, error)
	Save(ctx context.Context, surveyID, questionKey string, rs survey.ResponseSet) error
}

// Images caches rendered PNGs.
type Images interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, png []byte) error
}

// Container holds the router's dependencies. Nil Tallies disables the survey routes;
// nil Images disables caching.
type Container struct {
	Tallies Tallies
	Images  Images
	// RenderTimeout bounds one render. Zero means DefaultRenderTimeout.
	RenderTimeout time.Duration
	Version       string
}

// DefaultRenderTimeout bounds a single render request.
const DefaultRenderTimeout = 30 * time.Second

// MaxBodyBytes limits report definition bodies.
const MaxBodyBytes = 1 << 20

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	if c.RenderTimeout <= 0 {
		c.RenderTimeout = DefaultRenderTimeout
	}
	h := &handler{c: c}
	r := mux.NewRouter()
	r.Use(requestIDMiddleware, loggingMiddleware)

	r.HandleFunc("/health", h.health).Methods(http.MethodGet)

	// Routes sit on the root router so its 404 and 405 handlers apply to them.
	r.HandleFunc("/v1/reports", h.listReports).Methods(http.MethodGet)
	r.HandleFunc("/v1/reports/{kind}/layout", h.layout).Methods(http.MethodPost)
	r.HandleFunc("/v1/reports/{kind}/render", h.render).Methods(http.MethodPost)
	r.HandleFunc("/v1/surveys/{survey}/questions/{question}", h.saveTallies).Methods(http.MethodPut)
	r.HandleFunc("/v1/surveys/{survey}/questions/{question}/reports/{kind}.png", h.surveyReport).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}
