package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/storefront/internal/favorites/store"
	"github.com/tair/storefront/internal/favorites/usecase/command"
	"github.com/tair/storefront/internal/favorites/usecase/query"
)

// FavoritesHandler handles HTTP requests for the favorite set
type FavoritesHandler struct {
	toggleHandler *command.ToggleFavoriteHandler
	clearHandler  *command.ClearFavoritesHandler
	listHandler   *query.ListFavoritesHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	favoriteCount  prometheus.Gauge
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(favStore *store.FavoritesStore) *FavoritesHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_favorites_requests_total",
			Help: "Total number of requests to favorites endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_favorites_request_duration_seconds",
			Help:    "Duration of favorites requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	favoriteCount := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_favorites_count",
			Help: "Current number of favorited products",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(favoriteCount)

	favStore.Subscribe(func(ids []int64) {
		favoriteCount.Set(float64(len(ids)))
	})

	return &FavoritesHandler{
		toggleHandler:  command.NewToggleFavoriteHandler(favStore),
		clearHandler:   command.NewClearFavoritesHandler(favStore),
		listHandler:    query.NewListFavoritesHandler(favStore),
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		favoriteCount:  favoriteCount,
	}
}

// Response is the JSON envelope returned by every endpoint
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *FavoritesHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers favorites routes on the router
func (h *FavoritesHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/favorites", h.metricsMiddleware("/api/favorites", h.ListFavorites)).Methods("GET")
	router.HandleFunc("/api/favorites", h.metricsMiddleware("/api/favorites", h.ClearFavorites)).Methods("DELETE")
	router.HandleFunc("/api/favorites/{id}", h.metricsMiddleware("/api/favorites/{id}", h.ToggleFavorite)).Methods("PUT")
}

// ListFavorites handles GET /api/favorites
func (h *FavoritesHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	ids := h.listHandler.Handle(query.ListFavoritesQuery{})
	if ids == nil {
		ids = []int64{}
	}
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]interface{}{"favorites": ids},
	})
}

// ToggleFavorite handles PUT /api/favorites/{id}
func (h *FavoritesHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || id <= 0 {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	result, err := h.toggleHandler.Handle(r.Context(), command.ToggleFavoriteCommand{ID: id})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

// ClearFavorites handles DELETE /api/favorites
func (h *FavoritesHandler) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	h.clearHandler.Handle(r.Context(), command.ClearFavoritesCommand{})
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Favorites cleared",
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
