package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/internal/catalog/usecase/query"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/debounce"
	"github.com/tair/storefront/pkg/logger"
)

// Analytics publishes catalog analytics events. A nil Analytics disables
// publishing.
type Analytics interface {
	PublishSearchPerformed(ctx context.Context, event kafka.SearchPerformedEvent) error
	PublishProductViewed(ctx context.Context, event kafka.ProductViewedEvent) error
}

// ProductHandler handles HTTP requests for the catalog using CQRS pattern
type ProductHandler struct {
	listHandler       *query.ListProductsHandler
	getProductHandler *query.GetProductHandler
	categoriesHandler *query.ListCategoriesHandler

	analytics Analytics
	// searchEvents coalesces per-keystroke search terms so rapid typing
	// produces one analytics event carrying the final term.
	searchEvents *debounce.Debouncer[string]

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
}

// NewProductHandler creates a new catalog handler
func NewProductHandler(
	listHandler *query.ListProductsHandler,
	getProductHandler *query.GetProductHandler,
	categoriesHandler *query.ListCategoriesHandler,
	analytics Analytics,
) *ProductHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_requests_total",
			Help: "Total number of requests to catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "storefront_catalog_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)

	h := &ProductHandler{
		listHandler:       listHandler,
		getProductHandler: getProductHandler,
		categoriesHandler: categoriesHandler,
		analytics:         analytics,
		requestCounter:    requestCounter,
		requestLatency:    requestLatency,
		requestSummary:    requestSummary,
	}

	h.searchEvents = debounce.New(debounce.DefaultWindow, func(term string) {
		if h.analytics == nil {
			return
		}
		err := h.analytics.PublishSearchPerformed(context.Background(), kafka.SearchPerformedEvent{Term: term})
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to publish search event")
		}
	})

	return h
}

// Response is the JSON envelope returned by every endpoint
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *ProductHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers catalog routes on the router
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/categories", h.metricsMiddleware("/api/products/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
}

// RegisterHealthCheck registers the health check endpoint
func (h *ProductHandler) RegisterHealthCheck(router *mux.Router, redisClient *redis.Client) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Ping(r.Context()).Err(); err != nil {
				respondJSON(w, http.StatusServiceUnavailable, Response{
					Success: false,
					Error:   "Persistence unavailable",
				})
				return
			}
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Storefront service is healthy",
		})
	}).Methods("GET")
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	minPrice, _ := strconv.ParseFloat(params.Get("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(params.Get("max_price"), 64)
	page, _ := strconv.Atoi(params.Get("page"))
	pageSize, _ := strconv.Atoi(params.Get("page_size"))
	favoritesOnly, _ := strconv.ParseBool(params.Get("favorites"))

	q := query.ListProductsQuery{
		Search:        params.Get("search"),
		Category:      params.Get("category"),
		MinPrice:      minPrice,
		MaxPrice:      maxPrice,
		Sort:          params.Get("sort"),
		FavoritesOnly: favoritesOnly,
		Page:          page,
		PageSize:      pageSize,
	}

	if q.Search != "" {
		h.searchEvents.Submit(q.Search)
	}

	result := h.listHandler.Handle(r.Context(), q)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

// ListCategories handles GET /api/products/categories
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.categoriesHandler.Handle(r.Context(), query.ListCategoriesQuery{})
	if categories == nil {
		categories = []string{}
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]interface{}{"categories": categories},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || id <= 0 {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	product, err := h.getProductHandler.Handle(r.Context(), query.GetProductQuery{ID: id})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Int64("product_id", id).Msg("Product lookup failed")
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	if h.analytics != nil {
		event := kafka.ProductViewedEvent{ProductID: id}
		if err := h.analytics.PublishProductViewed(r.Context(), event); err != nil {
			logger.Warn(r.Context()).Err(err).Msg("Failed to publish product view event")
		}
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// Close flushes any pending analytics state
func (h *ProductHandler) Close() {
	h.searchEvents.Flush()
	h.searchEvents.Stop()
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
