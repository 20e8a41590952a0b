package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/storefront/internal/cart/store"
	"github.com/tair/storefront/internal/cart/usecase/command"
	"github.com/tair/storefront/internal/cart/usecase/query"
	"github.com/tair/storefront/pkg/logger"
)

// CartHandler handles HTTP requests for the cart using CQRS pattern
type CartHandler struct {
	addHandler            *command.AddItemHandler
	removeHandler         *command.RemoveItemHandler
	updateQuantityHandler *command.UpdateQuantityHandler
	clearHandler          *command.ClearCartHandler

	getCartHandler *query.GetCartHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	cartItems      prometheus.Gauge
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartStore *store.CartStore, analytics command.Analytics) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_requests_total",
			Help: "Total number of requests to cart endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_cart_request_duration_seconds",
			Help:    "Duration of cart requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	cartItems := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_cart_item_count",
			Help: "Current number of items in the cart",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(cartItems)

	// Keep the gauge current without polling.
	cartStore.Subscribe(func(snap store.Snapshot) {
		cartItems.Set(float64(snap.ItemCount))
	})

	return &CartHandler{
		addHandler:            command.NewAddItemHandler(cartStore, analytics),
		removeHandler:         command.NewRemoveItemHandler(cartStore, analytics),
		updateQuantityHandler: command.NewUpdateQuantityHandler(cartStore, analytics),
		clearHandler:          command.NewClearCartHandler(cartStore, analytics),
		getCartHandler:        query.NewGetCartHandler(cartStore),
		requestCounter:        requestCounter,
		requestLatency:        requestLatency,
		cartItems:             cartItems,
	}
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
func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers cart routes on the router
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.GetCart)).Methods("GET")
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.ClearCart)).Methods("DELETE")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", h.AddItem)).Methods("POST")
	router.HandleFunc("/api/cart/items/{id}", h.metricsMiddleware("/api/cart/items/{id}", h.UpdateQuantity)).Methods("PATCH")
	router.HandleFunc("/api/cart/items/{id}", h.metricsMiddleware("/api/cart/items/{id}", h.RemoveItem)).Methods("DELETE")
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	snap := h.getCartHandler.Handle(query.GetCartQuery{})
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    snap,
	})
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID    int64   `json:"id"`
		Title string  `json:"title"`
		Price float64 `json:"price"`
		Image string  `json:"image"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.AddItemCommand{
		ID:    req.ID,
		Title: req.Title,
		Price: req.Price,
		Image: req.Image,
	}

	snap, err := h.addHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to add cart item")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item added to cart",
		Data:    snap,
	})
}

// UpdateQuantity handles PATCH /api/cart/items/{id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateQuantityCommand{ID: id, Quantity: req.Quantity}
	snap, err := h.updateQuantityHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Quantity updated",
		Data:    snap,
	})
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	snap, err := h.removeHandler.Handle(r.Context(), command.RemoveItemCommand{ID: id})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item removed",
		Data:    snap,
	})
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	snap := h.clearHandler.Handle(r.Context(), command.ClearCartCommand{})
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart cleared",
		Data:    snap,
	})
}

func itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || id <= 0 {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid item ID",
		})
		return 0, false
	}
	return id, true
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
