package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// ListProducts godoc
// @Summary List products
// @Description Browse the catalog with filtering, sorting and pagination
// @Tags Products
// @Produce json
// @Param search query string false "Case-insensitive title substring"
// @Param category query string false "Exact category match"
// @Param min_price query number false "Inclusive lower price bound"
// @Param max_price query number false "Inclusive upper price bound (default 1000)"
// @Param sort query string false "Sort key: price-asc, price-desc, rating, name"
// @Param favorites query bool false "Only favorited products"
// @Param page query int false "Page number (pages accumulate: page N returns the first N pages)"
// @Param page_size query int false "Page size (default 12)"
// @Success 200 {object} object{success=bool,data=object{products=array,total=int,page=int,page_size=int,has_more=bool}}
// @Router /api/products [get]
func (h *ProductHandler) ListProductsDoc() {}

// ListCategories godoc
// @Summary List categories
// @Description Get the distinct non-empty categories across the catalog
// @Tags Products
// @Produce json
// @Success 200 {object} object{success=bool,data=object{categories=array}}
// @Router /api/products/categories [get]
func (h *ProductHandler) ListCategoriesDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Description Get a specific product's details from the upstream catalog
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [get]
func (h *ProductHandler) GetProductDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and persistence connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *ProductHandler) HealthCheckDoc() {}
