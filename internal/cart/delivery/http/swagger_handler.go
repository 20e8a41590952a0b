package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// GetCart godoc
// @Summary Get the cart
// @Description Get the cart line items with subtotal, shipping and total
// @Tags Cart
// @Produce json
// @Success 200 {object} object{success=bool,data=object{items=array,subtotal=number,shipping=number,total=number,item_count=int}}
// @Router /api/cart [get]
func (h *CartHandler) GetCartDoc() {}

// AddItem godoc
// @Summary Add a product to the cart
// @Description Add a product snapshot to the cart, incrementing quantity if already present
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body object{id=int,title=string,price=number,image=string} true "Product snapshot"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/cart/items [post]
func (h *CartHandler) AddItemDoc() {}

// UpdateQuantity godoc
// @Summary Update a line item quantity
// @Description Set a line item quantity; zero or less removes the item
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{quantity=int} true "New quantity"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/cart/items/{id} [patch]
func (h *CartHandler) UpdateQuantityDoc() {}

// RemoveItem godoc
// @Summary Remove a line item
// @Description Remove a line item from the cart; unknown ids are a no-op
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItemDoc() {}

// ClearCart godoc
// @Summary Clear the cart
// @Description Remove every line item from the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Router /api/cart [delete]
func (h *CartHandler) ClearCartDoc() {}
