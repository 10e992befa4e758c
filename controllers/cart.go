package controllers

import (
	"encoding/json"
	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/store"
	"go-storefront/utils"
	"net/http"

	"github.com/gorilla/mux"
)

// CartController handles cart-related requests
type CartController struct {
	Store store.Store
}

// NewCartController creates a new CartController
func NewCartController(s store.Store) *CartController {
	return &CartController{Store: s}
}

// loadCart reads the user's cart from the store; an absent key is an empty
// cart.
func (cc *CartController) loadCart(r *http.Request, userID string) (models.Cart, error) {
	var cart models.Cart
	_, err := store.ReadJSON(r.Context(), cc.Store, store.CartKey(userID), &cart.Items)
	return cart, err
}

// saveCart persists the full cart contents. Every mutation goes through
// here; there is no partial write.
func (cc *CartController) saveCart(r *http.Request, userID string, cart models.Cart) error {
	items := cart.Items
	if items == nil {
		items = []models.CartLine{}
	}
	return store.WriteJSON(r.Context(), cc.Store, store.CartKey(userID), items)
}

// AddToCart adds a product to the user's cart, merging by product id
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var product models.Product
	err := json.NewDecoder(r.Body).Decode(&product)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if product.ID == "" {
		http.Error(w, "Product id is required", http.StatusBadRequest)
		return
	}

	cart, err := cc.loadCart(r, claims.UserID)
	if err != nil {
		http.Error(w, "Store error", http.StatusInternalServerError)
		return
	}

	cart.AddItem(product)

	if err := cc.saveCart(r, claims.UserID, cart); err != nil {
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode("Item added to cart")
}

// RemoveFromCart removes a product from the user's cart
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	params := mux.Vars(r)
	productID := params["product_id"]
	if productID == "" {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	cart, err := cc.loadCart(r, claims.UserID)
	if err != nil {
		http.Error(w, "Store error", http.StatusInternalServerError)
		return
	}

	cart.RemoveItem(productID)

	if err := cc.saveCart(r, claims.UserID, cart); err != nil {
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode("Item removed from cart")
}

// ClearCart empties the user's cart
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := cc.saveCart(r, claims.UserID, models.Cart{}); err != nil {
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode("Cart cleared")
}

// GetCart retrieves the user's cart with its total
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cart, err := cc.loadCart(r, claims.UserID)
	if err != nil {
		http.Error(w, "Store error", http.StatusInternalServerError)
		return
	}
	if cart.Items == nil {
		cart.Items = []models.CartLine{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"items": cart.Items,
		"total": cart.Total(),
	})
}
