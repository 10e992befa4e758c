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

// ProductController serves the product catalog
type ProductController struct {
	Store store.Store
}

// NewProductController creates a new ProductController
func NewProductController(s store.Store) *ProductController {
	return &ProductController{Store: s}
}

// GetProducts retrieves the seed catalog
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.SeedProducts)
}

// GetProductByID retrieves a single catalog product
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, found := models.SeedProductByID(id)
	if !found {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// GetProductsByCategory filters the catalog by category. An unknown
// category renders as an empty list, not an error.
func (pc *ProductController) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.SeedProductsByCategory(category))
}

// GetSellerProducts retrieves the authenticated seller's listings
func (pc *ProductController) GetSellerProducts(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	listings := []models.SellerListing{}
	if _, err := store.ReadJSON(r.Context(), pc.Store, store.SellerProductsKey(claims.UserID), &listings); err != nil {
		http.Error(w, "Store error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(listings)
}
