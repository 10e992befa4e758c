package controllers

import (
	"encoding/json"
	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/store"
	"go-storefront/utils"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// OrderController handles order-related requests
type OrderController struct {
	Store        store.Store
	EmailService *utils.EmailService

	// now is swappable so order ids are deterministic in tests.
	now func() time.Time
}

// NewOrderController creates a new OrderController
func NewOrderController(s store.Store, emailService *utils.EmailService) *OrderController {
	return &OrderController{
		Store:        s,
		EmailService: emailService,
		now:          time.Now,
	}
}

type checkoutRequest struct {
	models.ShippingDetails
	PaymentMethod string `json:"paymentMethod"`
}

// CreateOrder places an order from the user's current cart. The cart is
// left intact; the confirmation view clears it after reading the last-order
// pointer.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req checkoutRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	// Validate the shipping form; nothing is written on failure
	if errs := req.ShippingDetails.Validate(); len(errs) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{"errors": errs})
		return
	}

	// Load the user's cart
	ctx := r.Context()
	var cart models.Cart
	if _, err := store.ReadJSON(ctx, oc.Store, store.CartKey(claims.UserID), &cart.Items); err != nil {
		http.Error(w, "Store error", http.StatusInternalServerError)
		return
	}
	if len(cart.Items) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cod"
	}

	now := oc.now()
	order := models.Order{
		ID:            models.NewOrderID(now),
		Customer:      req.ShippingDetails,
		Items:         cart.Snapshot(),
		Total:         cart.Total() + models.DeliveryFee,
		PaymentMethod: paymentMethod,
		Status:        models.OrderStatusPending,
		CreatedAt:     now,
	}

	// Append to the order log
	var orders []models.Order
	if _, err := store.ReadJSON(ctx, oc.Store, store.OrderLogKey(claims.UserID), &orders); err != nil {
		http.Error(w, "Store error", http.StatusInternalServerError)
		return
	}
	orders = append(orders, order)
	if err := store.WriteJSON(ctx, oc.Store, store.OrderLogKey(claims.UserID), orders); err != nil {
		http.Error(w, "Error saving order", http.StatusInternalServerError)
		return
	}

	// Stage the last order for the confirmation view
	if err := store.WriteJSON(ctx, oc.Store, store.LastOrderKey(claims.UserID), order); err != nil {
		http.Error(w, "Error saving order", http.StatusInternalServerError)
		return
	}

	// Send confirmation email
	if oc.EmailService != nil {
		go func(email string, order models.Order) {
			if err := oc.EmailService.SendOrderConfirmationEmail(email, order); err != nil {
				log.Printf("Failed to send email to %s: %v", email, err)
			}
		}(claims.Email, order)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

// ConfirmOrder reads the last-order pointer for the confirmation view and
// clears the cart on success
func (oc *OrderController) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx := r.Context()
	var order models.Order
	found, err := store.ReadJSON(ctx, oc.Store, store.LastOrderKey(claims.UserID), &order)
	if err != nil {
		http.Error(w, "Store error", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "No recent order", http.StatusNotFound)
		return
	}

	// The cart is cleared only once the order is confirmed read
	if err := store.WriteJSON(ctx, oc.Store, store.CartKey(claims.UserID), []models.CartLine{}); err != nil {
		http.Error(w, "Error clearing cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// GetOrders retrieves the order log for the authenticated user
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orders := []models.Order{}
	if _, err := store.ReadJSON(r.Context(), oc.Store, store.OrderLogKey(claims.UserID), &orders); err != nil {
		http.Error(w, "Store error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// GetOrderByID looks a single order up in the user's order log
func (oc *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orderID := mux.Vars(r)["id"]

	var orders []models.Order
	if _, err := store.ReadJSON(r.Context(), oc.Store, store.OrderLogKey(claims.UserID), &orders); err != nil {
		http.Error(w, "Store error", http.StatusInternalServerError)
		return
	}

	for _, order := range orders {
		if order.ID == orderID {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(order)
			return
		}
	}

	http.Error(w, "Order not found", http.StatusNotFound)
}
