package controllers

import (
	"encoding/json"
	"errors"
	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/store"
	"go-storefront/utils"
	"net/http"
	"time"
)

// ListingController drives the seller's multi-step product listing flow
type ListingController struct {
	Store store.Store

	now func() time.Time
}

// NewListingController creates a new ListingController
func NewListingController(s store.Store) *ListingController {
	return &ListingController{
		Store: s,
		now:   time.Now,
	}
}

// loadDraft reads the seller's in-progress flow. The boolean is false when
// no draft exists.
func (lc *ListingController) loadDraft(r *http.Request, sellerID string) (*models.ListingFlow, bool, error) {
	var flow models.ListingFlow
	found, err := store.ReadJSON(r.Context(), lc.Store, store.ListingDraftKey(sellerID), &flow)
	return &flow, found, err
}

func (lc *ListingController) saveDraft(r *http.Request, sellerID string, flow *models.ListingFlow) error {
	return store.WriteJSON(r.Context(), lc.Store, store.ListingDraftKey(sellerID), flow)
}

// writeFlowError maps a flow transition failure to a 400 without touching
// the stored draft
func writeFlowError(w http.ResponseWriter, err error) {
	if errors.Is(err, models.ErrWrongStep) {
		http.Error(w, "Operation not valid at current step", http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

// StartListing begins a fresh draft at the category step, replacing any
// abandoned one
func (lc *ListingController) StartListing(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	flow := models.NewListingFlow()
	if err := lc.saveDraft(r, claims.UserID, flow); err != nil {
		http.Error(w, "Error saving draft", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(flow)
}

// GetListing returns the current draft state
func (lc *ListingController) GetListing(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	flow, found, err := lc.loadDraft(r, claims.UserID)
	if err != nil {
		http.Error(w, "Store error", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "No listing in progress", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(flow)
}

// advance runs one transition against the stored draft and persists the
// result when it succeeds.
func (lc *ListingController) advance(w http.ResponseWriter, r *http.Request, transition func(*models.ListingFlow) error) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	flow, found, err := lc.loadDraft(r, claims.UserID)
	if err != nil {
		http.Error(w, "Store error", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "No listing in progress", http.StatusNotFound)
		return
	}

	if err := transition(flow); err != nil {
		writeFlowError(w, err)
		return
	}

	if err := lc.saveDraft(r, claims.UserID, flow); err != nil {
		http.Error(w, "Error saving draft", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(flow)
}

// SelectCategory records the listing's category
func (lc *ListingController) SelectCategory(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Category models.Category `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	lc.advance(w, r, func(flow *models.ListingFlow) error {
		return flow.SelectCategory(body.Category)
	})
}

// SetShopName records the shop name
func (lc *ListingController) SetShopName(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ShopName string `json:"shopName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	lc.advance(w, r, func(flow *models.ListingFlow) error {
		return flow.EnterShopName(body.ShopName)
	})
}

// UploadImage records an optional image override
func (lc *ListingController) UploadImage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Image string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	lc.advance(w, r, func(flow *models.ListingFlow) error {
		return flow.UploadImage(body.Image)
	})
}

// Back moves the draft to the previous step
func (lc *ListingController) Back(w http.ResponseWriter, r *http.Request) {
	lc.advance(w, r, func(flow *models.ListingFlow) error {
		return flow.Back()
	})
}

// SetPrice completes the flow. A price that does not parse as a positive
// number refuses to advance and writes nothing; on success the listing is
// appended to the seller's products and the draft is deleted, so the
// catalog write happens exactly once.
func (lc *ListingController) SetPrice(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body struct {
		Price string `json:"price"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	flow, found, err := lc.loadDraft(r, claims.UserID)
	if err != nil {
		http.Error(w, "Store error", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "No listing in progress", http.StatusNotFound)
		return
	}

	if err := flow.SetPrice(body.Price); err != nil {
		writeFlowError(w, err)
		return
	}

	listing, err := flow.Finalize(claims.UserID, body.Name, lc.now())
	if err != nil {
		writeFlowError(w, err)
		return
	}

	// Append to the seller's product list
	ctx := r.Context()
	var listings []models.SellerListing
	if _, err := store.ReadJSON(ctx, lc.Store, store.SellerProductsKey(claims.UserID), &listings); err != nil {
		http.Error(w, "Store error", http.StatusInternalServerError)
		return
	}
	listings = append(listings, listing)
	if err := store.WriteJSON(ctx, lc.Store, store.SellerProductsKey(claims.UserID), listings); err != nil {
		http.Error(w, "Error saving listing", http.StatusInternalServerError)
		return
	}

	if err := lc.Store.Delete(ctx, store.ListingDraftKey(claims.UserID)); err != nil {
		http.Error(w, "Error clearing draft", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(listing)
}
