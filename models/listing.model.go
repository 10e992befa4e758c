package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ListingStep identifies where a seller is in the listing flow.
type ListingStep string

const (
	StepSelectCategory ListingStep = "selectCategory"
	StepEnterShopName  ListingStep = "enterShopName"
	StepUploadImage    ListingStep = "uploadImage"
	StepSetPrice       ListingStep = "setPrice"
	StepDone           ListingStep = "done"
)

// ErrWrongStep is returned when a flow method is called out of order. The
// draft is left unchanged.
var ErrWrongStep = errors.New("listing: operation not valid at current step")

// SellerListing is a product entry submitted by a seller. Immutable once
// created.
type SellerListing struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	ShopName  string    `json:"shopName"`
	SellerID  string    `json:"sellerId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListingFlow is a seller's in-progress product listing. Steps advance
// strictly forward through the methods below; each method fails without
// touching the draft unless the flow is at the right step. Done is terminal
// and is only reached through SetPrice.
type ListingFlow struct {
	Step     ListingStep `json:"step"`
	Category Category    `json:"category,omitempty"`
	ShopName string      `json:"shopName,omitempty"`
	Image    string      `json:"image,omitempty"`
	Price    float64     `json:"price,omitempty"`
}

// NewListingFlow starts a fresh flow at the category step.
func NewListingFlow() *ListingFlow {
	return &ListingFlow{Step: StepSelectCategory}
}

// SelectCategory records the category, stages its demo image, and advances
// to the shop name step.
func (f *ListingFlow) SelectCategory(c Category) error {
	if f.Step != StepSelectCategory {
		return ErrWrongStep
	}
	if !ValidCategory(c) {
		return fmt.Errorf("listing: unknown category %q", c)
	}
	f.Category = c
	f.Image = DemoImages[c]
	f.Step = StepEnterShopName
	return nil
}

// EnterShopName records a non-blank shop name and advances to the image
// step.
func (f *ListingFlow) EnterShopName(name string) error {
	if f.Step != StepEnterShopName {
		return ErrWrongStep
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("listing: shop name is required")
	}
	f.ShopName = name
	f.Step = StepUploadImage
	return nil
}

// UploadImage optionally overrides the staged demo image and advances to
// the price step.
func (f *ListingFlow) UploadImage(uri string) error {
	if f.Step != StepUploadImage {
		return ErrWrongStep
	}
	if uri = strings.TrimSpace(uri); uri != "" {
		f.Image = uri
	}
	f.Step = StepSetPrice
	return nil
}

// SetPrice parses raw as a positive number. On success the flow is Done;
// otherwise the step does not advance.
func (f *ListingFlow) SetPrice(raw string) error {
	if f.Step != StepSetPrice {
		return ErrWrongStep
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("listing: price %q is not a number", raw)
	}
	if price <= 0 {
		return errors.New("listing: price must be greater than zero")
	}
	f.Price = price
	f.Step = StepDone
	return nil
}

// Back moves to the previous step. It fails at the first step, and at Done,
// which is terminal.
func (f *ListingFlow) Back() error {
	switch f.Step {
	case StepEnterShopName:
		f.Step = StepSelectCategory
	case StepUploadImage:
		f.Step = StepEnterShopName
	case StepSetPrice:
		f.Step = StepUploadImage
	default:
		return ErrWrongStep
	}
	return nil
}

// Finalize materializes the listing from a completed flow. The name
// defaults to "<Category> Product" when the seller left it blank.
func (f *ListingFlow) Finalize(sellerID, name string, now time.Time) (SellerListing, error) {
	if f.Step != StepDone {
		return SellerListing{}, ErrWrongStep
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = f.Category.Label() + " Product"
	}
	return SellerListing{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Name:      name,
		Category:  f.Category,
		Price:     f.Price,
		Image:     f.Image,
		ShopName:  f.ShopName,
		SellerID:  sellerID,
		CreatedAt: now,
	}, nil
}
