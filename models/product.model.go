package models

import "strings"

// Category is a product category.
type Category string

const (
	CategoryElectronics  Category = "electronics"
	CategoryClothes      Category = "clothes"
	CategoryHomeware     Category = "homeware"
	CategoryKitchenware  Category = "kitchenware"
	CategoryMobilePhones Category = "mobilePhones"
	CategorySupplements  Category = "supplements"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryElectronics,
	CategoryClothes,
	CategoryHomeware,
	CategoryKitchenware,
	CategoryMobilePhones,
	CategorySupplements,
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the category name with its first letter upper-cased, e.g.
// "mobilePhones" becomes "MobilePhones".
func (c Category) Label() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Product represents an item in the catalog, either seed data or one listed
// by a seller. Products are immutable once created.
type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       Category `json:"category"`
	Price          float64  `json:"price"`
	Image          string   `json:"image"`
	Description    string   `json:"description,omitempty"`
	SellerID       string   `json:"sellerId,omitempty"`
	SellerShopName string   `json:"sellerShopName,omitempty"`
}
