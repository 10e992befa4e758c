package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DeliveryFee is the flat delivery charge added to every order, in rupees.
const DeliveryFee = 50

// Order statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
)

var (
	pincodeRe = regexp.MustCompile(`^\d{6}$`)
	mobileRe  = regexp.MustCompile(`^\d{10}$`)
)

// ShippingDetails is the customer information collected on the checkout
// form.
type ShippingDetails struct {
	FullName     string `json:"fullName"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Pincode      string `json:"pincode"`
	MobileNumber string `json:"mobileNumber"`
}

// Validate checks every field and returns a map of field name to error
// message. An empty map means the details are valid.
func (s ShippingDetails) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(s.FullName) == "" {
		errs["fullName"] = "Full name is required"
	}
	if strings.TrimSpace(s.Address) == "" {
		errs["address"] = "Address is required"
	}
	if strings.TrimSpace(s.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(s.Pincode) == "" {
		errs["pincode"] = "Pincode is required"
	} else if !pincodeRe.MatchString(s.Pincode) {
		errs["pincode"] = "Please enter a valid 6-digit pincode"
	}
	if strings.TrimSpace(s.MobileNumber) == "" {
		errs["mobileNumber"] = "Mobile number is required"
	} else if !mobileRe.MatchString(s.MobileNumber) {
		errs["mobileNumber"] = "Please enter a valid 10-digit mobile number"
	}

	return errs
}

// Order is an immutable snapshot of a completed checkout. It is appended to
// the order log and never mutated afterwards.
type Order struct {
	ID            string          `json:"id"`
	Customer      ShippingDetails `json:"customer"`
	Items         []CartLine      `json:"items"`
	Total         float64         `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// NewOrderID derives an order id from the creation time: "ORD" followed by
// the last six digits of the unix-millisecond timestamp.
func NewOrderID(t time.Time) string {
	millis := fmt.Sprintf("%d", t.UnixMilli())
	return "ORD" + millis[len(millis)-6:]
}
