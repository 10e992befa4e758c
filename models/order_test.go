package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validShipping() ShippingDetails {
	return ShippingDetails{
		FullName:     "A",
		Address:      "B",
		City:         "C",
		Pincode:      "110025",
		MobileNumber: "9876543210",
	}
}

func TestShippingDetailsValid(t *testing.T) {
	assert.Empty(t, validShipping().Validate())
}

func TestShippingDetailsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ShippingDetails)
		field   string
		message string
	}{
		{
			name:    "blank full name",
			mutate:  func(s *ShippingDetails) { s.FullName = "  " },
			field:   "fullName",
			message: "Full name is required",
		},
		{
			name:    "blank address",
			mutate:  func(s *ShippingDetails) { s.Address = "" },
			field:   "address",
			message: "Address is required",
		},
		{
			name:    "blank city",
			mutate:  func(s *ShippingDetails) { s.City = "" },
			field:   "city",
			message: "City is required",
		},
		{
			name:    "short pincode",
			mutate:  func(s *ShippingDetails) { s.Pincode = "1234" },
			field:   "pincode",
			message: "Please enter a valid 6-digit pincode",
		},
		{
			name:    "non-numeric pincode",
			mutate:  func(s *ShippingDetails) { s.Pincode = "11002a" },
			field:   "pincode",
			message: "Please enter a valid 6-digit pincode",
		},
		{
			name:    "missing pincode",
			mutate:  func(s *ShippingDetails) { s.Pincode = "" },
			field:   "pincode",
			message: "Pincode is required",
		},
		{
			name:    "short mobile number",
			mutate:  func(s *ShippingDetails) { s.MobileNumber = "98765" },
			field:   "mobileNumber",
			message: "Please enter a valid 10-digit mobile number",
		},
		{
			name:    "missing mobile number",
			mutate:  func(s *ShippingDetails) { s.MobileNumber = "" },
			field:   "mobileNumber",
			message: "Mobile number is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := validShipping()
			tt.mutate(&details)
			errs := details.Validate()
			assert.Equal(t, tt.message, errs[tt.field])
			assert.Len(t, errs, 1)
		})
	}
}

func TestNewOrderID(t *testing.T) {
	at := time.UnixMilli(1717171717123)
	id := NewOrderID(at)

	assert.Equal(t, "ORD717123", id)
	assert.Regexp(t, `^ORD\d{6}$`, id)
}
