package controllers

import (
	"context"
	"go-storefront/models"
	"go-storefront/store"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCheckout() checkoutRequest {
	return checkoutRequest{
		ShippingDetails: models.ShippingDetails{
			FullName:     "A",
			Address:      "B",
			City:         "C",
			Pincode:      "110025",
			MobileNumber: "9876543210",
		},
		PaymentMethod: "cod",
	}
}

// seedCart writes a cart totaling 1000 for the test customer.
func seedCart(t *testing.T, kv store.Store) {
	t.Helper()
	items := []models.CartLine{
		{Product: models.Product{ID: "a", Name: "Thing", Price: 400}, Quantity: 2},
		{Product: models.Product{ID: "b", Name: "Other", Price: 200}, Quantity: 1},
	}
	require.NoError(t, store.WriteJSON(context.Background(), kv, store.CartKey("cust-1"), items))
}

func readOrderLog(t *testing.T, kv store.Store) []models.Order {
	t.Helper()
	var orders []models.Order
	_, err := store.ReadJSON(context.Background(), kv, store.OrderLogKey("cust-1"), &orders)
	require.NoError(t, err)
	return orders
}

func TestCreateOrder(t *testing.T) {
	kv := store.NewMemoryStore()
	oc := NewOrderController(kv, nil)
	oc.now = func() time.Time { return time.UnixMilli(1717171717123) }
	seedCart(t, kv)

	rec := httptest.NewRecorder()
	oc.CreateOrder(rec, authedRequest(t, "POST", "/order", validCheckout(), customerClaims()))
	require.Equal(t, 201, rec.Code)

	var order models.Order
	decodeBody(t, rec, &order)
	assert.Equal(t, "ORD717123", order.ID)
	assert.Equal(t, 1050.0, order.Total)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "cod", order.PaymentMethod)
	assert.Len(t, order.Items, 2)

	// Appended to the order log and staged as last order
	log := readOrderLog(t, kv)
	require.Len(t, log, 1)
	assert.Equal(t, order.ID, log[0].ID)

	var last models.Order
	found, err := store.ReadJSON(context.Background(), kv, store.LastOrderKey("cust-1"), &last)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, order.ID, last.ID)

	// The cart is not cleared by order placement
	var items []models.CartLine
	_, err = store.ReadJSON(context.Background(), kv, store.CartKey("cust-1"), &items)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCreateOrderInvalidPincode(t *testing.T) {
	kv := store.NewMemoryStore()
	oc := NewOrderController(kv, nil)
	seedCart(t, kv)

	body := validCheckout()
	body.Pincode = "1234"

	rec := httptest.NewRecorder()
	oc.CreateOrder(rec, authedRequest(t, "POST", "/order", body, customerClaims()))
	require.Equal(t, 400, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Please enter a valid 6-digit pincode", resp.Errors["pincode"])

	// No write happened
	assert.Empty(t, readOrderLog(t, kv))
}

func TestCreateOrderEmptyCart(t *testing.T) {
	kv := store.NewMemoryStore()
	oc := NewOrderController(kv, nil)

	rec := httptest.NewRecorder()
	oc.CreateOrder(rec, authedRequest(t, "POST", "/order", validCheckout(), customerClaims()))
	assert.Equal(t, 400, rec.Code)
	assert.Empty(t, readOrderLog(t, kv))
}

func TestCreateOrderSnapshotIsImmutable(t *testing.T) {
	kv := store.NewMemoryStore()
	oc := NewOrderController(kv, nil)
	oc.now = func() time.Time { return time.UnixMilli(1717171717123) }
	seedCart(t, kv)

	rec := httptest.NewRecorder()
	oc.CreateOrder(rec, authedRequest(t, "POST", "/order", validCheckout(), customerClaims()))
	require.Equal(t, 201, rec.Code)

	// Change the cart and place a second order
	items := []models.CartLine{{Product: models.Product{ID: "z", Price: 5}, Quantity: 1}}
	require.NoError(t, store.WriteJSON(context.Background(), kv, store.CartKey("cust-1"), items))

	oc.now = func() time.Time { return time.UnixMilli(1717171999456) }
	rec = httptest.NewRecorder()
	oc.CreateOrder(rec, authedRequest(t, "POST", "/order", validCheckout(), customerClaims()))
	require.Equal(t, 201, rec.Code)

	// The first order in the log is untouched
	log := readOrderLog(t, kv)
	require.Len(t, log, 2)
	assert.Equal(t, "ORD717123", log[0].ID)
	assert.Equal(t, 1050.0, log[0].Total)
	assert.Len(t, log[0].Items, 2)
	assert.Equal(t, "ORD999456", log[1].ID)
	assert.Equal(t, 55.0, log[1].Total)
}

func TestConfirmOrderClearsCart(t *testing.T) {
	kv := store.NewMemoryStore()
	oc := NewOrderController(kv, nil)
	seedCart(t, kv)

	rec := httptest.NewRecorder()
	oc.CreateOrder(rec, authedRequest(t, "POST", "/order", validCheckout(), customerClaims()))
	require.Equal(t, 201, rec.Code)

	rec = httptest.NewRecorder()
	oc.ConfirmOrder(rec, authedRequest(t, "GET", "/order/confirmation", nil, customerClaims()))
	require.Equal(t, 200, rec.Code)

	var order models.Order
	decodeBody(t, rec, &order)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	var items []models.CartLine
	found, err := store.ReadJSON(context.Background(), kv, store.CartKey("cust-1"), &items)
	require.NoError(t, err)
	require.True(t, found)
	assert.Empty(t, items)
}

func TestConfirmOrderWithoutLastOrder(t *testing.T) {
	oc := NewOrderController(store.NewMemoryStore(), nil)

	rec := httptest.NewRecorder()
	oc.ConfirmOrder(rec, authedRequest(t, "GET", "/order/confirmation", nil, customerClaims()))
	assert.Equal(t, 404, rec.Code)
}

func TestGetOrders(t *testing.T) {
	kv := store.NewMemoryStore()
	oc := NewOrderController(kv, nil)

	rec := httptest.NewRecorder()
	oc.GetOrders(rec, authedRequest(t, "GET", "/orders", nil, customerClaims()))
	require.Equal(t, 200, rec.Code)

	var orders []models.Order
	decodeBody(t, rec, &orders)
	assert.Empty(t, orders)

	seedCart(t, kv)
	rec = httptest.NewRecorder()
	oc.CreateOrder(rec, authedRequest(t, "POST", "/order", validCheckout(), customerClaims()))
	require.Equal(t, 201, rec.Code)

	rec = httptest.NewRecorder()
	oc.GetOrders(rec, authedRequest(t, "GET", "/orders", nil, customerClaims()))
	require.Equal(t, 200, rec.Code)
	decodeBody(t, rec, &orders)
	assert.Len(t, orders, 1)
}

func TestGetOrderByID(t *testing.T) {
	kv := store.NewMemoryStore()
	oc := NewOrderController(kv, nil)
	oc.now = func() time.Time { return time.UnixMilli(1717171717123) }
	seedCart(t, kv)

	rec := httptest.NewRecorder()
	oc.CreateOrder(rec, authedRequest(t, "POST", "/order", validCheckout(), customerClaims()))
	require.Equal(t, 201, rec.Code)

	req := authedRequest(t, "GET", "/orders/ORD717123", nil, customerClaims())
	req = mux.SetURLVars(req, map[string]string{"id": "ORD717123"})
	rec = httptest.NewRecorder()
	oc.GetOrderByID(rec, req)
	require.Equal(t, 200, rec.Code)

	var order models.Order
	decodeBody(t, rec, &order)
	assert.Equal(t, "ORD717123", order.ID)

	req = authedRequest(t, "GET", "/orders/ORD000000", nil, customerClaims())
	req = mux.SetURLVars(req, map[string]string{"id": "ORD000000"})
	rec = httptest.NewRecorder()
	oc.GetOrderByID(rec, req)
	assert.Equal(t, 404, rec.Code)
}
