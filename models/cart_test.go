package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddItemMergesByProductID(t *testing.T) {
	var cart Cart
	earbuds := Product{ID: "e2", Name: "Wireless Bluetooth Earbuds", Category: CategoryElectronics, Price: 2999}

	cart.AddItem(earbuds)
	cart.AddItem(earbuds)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "e2", cart.Items[0].ID)
}

func TestCartAddItemAppendsDistinctProducts(t *testing.T) {
	var cart Cart
	cart.AddItem(Product{ID: "e1", Price: 32999})
	cart.AddItem(Product{ID: "c1", Price: 1499})

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.Items[1].Quantity)
	// Order of insertion is preserved
	assert.Equal(t, "e1", cart.Items[0].ID)
	assert.Equal(t, "c1", cart.Items[1].ID)
}

func TestCartTotal(t *testing.T) {
	var cart Cart
	assert.Equal(t, 0.0, cart.Total())

	cart.AddItem(Product{ID: "a", Price: 100})
	cart.AddItem(Product{ID: "a", Price: 100})
	cart.AddItem(Product{ID: "b", Price: 250})
	assert.Equal(t, 450.0, cart.Total())
}

func TestCartTotalDefaultsZeroQuantityToOne(t *testing.T) {
	cart := Cart{Items: []CartLine{{Product: Product{ID: "a", Price: 100}}}}
	assert.Equal(t, 100.0, cart.Total())
}

func TestCartRemoveItem(t *testing.T) {
	var cart Cart
	cart.AddItem(Product{ID: "a", Price: 100})

	cart.RemoveItem("a")
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total())

	// Removing an absent id is a no-op
	cart.AddItem(Product{ID: "b", Price: 50})
	cart.RemoveItem("a")
	assert.Len(t, cart.Items, 1)
}

func TestCartClear(t *testing.T) {
	var cart Cart
	cart.AddItem(Product{ID: "a", Price: 100})
	cart.AddItem(Product{ID: "b", Price: 200})

	cart.Clear()
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total())
}

func TestCartSnapshotIsACopy(t *testing.T) {
	var cart Cart
	cart.AddItem(Product{ID: "a", Price: 100})

	snapshot := cart.Snapshot()
	cart.AddItem(Product{ID: "a", Price: 100})

	require.Len(t, snapshot, 1)
	assert.Equal(t, 1, snapshot[0].Quantity)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}
