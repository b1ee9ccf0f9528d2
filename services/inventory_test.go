package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mechshop-backend/models"
	"mechshop-backend/services"
	"mechshop-backend/store"
	"mechshop-backend/store/memstore"
)

func newInventoryFixture(t *testing.T, items ...models.InventoryItem) (*memstore.Store, *services.InventoryService, []string) {
	t.Helper()
	s := memstore.New()
	ids := make([]string, 0, len(items))
	for i := range items {
		require.NoError(t, s.Inventory().Create(&items[i]))
		ids = append(ids, items[i].ID)
	}
	return s, services.NewInventoryService(s), ids
}

func quantityOf(t *testing.T, s *memstore.Store, id string) float64 {
	t.Helper()
	item, err := s.Inventory().GetByID(id)
	require.NoError(t, err)
	return item.Quantity
}

func TestConsumeDecrementsStock(t *testing.T) {
	s, inventory, ids := newInventoryFixture(t,
		models.InventoryItem{ItemName: "Engine Oil", Quantity: 10, Unit: "litres", Threshold: 5},
	)

	err := inventory.Consume([]models.ConsumptionRequest{{ItemID: ids[0], QuantityUsed: 5}})
	require.NoError(t, err)
	assert.Equal(t, 5.0, quantityOf(t, s, ids[0]))

	// At the threshold now, boundary is inclusive.
	low, err := inventory.LowStock()
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, ids[0], low[0].ID)

	// Drawing 6 from the remaining 5 fails and changes nothing.
	err = inventory.Consume([]models.ConsumptionRequest{{ItemID: ids[0], QuantityUsed: 6}})
	require.ErrorIs(t, err, store.ErrInsufficientStock)
	assert.Equal(t, 5.0, quantityOf(t, s, ids[0]))
}

func TestConsumeIsAllOrNothing(t *testing.T) {
	s, inventory, ids := newInventoryFixture(t,
		models.InventoryItem{ItemName: "Oil Filter", Quantity: 15, Unit: "pcs", Threshold: 5},
		models.InventoryItem{ItemName: "Brake Fluid", Quantity: 8, Unit: "bottles", Threshold: 3},
	)

	// The first line alone would succeed; the second exceeds stock. Neither
	// item may change.
	err := inventory.Consume([]models.ConsumptionRequest{
		{ItemID: ids[0], QuantityUsed: 3},
		{ItemID: ids[1], QuantityUsed: 9},
	})
	require.ErrorIs(t, err, store.ErrInsufficientStock)
	assert.Equal(t, 15.0, quantityOf(t, s, ids[0]))
	assert.Equal(t, 8.0, quantityOf(t, s, ids[1]))
}

func TestConsumeUnknownItem(t *testing.T) {
	s, inventory, ids := newInventoryFixture(t,
		models.InventoryItem{ItemName: "Coolant", Quantity: 12, Unit: "litres", Threshold: 8},
	)

	err := inventory.Consume([]models.ConsumptionRequest{
		{ItemID: ids[0], QuantityUsed: 2},
		{ItemID: "no-such-item", QuantityUsed: 1},
	})
	require.ErrorIs(t, err, store.ErrItemNotFound)
	assert.Equal(t, 12.0, quantityOf(t, s, ids[0]))
}

func TestConsumeNetsDuplicateLines(t *testing.T) {
	s, inventory, ids := newInventoryFixture(t,
		models.InventoryItem{ItemName: "Engine Oil", Quantity: 10, Unit: "litres", Threshold: 2},
	)

	// Each line fits the original stock level, but together they draw 12.
	err := inventory.Consume([]models.ConsumptionRequest{
		{ItemID: ids[0], QuantityUsed: 6},
		{ItemID: ids[0], QuantityUsed: 6},
	})
	require.ErrorIs(t, err, store.ErrInsufficientStock)
	assert.Equal(t, 10.0, quantityOf(t, s, ids[0]))

	// A combined draw within stock succeeds as one decrement.
	err = inventory.Consume([]models.ConsumptionRequest{
		{ItemID: ids[0], QuantityUsed: 4},
		{ItemID: ids[0], QuantityUsed: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, 2.0, quantityOf(t, s, ids[0]))
}

func TestConsumeToZero(t *testing.T) {
	s, inventory, ids := newInventoryFixture(t,
		models.InventoryItem{ItemName: "Air Filter", Quantity: 2, Unit: "pcs", Threshold: 5},
	)

	err := inventory.Consume([]models.ConsumptionRequest{{ItemID: ids[0], QuantityUsed: 2}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, quantityOf(t, s, ids[0]))
}

func TestConsumeRejectsNonPositiveQuantity(t *testing.T) {
	s, inventory, ids := newInventoryFixture(t,
		models.InventoryItem{ItemName: "Coolant", Quantity: 12, Unit: "litres", Threshold: 8},
	)

	err := inventory.Consume([]models.ConsumptionRequest{{ItemID: ids[0], QuantityUsed: 0}})
	require.True(t, store.IsValidation(err))
	assert.Equal(t, 12.0, quantityOf(t, s, ids[0]))
}

func TestLowStockIsExactlyTheThresholdSet(t *testing.T) {
	_, inventory, ids := newInventoryFixture(t,
		models.InventoryItem{ItemName: "Above", Quantity: 11, Unit: "pcs", Threshold: 10},
		models.InventoryItem{ItemName: "At", Quantity: 10, Unit: "pcs", Threshold: 10},
		models.InventoryItem{ItemName: "Below", Quantity: 9, Unit: "pcs", Threshold: 10},
		models.InventoryItem{ItemName: "Empty", Quantity: 0, Unit: "pcs", Threshold: 0},
	)

	low, err := inventory.LowStock()
	require.NoError(t, err)

	var lowIDs []string
	for _, item := range low {
		lowIDs = append(lowIDs, item.ID)
	}
	assert.ElementsMatch(t, []string{ids[1], ids[2], ids[3]}, lowIDs)
}

func TestRestock(t *testing.T) {
	s, inventory, ids := newInventoryFixture(t,
		models.InventoryItem{ItemName: "Brake Fluid", Quantity: 3, Unit: "bottles", Threshold: 3},
	)

	item, err := inventory.Restock(ids[0], 5)
	require.NoError(t, err)
	assert.Equal(t, 8.0, item.Quantity)
	assert.Equal(t, 8.0, quantityOf(t, s, ids[0]))

	_, err = inventory.Restock(ids[0], 0)
	require.True(t, store.IsValidation(err))

	_, err = inventory.Restock("no-such-item", 5)
	require.ErrorIs(t, err, store.ErrNotFound)
}
