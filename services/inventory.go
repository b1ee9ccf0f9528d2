package services

import (
	"errors"
	"fmt"

	"mechshop-backend/models"
	"mechshop-backend/store"
)

type InventoryService struct {
	store store.Store
}

func NewInventoryService(s store.Store) *InventoryService {
	return &InventoryService{store: s}
}

func (s *InventoryService) List() ([]models.InventoryItem, error) {
	return s.store.Inventory().List()
}

func (s *InventoryService) Get(id string) (*models.InventoryItem, error) {
	return s.store.Inventory().GetByID(id)
}

func (s *InventoryService) Create(item *models.InventoryItem) error {
	if item.ItemName == "" || item.Unit == "" {
		return store.Validationf("item name and unit are required")
	}
	if item.Quantity < 0 || item.Threshold < 0 {
		return store.Validationf("quantity and threshold cannot be negative")
	}
	return s.store.Inventory().Create(item)
}

func (s *InventoryService) Update(item *models.InventoryItem) error {
	if item.Quantity < 0 {
		return store.Validationf("quantity cannot be negative")
	}
	return s.store.Inventory().Update(item)
}

// Restock adds amount to the item's stock level.
func (s *InventoryService) Restock(id string, amount float64) (*models.InventoryItem, error) {
	if amount <= 0 {
		return nil, store.Validationf("restock amount must be positive")
	}
	item, err := s.store.Inventory().GetByID(id)
	if err != nil {
		return nil, err
	}
	item.Quantity += amount
	if err := s.store.Inventory().Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// LowStock returns every item at or below its threshold.
func (s *InventoryService) LowStock() ([]models.InventoryItem, error) {
	items, err := s.store.Inventory().List()
	if err != nil {
		return nil, err
	}
	var low []models.InventoryItem
	for _, item := range items {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low, nil
}

// Consume validates and applies a consumption batch, all-or-nothing. Requests
// naming the same item id are netted before the sufficiency check, so a batch
// whose combined draw on one item exceeds stock is rejected. A failing batch
// leaves every stock level exactly as it was.
func (s *InventoryService) Consume(requests []models.ConsumptionRequest) error {
	if len(requests) == 0 {
		return nil
	}

	needed := make(map[string]float64, len(requests))
	var order []string
	for _, req := range requests {
		if req.QuantityUsed <= 0 {
			return store.Validationf("quantity used must be positive")
		}
		if _, seen := needed[req.ItemID]; !seen {
			order = append(order, req.ItemID)
		}
		needed[req.ItemID] += req.QuantityUsed
	}

	// Validation pass: no mutation until every line checks out.
	items := make(map[string]*models.InventoryItem, len(order))
	for _, id := range order {
		item, err := s.store.Inventory().GetByID(id)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s", store.ErrItemNotFound, id)
		}
		if err != nil {
			return err
		}
		if item.Quantity < needed[id] {
			return fmt.Errorf("%w for %s: available %g %s, required %g",
				store.ErrInsufficientStock, item.ItemName, item.Quantity, item.Unit, needed[id])
		}
		items[id] = item
	}

	// Apply pass.
	for _, id := range order {
		item := items[id]
		item.Quantity -= needed[id]
		if err := s.store.Inventory().Update(item); err != nil {
			return err
		}
	}
	return nil
}
