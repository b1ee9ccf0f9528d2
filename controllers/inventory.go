// controllers/inventory.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mechshop-backend/models"
	"mechshop-backend/services"
	"mechshop-backend/utils"
)

// CreateInventoryInput defines the expected JSON structure for creating a stock record
type CreateInventoryInput struct {
	ItemName     string  `json:"itemName" binding:"required"`
	Category     string  `json:"category"`
	Quantity     float64 `json:"quantity" binding:"min=0"`
	Unit         string  `json:"unit" binding:"required"`
	Threshold    float64 `json:"threshold" binding:"min=0"`
	PricePerUnit float64 `json:"pricePerUnit" binding:"min=0"`
}

// UpdateInventoryInput defines the expected JSON structure for updating a stock record
type UpdateInventoryInput struct {
	ItemName     *string  `json:"itemName"`
	Category     *string  `json:"category"`
	Quantity     *float64 `json:"quantity"`
	Unit         *string  `json:"unit"`
	Threshold    *float64 `json:"threshold"`
	PricePerUnit *float64 `json:"pricePerUnit"`
}

type RestockInput struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type InventoryController struct {
	inventory *services.InventoryService
}

func NewInventoryController(inventory *services.InventoryService) *InventoryController {
	return &InventoryController{inventory: inventory}
}

func (ic *InventoryController) GetItems(c *gin.Context) {
	items, err := ic.inventory.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve inventory")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetLowStockItems returns every item at or below its threshold.
func (ic *InventoryController) GetLowStockItems(c *gin.Context) {
	items, err := ic.inventory.LowStock()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve inventory")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ic *InventoryController) GetItem(c *gin.Context) {
	item, err := ic.inventory.Get(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ic *InventoryController) CreateItem(c *gin.Context) {
	var input CreateInventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item := models.InventoryItem{
		ItemName:     input.ItemName,
		Category:     input.Category,
		Quantity:     input.Quantity,
		Unit:         input.Unit,
		Threshold:    input.Threshold,
		PricePerUnit: input.PricePerUnit,
	}

	if err := ic.inventory.Create(&item); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (ic *InventoryController) UpdateItem(c *gin.Context) {
	item, err := ic.inventory.Get(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	var input UpdateInventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.ItemName != nil {
		item.ItemName = *input.ItemName
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.Threshold != nil {
		item.Threshold = *input.Threshold
	}
	if input.PricePerUnit != nil {
		item.PricePerUnit = *input.PricePerUnit
	}

	if err := ic.inventory.Update(item); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (ic *InventoryController) RestockItem(c *gin.Context) {
	var input RestockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item, err := ic.inventory.Restock(c.Param("id"), input.Amount)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
