// controllers/service.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mechshop-backend/models"
	"mechshop-backend/store"
	"mechshop-backend/utils"
)

// CreateServiceInput defines the expected JSON structure for creating a catalog service
type CreateServiceInput struct {
	Name          string  `json:"name" binding:"required"`
	Type          string  `json:"type" binding:"required,oneof=fixed hourly custom"`
	Price         float64 `json:"price" binding:"required,min=0"`
	EstimatedTime int     `json:"estimatedTime" binding:"min=0"` // in minutes
}

// UpdateServiceInput defines the expected JSON structure for updating a catalog service
type UpdateServiceInput struct {
	Name          *string  `json:"name"`
	Type          *string  `json:"type" binding:"omitempty,oneof=fixed hourly custom"`
	Price         *float64 `json:"price"`
	EstimatedTime *int     `json:"estimatedTime"`
	IsActive      *bool    `json:"isActive"`
}

type ServiceController struct {
	store store.Store
}

func NewServiceController(s store.Store) *ServiceController {
	return &ServiceController{store: s}
}

func (sc *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		Name:          input.Name,
		Type:          input.Type,
		Price:         input.Price,
		EstimatedTime: input.EstimatedTime,
		IsActive:      true,
	}

	if err := sc.store.Services().Create(&service); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices lists the catalog; ?active=true narrows to active entries.
func (sc *ServiceController) GetServices(c *gin.Context) {
	var (
		services []models.Service
		err      error
	)
	if c.Query("active") == "true" {
		services, err = sc.store.Services().ListActive()
	} else {
		services, err = sc.store.Services().List()
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}
	c.JSON(http.StatusOK, services)
}

func (sc *ServiceController) GetService(c *gin.Context) {
	service, err := sc.store.Services().GetByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (sc *ServiceController) UpdateService(c *gin.Context) {
	service, err := sc.store.Services().GetByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Update fields if provided. Historical jobs keep their price snapshots.
	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Type != nil {
		service.Type = *input.Type
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.EstimatedTime != nil {
		service.EstimatedTime = *input.EstimatedTime
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := sc.store.Services().Update(service); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// ToggleService flips the catalog entry's active flag.
func (sc *ServiceController) ToggleService(c *gin.Context) {
	service, err := sc.store.Services().ToggleActive(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}
