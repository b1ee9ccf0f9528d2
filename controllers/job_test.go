package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mechshop-backend/controllers"
	"mechshop-backend/models"
	"mechshop-backend/services"
	"mechshop-backend/store/memstore"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type controllerFixture struct {
	store       *memstore.Store
	staff       *models.User
	oilChange   *models.Service
	engineOil   *models.InventoryItem
	jobs        *controllers.JobController
	inventoryCt *controllers.InventoryController
}

func newControllerFixture(t *testing.T) *controllerFixture {
	t.Helper()
	s := memstore.New()

	staff := &models.User{Username: "staff1", Name: "John Mechanic", Role: models.RoleStaff, IsActive: true}
	require.NoError(t, s.Users().Create(staff))

	oilChange := &models.Service{Name: "Oil Change", Type: models.ServiceTypeFixed, Price: 45, IsActive: true}
	require.NoError(t, s.Services().Create(oilChange))

	engineOil := &models.InventoryItem{ItemName: "Engine Oil - 5W30", Quantity: 10, Unit: "litres", Threshold: 5}
	require.NoError(t, s.Inventory().Create(engineOil))

	inventoryService := services.NewInventoryService(s)
	jobManager := services.NewJobManager(s, inventoryService)

	return &controllerFixture{
		store:       s,
		staff:       staff,
		oilChange:   oilChange,
		engineOil:   engineOil,
		jobs:        controllers.NewJobController(s, jobManager),
		inventoryCt: controllers.NewInventoryController(inventoryService),
	}
}

func jsonRequest(t *testing.T, method, target string, payload any) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	c.Request = httptest.NewRequest(method, target, &body)
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestCreateJobHandler(t *testing.T) {
	f := newControllerFixture(t)

	w, c := jsonRequest(t, "POST", "/api/jobs", gin.H{
		"customerName": "Alice",
		"vehicle":      "Toyota Corolla",
		"services":     []gin.H{{"serviceId": f.oilChange.ID, "quantity": 1}},
		"consumables":  []gin.H{{"itemId": f.engineOil.ID, "quantityUsed": 4}},
		"paymentType":  "cash",
	})
	c.Set("userId", f.staff.ID)

	f.jobs.CreateJob(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var job models.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
	assert.Equal(t, 45.0, job.TotalPrice)
	assert.Equal(t, "John Mechanic", job.StaffName)

	item, err := f.store.Inventory().GetByID(f.engineOil.ID)
	require.NoError(t, err)
	assert.Equal(t, 6.0, item.Quantity)
}

func TestCreateJobHandlerInsufficientStock(t *testing.T) {
	f := newControllerFixture(t)

	w, c := jsonRequest(t, "POST", "/api/jobs", gin.H{
		"customerName": "Alice",
		"vehicle":      "Toyota Corolla",
		"services":     []gin.H{{"serviceId": f.oilChange.ID, "quantity": 1}},
		"consumables":  []gin.H{{"itemId": f.engineOil.ID, "quantityUsed": 99}},
		"paymentType":  "cash",
	})
	c.Set("userId", f.staff.ID)

	f.jobs.CreateJob(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	jobs, err := f.store.Jobs().List()
	require.NoError(t, err)
	assert.Empty(t, jobs)

	item, err := f.store.Inventory().GetByID(f.engineOil.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, item.Quantity)
}

func TestCreateJobHandlerRejectsBadPayload(t *testing.T) {
	f := newControllerFixture(t)

	w, c := jsonRequest(t, "POST", "/api/jobs", gin.H{
		"customerName": "Alice",
		// vehicle and services missing
		"paymentType": "cash",
	})
	c.Set("userId", f.staff.ID)

	f.jobs.CreateJob(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetJobNotFound(t *testing.T) {
	f := newControllerFixture(t)

	w, c := jsonRequest(t, "GET", "/api/jobs/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	f.jobs.GetJob(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLowStockHandler(t *testing.T) {
	f := newControllerFixture(t)

	low := &models.InventoryItem{ItemName: "Air Filter", Quantity: 2, Unit: "pcs", Threshold: 5}
	require.NoError(t, f.store.Inventory().Create(low))

	w, c := jsonRequest(t, "GET", "/api/inventory/low-stock", nil)
	f.inventoryCt.GetLowStockItems(c)

	require.Equal(t, http.StatusOK, w.Code)

	var items []models.InventoryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Air Filter", items[0].ItemName)
}

func TestRestockHandler(t *testing.T) {
	f := newControllerFixture(t)

	w, c := jsonRequest(t, "POST",
		fmt.Sprintf("/api/inventory/%s/restock", f.engineOil.ID), gin.H{"amount": 5})
	c.Params = gin.Params{{Key: "id", Value: f.engineOil.ID}}

	f.inventoryCt.RestockItem(c)

	require.Equal(t, http.StatusOK, w.Code)

	var item models.InventoryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 15.0, item.Quantity)

	// Date filter sanity for the list endpoint.
	today := time.Now().Format("2006-01-02")
	w, c = jsonRequest(t, "GET", "/api/jobs?date="+today, nil)
	f.jobs.GetJobs(c)
	assert.Equal(t, http.StatusOK, w.Code)
}
