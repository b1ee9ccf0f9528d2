package services

import (
	"errors"
	"fmt"
	"time"

	"mechshop-backend/models"
	"mechshop-backend/store"
	"mechshop-backend/utils"
)

// JobServiceInput is one service line of a job. Catalog lines are priced by
// lookup; custom lines carry their own name and price.
type JobServiceInput struct {
	ServiceID string  `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" binding:"min=1"`
	IsCustom  bool    `json:"isCustom"`
}

type JobInput struct {
	CustomerName string                      `json:"customerName" binding:"required"`
	Vehicle      string                      `json:"vehicle" binding:"required"`
	Services     []JobServiceInput           `json:"services" binding:"required,min=1"`
	Consumables  []models.ConsumptionRequest `json:"consumables"`
	PaymentType  string                      `json:"paymentType" binding:"required,oneof=cash card transfer check"`
	Date         *time.Time                  `json:"date"`
	Notes        string                      `json:"notes"`
}

type JobManager struct {
	store     store.Store
	inventory *InventoryService
}

func NewJobManager(s store.Store, inventory *InventoryService) *JobManager {
	return &JobManager{store: s, inventory: inventory}
}

func (m *JobManager) List() ([]models.Job, error) {
	return m.store.Jobs().List()
}

func (m *JobManager) Get(id string) (*models.Job, error) {
	return m.store.Jobs().GetByID(id)
}

func (m *JobManager) ByStaff(staffID string) ([]models.Job, error) {
	jobs, err := m.store.Jobs().List()
	if err != nil {
		return nil, err
	}
	var out []models.Job
	for _, job := range jobs {
		if job.StaffID == staffID {
			out = append(out, job)
		}
	}
	return out, nil
}

// ByDate filters on calendar-day equality in local time.
func (m *JobManager) ByDate(date time.Time) ([]models.Job, error) {
	jobs, err := m.store.Jobs().List()
	if err != nil {
		return nil, err
	}
	var out []models.Job
	for _, job := range jobs {
		if utils.SameDay(date, job.Date) {
			out = append(out, job)
		}
	}
	return out, nil
}

func (m *JobManager) ForToday() ([]models.Job, error) {
	return m.ByDate(time.Now())
}

// Create builds the line-item snapshots, consumes inventory, and writes the
// job. Consumption runs first: if any consumable line fails validation, no job
// record is written and no stock level changes.
func (m *JobManager) Create(input JobInput, staff *models.User) (*models.Job, error) {
	lines, total, err := m.buildServiceLines(input.Services)
	if err != nil {
		return nil, err
	}

	consumables, err := m.buildConsumableLines(input.Consumables)
	if err != nil {
		return nil, err
	}

	if len(input.Consumables) > 0 {
		if err := m.inventory.Consume(input.Consumables); err != nil {
			return nil, err
		}
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	job := &models.Job{
		CustomerName: input.CustomerName,
		Vehicle:      input.Vehicle,
		Services:     lines,
		Consumables:  consumables,
		TotalPrice:   total,
		PaymentType:  input.PaymentType,
		Date:         date,
		StaffID:      staff.ID,
		StaffName:    staff.Name,
		Notes:        input.Notes,
	}
	if err := m.store.Jobs().Create(job); err != nil {
		return nil, err
	}
	return job, nil
}

// Update fully replaces the job's fields and line-item lists. It deliberately
// performs no inventory reconciliation: changing a job's consumable list after
// the fact never adjusts stock.
func (m *JobManager) Update(id string, input JobInput) (*models.Job, error) {
	existing, err := m.store.Jobs().GetByID(id)
	if err != nil {
		return nil, err
	}

	lines, total, err := m.buildServiceLines(input.Services)
	if err != nil {
		return nil, err
	}
	consumables, err := m.buildConsumableLines(input.Consumables)
	if err != nil {
		return nil, err
	}

	existing.CustomerName = input.CustomerName
	existing.Vehicle = input.Vehicle
	existing.Services = lines
	existing.Consumables = consumables
	existing.TotalPrice = total
	existing.PaymentType = input.PaymentType
	existing.Notes = input.Notes
	if input.Date != nil {
		existing.Date = *input.Date
	}

	if err := m.store.Jobs().Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (m *JobManager) Delete(id string) error {
	return m.store.Jobs().Delete(id)
}

func (m *JobManager) buildServiceLines(inputs []JobServiceInput) ([]models.JobService, float64, error) {
	if len(inputs) == 0 {
		return nil, 0, store.Validationf("at least one service line is required")
	}

	var lines []models.JobService
	var total float64
	for _, in := range inputs {
		quantity := in.Quantity
		if quantity < 1 {
			quantity = 1
		}

		line := models.JobService{Quantity: quantity}
		if in.IsCustom {
			if in.Name == "" {
				return nil, 0, store.Validationf("custom service line needs a name")
			}
			if in.Price < 0 {
				return nil, 0, store.Validationf("custom service price cannot be negative")
			}
			line.ServiceName = in.Name
			line.Price = in.Price
			line.IsCustom = true
		} else {
			service, err := m.store.Services().GetByID(in.ServiceID)
			if err != nil {
				return nil, 0, store.Validationf("service not found: %s", in.ServiceID)
			}
			line.ServiceID = service.ID
			line.ServiceName = service.Name
			line.Price = service.Price
		}

		total += line.Price * float64(line.Quantity)
		lines = append(lines, line)
	}
	return lines, total, nil
}

func (m *JobManager) buildConsumableLines(requests []models.ConsumptionRequest) ([]models.JobConsumable, error) {
	var lines []models.JobConsumable
	for _, req := range requests {
		item, err := m.store.Inventory().GetByID(req.ItemID)
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", store.ErrItemNotFound, req.ItemID)
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, models.JobConsumable{
			ItemID:       item.ID,
			ItemName:     item.ItemName,
			QuantityUsed: req.QuantityUsed,
			Unit:         item.Unit,
		})
	}
	return lines, nil
}
