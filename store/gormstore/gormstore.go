// Package gormstore is the relational Store backend. Schema management
// follows the usual AutoMigrate-on-boot approach.
package gormstore

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mechshop-backend/models"
	"mechshop-backend/store"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.InventoryItem{},
		&models.Job{},
		&models.JobService{},
		&models.JobConsumable{},
		&models.ScheduledService{},
	); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Users() store.UserStore               { return &userStore{s.db} }
func (s *Store) Services() store.ServiceStore         { return &serviceStore{s.db} }
func (s *Store) Inventory() store.InventoryStore      { return &inventoryStore{s.db} }
func (s *Store) Jobs() store.JobStore                 { return &jobStore{s.db} }
func (s *Store) Appointments() store.AppointmentStore { return &appointmentStore{s.db} }

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}

// Users

type userStore struct{ db *gorm.DB }

func (u *userStore) List() ([]models.User, error) {
	var users []models.User
	err := u.db.Order("created_at").Find(&users).Error
	return users, err
}

func (u *userStore) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := u.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (u *userStore) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := u.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (u *userStore) Create(user *models.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	return u.db.Create(user).Error
}

func (u *userStore) Update(user *models.User) error {
	result := u.db.Model(&models.User{}).Where("id = ?", user.ID).
		Select("*").Omit("id", "created_at").Updates(user)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (u *userStore) ToggleActive(id string) (*models.User, error) {
	user, err := u.GetByID(id)
	if err != nil {
		return nil, err
	}
	user.IsActive = !user.IsActive
	if err := u.db.Model(user).Update("is_active", user.IsActive).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Services

type serviceStore struct{ db *gorm.DB }

func (s *serviceStore) List() ([]models.Service, error) {
	var services []models.Service
	err := s.db.Find(&services).Error
	return services, err
}

func (s *serviceStore) ListActive() ([]models.Service, error) {
	var services []models.Service
	err := s.db.Where("is_active = ?", true).Find(&services).Error
	return services, err
}

func (s *serviceStore) GetByID(id string) (*models.Service, error) {
	var service models.Service
	if err := s.db.First(&service, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &service, nil
}

func (s *serviceStore) Create(service *models.Service) error {
	service.ID = uuid.NewString()
	return s.db.Create(service).Error
}

func (s *serviceStore) Update(service *models.Service) error {
	result := s.db.Model(&models.Service{}).Where("id = ?", service.ID).
		Select("*").Omit("id").Updates(service)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *serviceStore) ToggleActive(id string) (*models.Service, error) {
	service, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	service.IsActive = !service.IsActive
	if err := s.db.Model(service).Update("is_active", service.IsActive).Error; err != nil {
		return nil, err
	}
	return service, nil
}

// Inventory

type inventoryStore struct{ db *gorm.DB }

func (inv *inventoryStore) List() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := inv.db.Find(&items).Error
	return items, err
}

func (inv *inventoryStore) GetByID(id string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := inv.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &item, nil
}

func (inv *inventoryStore) Create(item *models.InventoryItem) error {
	item.ID = uuid.NewString()
	item.LastUpdated = time.Now()
	return inv.db.Create(item).Error
}

func (inv *inventoryStore) Update(item *models.InventoryItem) error {
	item.LastUpdated = time.Now()
	result := inv.db.Model(&models.InventoryItem{}).Where("id = ?", item.ID).
		Select("*").Omit("id").Updates(item)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Jobs

type jobStore struct{ db *gorm.DB }

func (j *jobStore) List() ([]models.Job, error) {
	var jobs []models.Job
	err := j.db.Preload("Services").Preload("Consumables").
		Order("date DESC").Find(&jobs).Error
	return jobs, err
}

func (j *jobStore) GetByID(id string) (*models.Job, error) {
	var job models.Job
	if err := j.db.Preload("Services").Preload("Consumables").
		First(&job, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &job, nil
}

func stampJobItems(job *models.Job) {
	for i := range job.Services {
		job.Services[i].ID = uuid.NewString()
		job.Services[i].JobID = job.ID
	}
	for i := range job.Consumables {
		job.Consumables[i].ID = uuid.NewString()
		job.Consumables[i].JobID = job.ID
	}
}

func (j *jobStore) Create(job *models.Job) error {
	job.ID = uuid.NewString()
	stampJobItems(job)
	return j.db.Create(job).Error
}

// Update is a full replace: line-item lists are cleared and recreated rather
// than patched.
func (j *jobStore) Update(job *models.Job) error {
	return j.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Job
		if err := tx.First(&existing, "id = ?", job.ID).Error; err != nil {
			return wrapNotFound(err)
		}

		if err := tx.Where("job_id = ?", job.ID).Delete(&models.JobService{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", job.ID).Delete(&models.JobConsumable{}).Error; err != nil {
			return err
		}

		stampJobItems(job)
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(job).Error
	})
}

func (j *jobStore) Delete(id string) error {
	return j.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.JobService{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", id).Delete(&models.JobConsumable{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Job{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return store.ErrNotFound
		}
		return nil
	})
}

// Appointments

type appointmentStore struct{ db *gorm.DB }

func (a *appointmentStore) List() ([]models.ScheduledService, error) {
	var appointments []models.ScheduledService
	err := a.db.Order("scheduled_date").Find(&appointments).Error
	return appointments, err
}

func (a *appointmentStore) GetByID(id string) (*models.ScheduledService, error) {
	var appointment models.ScheduledService
	if err := a.db.First(&appointment, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &appointment, nil
}

func (a *appointmentStore) Create(appointment *models.ScheduledService) error {
	appointment.ID = uuid.NewString()
	appointment.CreatedAt = time.Now()
	return a.db.Create(appointment).Error
}

func (a *appointmentStore) Update(appointment *models.ScheduledService) error {
	result := a.db.Model(&models.ScheduledService{}).Where("id = ?", appointment.ID).
		Select("*").Omit("id", "created_at").Updates(appointment)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (a *appointmentStore) Delete(id string) error {
	result := a.db.Delete(&models.ScheduledService{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
