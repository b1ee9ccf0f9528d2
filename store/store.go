package store

import (
	"mechshop-backend/models"
)

// Store is the persistence contract the business layer is written against.
// There are two implementations: gormstore (postgres) and memstore (in-memory,
// used when no database is configured and by tests). Collections own their
// entities; cross-references are by id plus denormalized snapshots, never live
// pointers.
//
// No concurrent-write isolation is guaranteed: a read/modify/write sequence by
// two callers can clobber each other last-write-wins. Single-session use is the
// operating assumption.
type Store interface {
	Users() UserStore
	Services() ServiceStore
	Inventory() InventoryStore
	Jobs() JobStore
	Appointments() AppointmentStore
}

type UserStore interface {
	List() ([]models.User, error)
	GetByID(id string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	ToggleActive(id string) (*models.User, error)
}

type ServiceStore interface {
	List() ([]models.Service, error)
	ListActive() ([]models.Service, error)
	GetByID(id string) (*models.Service, error)
	Create(service *models.Service) error
	Update(service *models.Service) error
	ToggleActive(id string) (*models.Service, error)
}

type InventoryStore interface {
	List() ([]models.InventoryItem, error)
	GetByID(id string) (*models.InventoryItem, error)
	Create(item *models.InventoryItem) error
	Update(item *models.InventoryItem) error
}

type JobStore interface {
	List() ([]models.Job, error)
	GetByID(id string) (*models.Job, error)
	Create(job *models.Job) error
	Update(job *models.Job) error
	Delete(id string) error
}

type AppointmentStore interface {
	List() ([]models.ScheduledService, error)
	GetByID(id string) (*models.ScheduledService, error)
	Create(appointment *models.ScheduledService) error
	Update(appointment *models.ScheduledService) error
	Delete(id string) error
}
