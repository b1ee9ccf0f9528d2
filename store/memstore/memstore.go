// Package memstore is the in-memory Store backend. It is used when no
// database is configured and by the test suite, and behaves like the
// relational backend from the caller's perspective: reads return copies, so
// nothing a caller does to a returned entity is visible until it is written
// back through Update.
package memstore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"mechshop-backend/models"
	"mechshop-backend/store"
)

type Store struct {
	mu           sync.RWMutex
	users        []models.User
	services     []models.Service
	items        []models.InventoryItem
	jobs         []models.Job
	appointments []models.ScheduledService
}

func New() *Store {
	return &Store{}
}

func (s *Store) Users() store.UserStore               { return &userStore{s} }
func (s *Store) Services() store.ServiceStore         { return &serviceStore{s} }
func (s *Store) Inventory() store.InventoryStore      { return &inventoryStore{s} }
func (s *Store) Jobs() store.JobStore                 { return &jobStore{s} }
func (s *Store) Appointments() store.AppointmentStore { return &appointmentStore{s} }

// Users

type userStore struct{ s *Store }

func (u *userStore) List() ([]models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	out := make([]models.User, len(u.s.users))
	copy(out, u.s.users)
	return out, nil
}

func (u *userStore) GetByID(id string) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for i := range u.s.users {
		if u.s.users[i].ID == id {
			user := u.s.users[i]
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (u *userStore) GetByUsername(username string) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for i := range u.s.users {
		if u.s.users[i].Username == username {
			user := u.s.users[i]
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (u *userStore) Create(user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	u.s.users = append(u.s.users, *user)
	return nil
}

func (u *userStore) Update(user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for i := range u.s.users {
		if u.s.users[i].ID == user.ID {
			u.s.users[i] = *user
			return nil
		}
	}
	return store.ErrNotFound
}

func (u *userStore) ToggleActive(id string) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for i := range u.s.users {
		if u.s.users[i].ID == id {
			u.s.users[i].IsActive = !u.s.users[i].IsActive
			user := u.s.users[i]
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

// Services

type serviceStore struct{ s *Store }

func (svc *serviceStore) List() ([]models.Service, error) {
	svc.s.mu.RLock()
	defer svc.s.mu.RUnlock()
	out := make([]models.Service, len(svc.s.services))
	copy(out, svc.s.services)
	return out, nil
}

func (svc *serviceStore) ListActive() ([]models.Service, error) {
	svc.s.mu.RLock()
	defer svc.s.mu.RUnlock()
	var out []models.Service
	for _, service := range svc.s.services {
		if service.IsActive {
			out = append(out, service)
		}
	}
	return out, nil
}

func (svc *serviceStore) GetByID(id string) (*models.Service, error) {
	svc.s.mu.RLock()
	defer svc.s.mu.RUnlock()
	for i := range svc.s.services {
		if svc.s.services[i].ID == id {
			service := svc.s.services[i]
			return &service, nil
		}
	}
	return nil, store.ErrNotFound
}

func (svc *serviceStore) Create(service *models.Service) error {
	svc.s.mu.Lock()
	defer svc.s.mu.Unlock()
	service.ID = uuid.NewString()
	svc.s.services = append(svc.s.services, *service)
	return nil
}

func (svc *serviceStore) Update(service *models.Service) error {
	svc.s.mu.Lock()
	defer svc.s.mu.Unlock()
	for i := range svc.s.services {
		if svc.s.services[i].ID == service.ID {
			svc.s.services[i] = *service
			return nil
		}
	}
	return store.ErrNotFound
}

func (svc *serviceStore) ToggleActive(id string) (*models.Service, error) {
	svc.s.mu.Lock()
	defer svc.s.mu.Unlock()
	for i := range svc.s.services {
		if svc.s.services[i].ID == id {
			svc.s.services[i].IsActive = !svc.s.services[i].IsActive
			service := svc.s.services[i]
			return &service, nil
		}
	}
	return nil, store.ErrNotFound
}

// Inventory

type inventoryStore struct{ s *Store }

func (inv *inventoryStore) List() ([]models.InventoryItem, error) {
	inv.s.mu.RLock()
	defer inv.s.mu.RUnlock()
	out := make([]models.InventoryItem, len(inv.s.items))
	copy(out, inv.s.items)
	return out, nil
}

func (inv *inventoryStore) GetByID(id string) (*models.InventoryItem, error) {
	inv.s.mu.RLock()
	defer inv.s.mu.RUnlock()
	for i := range inv.s.items {
		if inv.s.items[i].ID == id {
			item := inv.s.items[i]
			return &item, nil
		}
	}
	return nil, store.ErrNotFound
}

func (inv *inventoryStore) Create(item *models.InventoryItem) error {
	inv.s.mu.Lock()
	defer inv.s.mu.Unlock()
	item.ID = uuid.NewString()
	item.LastUpdated = time.Now()
	inv.s.items = append(inv.s.items, *item)
	return nil
}

func (inv *inventoryStore) Update(item *models.InventoryItem) error {
	inv.s.mu.Lock()
	defer inv.s.mu.Unlock()
	for i := range inv.s.items {
		if inv.s.items[i].ID == item.ID {
			item.LastUpdated = time.Now()
			inv.s.items[i] = *item
			return nil
		}
	}
	return store.ErrNotFound
}

// Jobs

type jobStore struct{ s *Store }

func copyJob(job models.Job) models.Job {
	out := job
	out.Services = make([]models.JobService, len(job.Services))
	copy(out.Services, job.Services)
	if job.Consumables != nil {
		out.Consumables = make([]models.JobConsumable, len(job.Consumables))
		copy(out.Consumables, job.Consumables)
	}
	return out
}

func (j *jobStore) List() ([]models.Job, error) {
	j.s.mu.RLock()
	defer j.s.mu.RUnlock()
	out := make([]models.Job, len(j.s.jobs))
	for i, job := range j.s.jobs {
		out[i] = copyJob(job)
	}
	return out, nil
}

func (j *jobStore) GetByID(id string) (*models.Job, error) {
	j.s.mu.RLock()
	defer j.s.mu.RUnlock()
	for i := range j.s.jobs {
		if j.s.jobs[i].ID == id {
			job := copyJob(j.s.jobs[i])
			return &job, nil
		}
	}
	return nil, store.ErrNotFound
}

func stampJobItems(job *models.Job) {
	for i := range job.Services {
		if job.Services[i].ID == "" {
			job.Services[i].ID = uuid.NewString()
		}
		job.Services[i].JobID = job.ID
	}
	for i := range job.Consumables {
		if job.Consumables[i].ID == "" {
			job.Consumables[i].ID = uuid.NewString()
		}
		job.Consumables[i].JobID = job.ID
	}
}

func (j *jobStore) Create(job *models.Job) error {
	j.s.mu.Lock()
	defer j.s.mu.Unlock()
	job.ID = uuid.NewString()
	stampJobItems(job)
	j.s.jobs = append(j.s.jobs, copyJob(*job))
	return nil
}

func (j *jobStore) Update(job *models.Job) error {
	j.s.mu.Lock()
	defer j.s.mu.Unlock()
	for i := range j.s.jobs {
		if j.s.jobs[i].ID == job.ID {
			stampJobItems(job)
			j.s.jobs[i] = copyJob(*job)
			return nil
		}
	}
	return store.ErrNotFound
}

func (j *jobStore) Delete(id string) error {
	j.s.mu.Lock()
	defer j.s.mu.Unlock()
	for i := range j.s.jobs {
		if j.s.jobs[i].ID == id {
			j.s.jobs = append(j.s.jobs[:i], j.s.jobs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// Appointments

type appointmentStore struct{ s *Store }

func (a *appointmentStore) List() ([]models.ScheduledService, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	out := make([]models.ScheduledService, len(a.s.appointments))
	copy(out, a.s.appointments)
	return out, nil
}

func (a *appointmentStore) GetByID(id string) (*models.ScheduledService, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	for i := range a.s.appointments {
		if a.s.appointments[i].ID == id {
			appointment := a.s.appointments[i]
			return &appointment, nil
		}
	}
	return nil, store.ErrNotFound
}

func (a *appointmentStore) Create(appointment *models.ScheduledService) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	appointment.ID = uuid.NewString()
	appointment.CreatedAt = time.Now()
	a.s.appointments = append(a.s.appointments, *appointment)
	return nil
}

func (a *appointmentStore) Update(appointment *models.ScheduledService) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	for i := range a.s.appointments {
		if a.s.appointments[i].ID == appointment.ID {
			a.s.appointments[i] = *appointment
			return nil
		}
	}
	return store.ErrNotFound
}

func (a *appointmentStore) Delete(id string) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	for i := range a.s.appointments {
		if a.s.appointments[i].ID == id {
			a.s.appointments = append(a.s.appointments[:i], a.s.appointments[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
