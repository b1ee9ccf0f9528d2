package store

import (
	"log"
	"time"

	"mechshop-backend/models"
	"mechshop-backend/utils"
)

// Seed populates an empty store with the demo fixture: one admin, two staff,
// four catalog services and five inventory items. Jobs and scheduled services
// start empty. Collections that already hold data are left alone, so seeding
// is safe to run on every boot.
func Seed(s Store) error {
	users, err := s.Users().List()
	if err != nil {
		return err
	}
	if len(users) == 0 {
		for _, u := range seedUsers() {
			u := u
			if err := s.Users().Create(&u); err != nil {
				return err
			}
		}
		log.Println("Seeded demo users")
	}

	services, err := s.Services().List()
	if err != nil {
		return err
	}
	if len(services) == 0 {
		for _, svc := range seedServices() {
			svc := svc
			if err := s.Services().Create(&svc); err != nil {
				return err
			}
		}
		log.Println("Seeded demo services")
	}

	items, err := s.Inventory().List()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		for _, item := range seedInventory() {
			item := item
			if err := s.Inventory().Create(&item); err != nil {
				return err
			}
		}
		log.Println("Seeded demo inventory")
	}

	return nil
}

func seedUsers() []models.User {
	return []models.User{
		{
			Username: "admin",
			Password: utils.MustHashPassword("admin123"),
			Name:     "Admin User",
			Role:     models.RoleAdmin,
			Email:    "admin@mechshop.com",
			IsActive: true,
		},
		{
			Username: "staff1",
			Password: utils.MustHashPassword("staff123"),
			Name:     "John Mechanic",
			Role:     models.RoleStaff,
			Email:    "john@mechshop.com",
			IsActive: true,
		},
		{
			Username: "staff2",
			Password: utils.MustHashPassword("staff123"),
			Name:     "Jane Technician",
			Role:     models.RoleStaff,
			Email:    "jane@mechshop.com",
			IsActive: true,
		},
	}
}

func seedServices() []models.Service {
	return []models.Service{
		{Name: "Oil Change", Type: models.ServiceTypeFixed, Price: 45, EstimatedTime: 30, IsActive: true},
		{Name: "Brake Inspection", Type: models.ServiceTypeFixed, Price: 65, EstimatedTime: 45, IsActive: true},
		{Name: "Engine Diagnostic", Type: models.ServiceTypeHourly, Price: 120, IsActive: true},
		{Name: "Tire Rotation", Type: models.ServiceTypeFixed, Price: 35, EstimatedTime: 30, IsActive: true},
	}
}

func seedInventory() []models.InventoryItem {
	now := time.Now()
	return []models.InventoryItem{
		{ItemName: "Engine Oil - 5W30", Category: "oil", Quantity: 25, Unit: "litres", Threshold: 10, PricePerUnit: 8.50, LastUpdated: now},
		{ItemName: "Oil Filter - Standard", Category: "filter", Quantity: 15, Unit: "pcs", Threshold: 5, PricePerUnit: 12.00, LastUpdated: now},
		{ItemName: "Brake Fluid - DOT 4", Category: "fluid", Quantity: 8, Unit: "bottles", Threshold: 3, PricePerUnit: 15.00, LastUpdated: now},
		{ItemName: "Air Filter - Universal", Category: "filter", Quantity: 2, Unit: "pcs", Threshold: 5, PricePerUnit: 18.00, LastUpdated: now},
		{ItemName: "Coolant - Green", Category: "coolant", Quantity: 12, Unit: "litres", Threshold: 8, PricePerUnit: 6.75, LastUpdated: now},
	}
}
