package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mechshop-backend/models"
	"mechshop-backend/store"
	"mechshop-backend/store/memstore"
	"mechshop-backend/utils"
)

func TestSeedPopulatesEmptyStore(t *testing.T) {
	s := memstore.New()
	require.NoError(t, store.Seed(s))

	users, err := s.Users().List()
	require.NoError(t, err)
	require.Len(t, users, 3)

	var admins, staff int
	for _, user := range users {
		switch user.Role {
		case models.RoleAdmin:
			admins++
		case models.RoleStaff:
			staff++
		}
		assert.True(t, user.IsActive)
		assert.NotEqual(t, "admin123", user.Password, "passwords must be stored hashed")
	}
	assert.Equal(t, 1, admins)
	assert.Equal(t, 2, staff)

	admin, err := s.Users().GetByUsername("admin")
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("admin123", admin.Password))

	services, err := s.Services().List()
	require.NoError(t, err)
	assert.Len(t, services, 4)

	items, err := s.Inventory().List()
	require.NoError(t, err)
	assert.Len(t, items, 5)

	jobs, err := s.Jobs().List()
	require.NoError(t, err)
	assert.Empty(t, jobs)

	appointments, err := s.Appointments().List()
	require.NoError(t, err)
	assert.Empty(t, appointments)
}

func TestSeedLeavesExistingDataAlone(t *testing.T) {
	s := memstore.New()

	existing := &models.User{Username: "owner", Name: "Shop Owner", Role: models.RoleAdmin, IsActive: true}
	require.NoError(t, s.Users().Create(existing))

	require.NoError(t, store.Seed(s))

	users, err := s.Users().List()
	require.NoError(t, err)
	assert.Len(t, users, 1)

	// Other collections were still empty and get the fixture.
	services, err := s.Services().List()
	require.NoError(t, err)
	assert.Len(t, services, 4)
}
