package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mechshop-backend/models"
	"mechshop-backend/services"
	"mechshop-backend/store"
	"mechshop-backend/store/memstore"
)

func newAppointmentFixture(t *testing.T) (*memstore.Store, *services.AppointmentService, *models.User) {
	t.Helper()
	s := memstore.New()
	creator := &models.User{Username: "staff1", Name: "John Mechanic", Role: models.RoleStaff, IsActive: true}
	require.NoError(t, s.Users().Create(creator))
	return s, services.NewAppointmentService(s), creator
}

func validBooking(at time.Time) services.AppointmentInput {
	return services.AppointmentInput{
		CustomerName:  "Alice",
		PhoneNumber:   "+15551234567",
		CarDetails:    "Toyota Corolla 2018",
		ServiceType:   "Oil Change",
		ScheduledDate: at,
	}
}

func TestCreateAppointment(t *testing.T) {
	_, appointments, creator := newAppointmentFixture(t)

	appointment, err := appointments.Create(validBooking(time.Now().Add(24*time.Hour)), creator)
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentScheduled, appointment.Status)
	assert.Equal(t, creator.ID, appointment.CreatedBy)
	assert.Equal(t, "John Mechanic", appointment.CreatedByName)
	assert.NotEmpty(t, appointment.ID)
	assert.False(t, appointment.CreatedAt.IsZero())
}

func TestCreateAppointmentRejectsPastDate(t *testing.T) {
	s, appointments, creator := newAppointmentFixture(t)

	_, err := appointments.Create(validBooking(time.Now().Add(-time.Hour)), creator)
	require.True(t, store.IsValidation(err))

	// Nothing persisted.
	all, listErr := s.Appointments().List()
	require.NoError(t, listErr)
	assert.Empty(t, all)
}

func TestCreateAppointmentRejectsBadPhone(t *testing.T) {
	_, appointments, creator := newAppointmentFixture(t)

	booking := validBooking(time.Now().Add(24 * time.Hour))
	booking.PhoneNumber = "not-a-phone"
	_, err := appointments.Create(booking, creator)
	require.True(t, store.IsValidation(err))
}

func TestStatusTransitionsFromScheduled(t *testing.T) {
	for _, target := range []string{
		models.AppointmentCompleted,
		models.AppointmentMissed,
		models.AppointmentCancelled,
	} {
		t.Run(target, func(t *testing.T) {
			_, appointments, creator := newAppointmentFixture(t)
			appointment, err := appointments.Create(validBooking(time.Now().Add(24*time.Hour)), creator)
			require.NoError(t, err)

			updated, err := appointments.UpdateStatus(appointment.ID, target)
			require.NoError(t, err)
			assert.Equal(t, target, updated.Status)
		})
	}
}

func TestTerminalStatusesAcceptNoFurtherTransition(t *testing.T) {
	_, appointments, creator := newAppointmentFixture(t)
	appointment, err := appointments.Create(validBooking(time.Now().Add(24*time.Hour)), creator)
	require.NoError(t, err)

	_, err = appointments.UpdateStatus(appointment.ID, models.AppointmentCompleted)
	require.NoError(t, err)

	_, err = appointments.UpdateStatus(appointment.ID, models.AppointmentCancelled)
	require.True(t, store.IsValidation(err))

	// Status unchanged.
	stored, err := appointments.Get(appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCompleted, stored.Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	_, appointments, creator := newAppointmentFixture(t)
	appointment, err := appointments.Create(validBooking(time.Now().Add(24*time.Hour)), creator)
	require.NoError(t, err)

	_, err = appointments.UpdateStatus(appointment.ID, "rescheduled")
	require.True(t, store.IsValidation(err))

	// "scheduled" is not a transition target either.
	_, err = appointments.UpdateStatus(appointment.ID, models.AppointmentScheduled)
	require.True(t, store.IsValidation(err))
}

func TestUpdateStatusNotFound(t *testing.T) {
	_, appointments, _ := newAppointmentFixture(t)
	_, err := appointments.UpdateStatus("no-such-appointment", models.AppointmentCompleted)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpcomingWindow(t *testing.T) {
	_, appointments, creator := newAppointmentFixture(t)

	inWindow, err := appointments.Create(validBooking(time.Now().Add(2*time.Hour)), creator)
	require.NoError(t, err)

	atEdge, err := appointments.Create(validBooking(time.Now().Add(7*24*time.Hour-time.Minute)), creator)
	require.NoError(t, err)

	_, err = appointments.Create(validBooking(time.Now().Add(9*24*time.Hour)), creator)
	require.NoError(t, err)

	cancelled, err := appointments.Create(validBooking(time.Now().Add(3*time.Hour)), creator)
	require.NoError(t, err)
	_, err = appointments.UpdateStatus(cancelled.ID, models.AppointmentCancelled)
	require.NoError(t, err)

	upcoming, err := appointments.Upcoming(7)
	require.NoError(t, err)

	var ids []string
	for _, appointment := range upcoming {
		ids = append(ids, appointment.ID)
	}
	assert.ElementsMatch(t, []string{inWindow.ID, atEdge.ID}, ids)
}

func TestForDateMatchesCalendarDay(t *testing.T) {
	_, appointments, creator := newAppointmentFixture(t)

	tomorrow := time.Now().AddDate(0, 0, 1)
	booked, err := appointments.Create(validBooking(tomorrow), creator)
	require.NoError(t, err)

	_, err = appointments.Create(validBooking(tomorrow.AddDate(0, 0, 1)), creator)
	require.NoError(t, err)

	forTomorrow, err := appointments.ForDate(tomorrow)
	require.NoError(t, err)
	require.Len(t, forTomorrow, 1)
	assert.Equal(t, booked.ID, forTomorrow[0].ID)
}
