package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonflow-backend/models"
	"salonflow-backend/services"
	"salonflow-backend/storage"
)

func TestAddDefaultsToPending(t *testing.T) {
	env := newTestEnv(t)
	result := seedBooking(t, env)

	assert.Equal(t, models.StatusPending, result.Appointment.Status)
	assert.False(t, result.IncomeCreated)
	assert.Equal(t, []string{"created"}, env.notifier.kinds())

	incomes, err := env.incomes.List(services.IncomeFilter{})
	require.NoError(t, err)
	assert.Empty(t, incomes)
}

func TestAddRejectsImpossibleDate(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.appointments.Add(services.AppointmentInput{
		ClientID:  1,
		StaffID:   1,
		ServiceID: 1,
		Date:      "2024-13-45",
		Time:      "10:00",
	})

	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "date", validationErr.Field)
}

func TestCompletionCreatesIncomeSnapshot(t *testing.T) {
	env := newTestEnv(t)
	booked := seedBooking(t, env)

	result, err := env.appointments.UpdateStatus(booked.Appointment.ID, models.StatusComplete)
	require.NoError(t, err)
	assert.True(t, result.IncomeCreated)
	assert.False(t, result.IncomeDeleted)

	incomes, err := env.incomes.List(services.IncomeFilter{})
	require.NoError(t, err)
	require.Len(t, incomes, 1)

	income := incomes[0]
	assert.Equal(t, booked.Appointment.ID, income.AppointmentID)
	assert.Equal(t, 35.00, income.Amount)
	assert.Equal(t, "Alice", income.ClientName)
	assert.Equal(t, "Bob", income.StaffName)
	assert.Equal(t, "Haircut", income.ServiceName)
	assert.Equal(t, "2024-12-23", income.Date)
	assert.Equal(t, "10:00", income.Time)
	assert.Equal(t, models.PaymentCash, income.PaymentMethod)
	assert.False(t, income.CompletedAt.IsZero())
}

func TestLeavingCompleteRetractsIncome(t *testing.T) {
	env := newTestEnv(t)
	booked := seedBooking(t, env)

	_, err := env.appointments.UpdateStatus(booked.Appointment.ID, models.StatusComplete)
	require.NoError(t, err)

	result, err := env.appointments.UpdateStatus(booked.Appointment.ID, models.StatusNoShow)
	require.NoError(t, err)
	assert.False(t, result.IncomeCreated)
	assert.True(t, result.IncomeDeleted)

	incomes, err := env.incomes.List(services.IncomeFilter{})
	require.NoError(t, err)
	assert.Empty(t, incomes)
}

func TestRepeatedCompletionCyclesNeverDuplicateIncome(t *testing.T) {
	env := newTestEnv(t)
	booked := seedBooking(t, env)
	id := booked.Appointment.ID

	for _, status := range []models.AppointmentStatus{
		models.StatusComplete, models.StatusPending,
		models.StatusComplete, models.StatusNoShow,
		models.StatusComplete,
	} {
		_, err := env.appointments.UpdateStatus(id, status)
		require.NoError(t, err)
	}

	incomes, err := env.incomes.List(services.IncomeFilter{})
	require.NoError(t, err)
	require.Len(t, incomes, 1)
	assert.Equal(t, id, incomes[0].AppointmentID)
}

func TestCompleteToCompleteEditKeepsIncome(t *testing.T) {
	env := newTestEnv(t)
	booked := seedBooking(t, env)
	appt := booked.Appointment

	_, err := env.appointments.UpdateStatus(appt.ID, models.StatusComplete)
	require.NoError(t, err)

	result, err := env.appointments.Edit(appt.ID, services.AppointmentInput{
		ClientID:  appt.ClientID,
		StaffID:   appt.StaffID,
		ServiceID: appt.ServiceID,
		Date:      appt.Date,
		Time:      "11:30",
		Status:    models.StatusComplete,
	})
	require.NoError(t, err)
	assert.False(t, result.IncomeCreated)
	assert.False(t, result.IncomeDeleted)

	incomes, err := env.incomes.List(services.IncomeFilter{})
	require.NoError(t, err)
	assert.Len(t, incomes, 1)
}

func TestAddWithCompleteStatusAppliesCompletionRule(t *testing.T) {
	env := newTestEnv(t)
	seeded := seedBooking(t, env)
	appt := seeded.Appointment

	result, err := env.appointments.Add(services.AppointmentInput{
		ClientID:  appt.ClientID,
		StaffID:   appt.StaffID,
		ServiceID: appt.ServiceID,
		Date:      "2024-12-24",
		Time:      "09:00",
		Status:    models.StatusComplete,
	})
	require.NoError(t, err)
	assert.True(t, result.IncomeCreated)

	incomes, err := env.incomes.List(services.IncomeFilter{})
	require.NoError(t, err)
	require.Len(t, incomes, 1)
	assert.Equal(t, result.Appointment.ID, incomes[0].AppointmentID)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	booked := seedBooking(t, env)

	_, err := env.appointments.UpdateStatus(booked.Appointment.ID, "cancelled")

	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "status", validationErr.Field)
}

func TestUpdateStatusUnknownID(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.appointments.UpdateStatus(99, models.StatusComplete)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteNotifiesWithPreDeletionData(t *testing.T) {
	env := newTestEnv(t)
	booked := seedBooking(t, env)

	require.NoError(t, env.appointments.Delete(booked.Appointment.ID))

	require.Equal(t, []string{"created", "cancelled"}, env.notifier.kinds())
	cancelled := env.notifier.events[1]
	assert.Equal(t, booked.Appointment.ID, cancelled.Appointment.ID)
	assert.Equal(t, "2024-12-23", cancelled.Appointment.Date)

	_, err := env.appointments.Get(booked.Appointment.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteUnknownIDLeavesCollectionUnchanged(t *testing.T) {
	env := newTestEnv(t)
	seedBooking(t, env)

	err := env.appointments.Delete(77)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	appointments, err := env.appointments.List()
	require.NoError(t, err)
	assert.Len(t, appointments, 1)
}

func TestDeleteCompletedAppointmentKeepsIncome(t *testing.T) {
	env := newTestEnv(t)
	booked := seedBooking(t, env)

	_, err := env.appointments.UpdateStatus(booked.Appointment.ID, models.StatusComplete)
	require.NoError(t, err)
	require.NoError(t, env.appointments.Delete(booked.Appointment.ID))

	incomes, err := env.incomes.List(services.IncomeFilter{})
	require.NoError(t, err)
	require.Len(t, incomes, 1)
	assert.Equal(t, "Alice", incomes[0].ClientName)
}

func TestNotificationFailureDoesNotFailMutation(t *testing.T) {
	env := newTestEnv(t)
	env.notifier.err = errors.New("twilio unreachable")

	result := seedBooking(t, env)
	assert.NotZero(t, result.Appointment.ID)

	_, err := env.appointments.UpdateStatus(result.Appointment.ID, models.StatusComplete)
	require.NoError(t, err)

	incomes, err := env.incomes.List(services.IncomeFilter{})
	require.NoError(t, err)
	assert.Len(t, incomes, 1)
}

func TestCompletionWithDanglingReferences(t *testing.T) {
	env := newTestEnv(t)
	booked := seedBooking(t, env)
	appt := booked.Appointment

	require.NoError(t, env.clients.Delete(appt.ClientID))
	require.NoError(t, env.staff.Delete(appt.StaffID))

	_, err := env.appointments.UpdateStatus(appt.ID, models.StatusComplete)
	require.NoError(t, err)

	incomes, err := env.incomes.List(services.IncomeFilter{})
	require.NoError(t, err)
	require.Len(t, incomes, 1)
	assert.Equal(t, "Unknown", incomes[0].ClientName)
	assert.Equal(t, "Unknown", incomes[0].StaffName)
	assert.Equal(t, "Haircut", incomes[0].ServiceName)
	assert.Equal(t, 35.00, incomes[0].Amount)
}
