package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonflow-backend/models"
	"salonflow-backend/services"
)

func TestDailyRemindersTargetTomorrowsPendingAppointments(t *testing.T) {
	env := newTestEnv(t)
	seeded := seedBooking(t, env)
	base := seeded.Appointment

	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	book := func(date string, status models.AppointmentStatus) services.AppointmentResult {
		result, err := env.appointments.Add(services.AppointmentInput{
			ClientID:  base.ClientID,
			StaffID:   base.StaffID,
			ServiceID: base.ServiceID,
			Date:      date,
			Time:      "14:00",
			Status:    status,
		})
		require.NoError(t, err)
		return result
	}

	book(today, models.StatusPending)
	due := book(tomorrow, models.StatusPending)
	book(tomorrow, models.StatusNoShow)

	reminders := services.NewReminderService(env.appointments, env.notifier, "")
	reminders.SendDailyReminders()

	var reminded []int
	for _, event := range env.notifier.events {
		if event.Kind == services.EventReminder {
			reminded = append(reminded, event.Appointment.ID)
		}
	}
	assert.Equal(t, []int{due.Appointment.ID}, reminded)
}
