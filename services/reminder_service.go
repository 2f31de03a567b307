// services/reminder_service.go
package services

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"salonflow-backend/models"
)

// ReminderService sends next-day reminders for pending appointments on a
// daily cron schedule. The sweep is read-only over the stores and every
// dispatch is best-effort.
type ReminderService struct {
	appointments *AppointmentService
	notifier     Notifier
	cron         *cron.Cron
	schedule     string
}

func NewReminderService(appointments *AppointmentService, notifier Notifier, schedule string) *ReminderService {
	if schedule == "" {
		schedule = "0 9 * * *" // every day at 9 AM
	}
	return &ReminderService{
		appointments: appointments,
		notifier:     notifier,
		cron:         cron.New(),
		schedule:     schedule,
	}
}

func (s *ReminderService) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.SendDailyReminders); err != nil {
		return err
	}
	s.cron.Start()
	log.Println("Reminder scheduler started")
	return nil
}

func (s *ReminderService) Stop() {
	s.cron.Stop()
}

func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	tomorrow := time.Now().AddDate(0, 0, 1).Format(dateLayout)
	appointments, err := s.appointments.List()
	if err != nil {
		log.Printf("Failed to fetch appointments: %v", err)
		return
	}

	sent := 0
	for _, appt := range appointments {
		if appt.Status != models.StatusPending || appt.Date != tomorrow {
			continue
		}
		event, err := s.appointments.BuildEvent(EventReminder, appt)
		if err != nil {
			log.Printf("Failed to assemble reminder for appointment %d: %v", appt.ID, err)
			continue
		}
		if err := s.notifier.Notify(event); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appt.ID, err)
			continue
		}
		sent++
	}

	log.Printf("Daily reminder processing completed, %d reminder(s) sent", sent)
}
