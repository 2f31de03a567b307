package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"salonflow-backend/models"
)

const (
	EventCreated       = "created"
	EventUpdated       = "updated"
	EventCancelled     = "cancelled"
	EventStatusChanged = "status_changed"
	EventReminder      = "reminder"
)

// AppointmentEvent carries everything a notifier needs to address and phrase
// a message. Client/Staff/Service are nil when the appointment references an
// id that no longer exists.
type AppointmentEvent struct {
	Kind        string
	Appointment models.Appointment
	Client      *models.Client
	Staff       *models.Staff
	Service     *models.Service
}

// Notifier dispatches a client notification for an appointment event.
// Callers treat dispatch as best-effort: a returned error is logged and
// never affects the persisted mutation.
type Notifier interface {
	Notify(event AppointmentEvent) error
}

// LogNotifier writes events to the process log. It is the fallback when no
// Twilio credentials are configured.
type LogNotifier struct{}

func (LogNotifier) Notify(e AppointmentEvent) error {
	log.Printf("[NOTIFY] %s: appointment %d (%s %s) client=%s service=%s",
		e.Kind, e.Appointment.ID, e.Appointment.Date, e.Appointment.Time,
		clientNameOf(e), serviceNameOf(e))
	return nil
}

// TwilioNotifier sends SMS, or WhatsApp when the client phone is in E.164
// format and a WhatsApp sender is configured.
type TwilioNotifier struct {
	client       *twilio.RestClient
	from         string
	whatsappFrom string
	salonName    string
}

func NewTwilioNotifierFromEnv() *TwilioNotifier {
	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: os.Getenv("TWILIO_ACCOUNT_SID"),
			Password: os.Getenv("TWILIO_AUTH_TOKEN"),
		}),
		from:         os.Getenv("TWILIO_PHONE_NUMBER"),
		whatsappFrom: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		salonName:    salonNameFromEnv(),
	}
}

func salonNameFromEnv() string {
	if name := os.Getenv("SALON_NAME"); name != "" {
		return name
	}
	return "the salon"
}

func (n *TwilioNotifier) Notify(e AppointmentEvent) error {
	if e.Client == nil || e.Client.Phone == "" {
		return fmt.Errorf("appointment %d has no reachable client phone", e.Appointment.ID)
	}

	to := e.Client.Phone
	from := n.from
	if strings.HasPrefix(to, "+") && n.whatsappFrom != "" {
		to = "whatsapp:" + to
		from = "whatsapp:" + n.whatsappFrom
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(n.message(e))

	deliveryID := uuid.NewString()
	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("delivery %s to %s: %w", deliveryID, e.Client.Phone, err)
	}
	if resp.Sid != nil {
		log.Printf("[NOTIFY] delivery %s sent to %s, SID: %s", deliveryID, e.Client.Phone, *resp.Sid)
	} else {
		log.Printf("[NOTIFY] delivery %s sent to %s, no SID returned", deliveryID, e.Client.Phone)
	}
	return nil
}

func (n *TwilioNotifier) message(e AppointmentEvent) string {
	name := clientNameOf(e)
	service := serviceNameOf(e)
	when := fmt.Sprintf("%s at %s", e.Appointment.Date, e.Appointment.Time)

	switch e.Kind {
	case EventCreated:
		return fmt.Sprintf("Hi %s, your %s appointment at %s is booked for %s.", name, service, n.salonName, when)
	case EventCancelled:
		return fmt.Sprintf("Hi %s, your %s appointment at %s on %s has been cancelled.", name, service, n.salonName, when)
	case EventStatusChanged:
		return fmt.Sprintf("Hi %s, your %s appointment at %s on %s is now %s.", name, service, n.salonName, when, e.Appointment.Status)
	case EventReminder:
		return fmt.Sprintf("Hi %s, a reminder from %s: your %s appointment is tomorrow, %s.", name, n.salonName, service, when)
	default:
		return fmt.Sprintf("Hi %s, your %s appointment at %s has been updated: %s.", name, service, n.salonName, when)
	}
}

func clientNameOf(e AppointmentEvent) string {
	if e.Client != nil {
		return e.Client.Name
	}
	return "Unknown"
}

func serviceNameOf(e AppointmentEvent) string {
	if e.Service != nil {
		return e.Service.Name
	}
	return "Unknown"
}
