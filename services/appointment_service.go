package services

import (
	"log"

	"salonflow-backend/models"
	"salonflow-backend/storage"
	"salonflow-backend/utils"
)

type AppointmentInput struct {
	ClientID  int
	StaffID   int
	ServiceID int
	Date      string
	Time      string
	Status    models.AppointmentStatus // empty means pending on add
}

// AppointmentResult reports the mutation plus any income side effect it
// triggered, so callers can tell whether a ledger entry was created or
// retracted.
type AppointmentResult struct {
	Appointment   models.Appointment `json:"appointment"`
	IncomeCreated bool               `json:"incomeCreated"`
	IncomeDeleted bool               `json:"incomeDeleted"`
}

// AppointmentService owns the status state machine. Every mutation runs the
// same short saga: (1) persist the appointment, (2) apply the income side
// effect — its failure is surfaced to the caller, (3) dispatch a
// notification — best-effort, failure logged and swallowed.
type AppointmentService struct {
	store    *storage.Store[models.Appointment]
	clients  *ClientService
	staff    *StaffService
	catalog  *CatalogService
	incomes  *IncomeService
	notifier Notifier
}

func NewAppointmentService(
	store *storage.Store[models.Appointment],
	clients *ClientService,
	staff *StaffService,
	catalog *CatalogService,
	incomes *IncomeService,
	notifier Notifier,
) *AppointmentService {
	return &AppointmentService{
		store:    store,
		clients:  clients,
		staff:    staff,
		catalog:  catalog,
		incomes:  incomes,
		notifier: notifier,
	}
}

func (s *AppointmentService) List() ([]models.Appointment, error) {
	return s.store.List()
}

func (s *AppointmentService) Get(id int) (models.Appointment, error) {
	appointments, err := s.store.List()
	if err != nil {
		return models.Appointment{}, err
	}
	for _, appt := range appointments {
		if appt.ID == id {
			return appt, nil
		}
	}
	return models.Appointment{}, storage.ErrNotFound
}

func (s *AppointmentService) Add(in AppointmentInput) (AppointmentResult, error) {
	if in.Status == "" {
		in.Status = models.StatusPending
	}
	if err := validateAppointment(in); err != nil {
		return AppointmentResult{}, err
	}

	appt, err := s.store.Insert(models.Appointment{
		ClientID:  in.ClientID,
		StaffID:   in.StaffID,
		ServiceID: in.ServiceID,
		Date:      in.Date,
		Time:      in.Time,
		Status:    in.Status,
	})
	if err != nil {
		return AppointmentResult{}, err
	}

	result := AppointmentResult{Appointment: appt}
	// New appointments are not normally created pre-completed, but the
	// completion rule still applies if a caller does it.
	if appt.Status == models.StatusComplete {
		created, err := s.recordCompletion(appt)
		if err != nil {
			return result, err
		}
		result.IncomeCreated = created
	}

	s.notify(EventCreated, appt)
	return result, nil
}

func (s *AppointmentService) Edit(id int, in AppointmentInput) (AppointmentResult, error) {
	if in.Status == "" {
		return AppointmentResult{}, invalid("status", "is required")
	}
	if err := validateAppointment(in); err != nil {
		return AppointmentResult{}, err
	}

	prior, err := s.Get(id)
	if err != nil {
		return AppointmentResult{}, err
	}

	appt, err := s.store.Update(id, func(existing models.Appointment) models.Appointment {
		existing.ClientID = in.ClientID
		existing.StaffID = in.StaffID
		existing.ServiceID = in.ServiceID
		existing.Date = in.Date
		existing.Time = in.Time
		existing.Status = in.Status
		return existing
	})
	if err != nil {
		return AppointmentResult{}, err
	}

	result := AppointmentResult{Appointment: appt}
	result.IncomeCreated, result.IncomeDeleted, err = s.applyIncomeEffect(prior.Status, appt)
	if err != nil {
		return result, err
	}

	s.notify(EventUpdated, appt)
	return result, nil
}

// Delete removes the appointment without retracting its income record: the
// ledger is preserved history and outlives the appointment that produced it.
func (s *AppointmentService) Delete(id int) error {
	// Load before removal so the notifier still has the appointment data.
	appt, err := s.Get(id)
	if err != nil {
		return err
	}
	if appt.Status == models.StatusComplete {
		log.Printf("[APPT] deleting completed appointment %d; its income record is kept", id)
	}

	if err := s.store.Remove(id); err != nil {
		return err
	}

	s.notify(EventCancelled, appt)
	return nil
}

func (s *AppointmentService) UpdateStatus(id int, status models.AppointmentStatus) (AppointmentResult, error) {
	if !status.Valid() {
		return AppointmentResult{}, invalid("status", "must be one of pending, complete, deleted_by_user, deleted_by_staff, no_show")
	}

	prior, err := s.Get(id)
	if err != nil {
		return AppointmentResult{}, err
	}

	appt, err := s.store.Update(id, func(existing models.Appointment) models.Appointment {
		existing.Status = status
		return existing
	})
	if err != nil {
		return AppointmentResult{}, err
	}

	result := AppointmentResult{Appointment: appt}
	result.IncomeCreated, result.IncomeDeleted, err = s.applyIncomeEffect(prior.Status, appt)
	if err != nil {
		return result, err
	}

	s.notify(EventStatusChanged, appt)
	return result, nil
}

// applyIncomeEffect keeps income existence mirroring the completion state:
// entering complete records an income, leaving complete retracts it.
func (s *AppointmentService) applyIncomeEffect(prior models.AppointmentStatus, appt models.Appointment) (created, deleted bool, err error) {
	switch {
	case prior != models.StatusComplete && appt.Status == models.StatusComplete:
		created, err = s.recordCompletion(appt)
	case prior == models.StatusComplete && appt.Status != models.StatusComplete:
		deleted, err = s.incomes.RetractByAppointmentID(appt.ID)
	}
	return created, deleted, err
}

func (s *AppointmentService) recordCompletion(appt models.Appointment) (bool, error) {
	event, err := s.BuildEvent(EventStatusChanged, appt)
	if err != nil {
		return false, err
	}
	_, err = s.incomes.RecordCompletion(appt, event.Client, event.Staff, event.Service, "", "")
	if err != nil {
		return false, err
	}
	return true, nil
}

// BuildEvent resolves the appointment's references for notification use.
// Dangling ids produce nil snapshots, not errors.
func (s *AppointmentService) BuildEvent(kind string, appt models.Appointment) (AppointmentEvent, error) {
	client, err := s.clients.Find(appt.ClientID)
	if err != nil {
		return AppointmentEvent{}, err
	}
	staff, err := s.staff.Find(appt.StaffID)
	if err != nil {
		return AppointmentEvent{}, err
	}
	service, err := s.catalog.Find(appt.ServiceID)
	if err != nil {
		return AppointmentEvent{}, err
	}
	return AppointmentEvent{
		Kind:        kind,
		Appointment: appt,
		Client:      client,
		Staff:       staff,
		Service:     service,
	}, nil
}

func (s *AppointmentService) notify(kind string, appt models.Appointment) {
	event, err := s.BuildEvent(kind, appt)
	if err != nil {
		log.Printf("[NOTIFY] could not assemble %s event for appointment %d: %v", kind, appt.ID, err)
		return
	}
	if err := s.notifier.Notify(event); err != nil {
		log.Printf("[NOTIFY] %s notification for appointment %d failed: %v", kind, appt.ID, err)
	}
}

func validateAppointment(in AppointmentInput) error {
	if in.ClientID <= 0 {
		return invalid("clientId", "is required")
	}
	if in.StaffID <= 0 {
		return invalid("staffId", "is required")
	}
	if in.ServiceID <= 0 {
		return invalid("serviceId", "is required")
	}
	if !utils.ValidDate(in.Date) {
		return invalid("date", "must be a valid YYYY-MM-DD date")
	}
	if !utils.ValidTime(in.Time) {
		return invalid("time", "must be a valid HH:MM time")
	}
	if !in.Status.Valid() {
		return invalid("status", "must be one of pending, complete, deleted_by_user, deleted_by_staff, no_show")
	}
	return nil
}
