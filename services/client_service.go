package services

import (
	"salonflow-backend/models"
	"salonflow-backend/storage"
	"salonflow-backend/utils"
)

// ClientInput carries the editable client fields. A nil Appointments slice on
// edit preserves the client's existing visit history.
type ClientInput struct {
	Name         string
	Email        string
	Phone        string
	Notes        string
	IsVIP        bool
	IsBadClient  bool
	Appointments []string
}

type ClientService struct {
	store *storage.Store[models.Client]
}

func NewClientService(store *storage.Store[models.Client]) *ClientService {
	return &ClientService{store: store}
}

func (s *ClientService) List() ([]models.Client, error) {
	return s.store.List()
}

// Find returns nil (not an error) for an unknown id; dangling references are
// tolerated throughout.
func (s *ClientService) Find(id int) (*models.Client, error) {
	clients, err := s.store.List()
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i], nil
		}
	}
	return nil, nil
}

func (s *ClientService) Add(in ClientInput) (models.Client, error) {
	if err := validateClient(in); err != nil {
		return models.Client{}, err
	}
	appointments := in.Appointments
	if appointments == nil {
		appointments = []string{}
	}
	return s.store.Insert(models.Client{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Notes:        in.Notes,
		IsVIP:        in.IsVIP,
		IsBadClient:  in.IsBadClient,
		Appointments: appointments,
	})
}

func (s *ClientService) Edit(id int, in ClientInput) (models.Client, error) {
	if err := validateClient(in); err != nil {
		return models.Client{}, err
	}
	return s.store.Update(id, func(existing models.Client) models.Client {
		existing.Name = in.Name
		existing.Email = in.Email
		existing.Phone = in.Phone
		existing.Notes = in.Notes
		existing.IsVIP = in.IsVIP
		existing.IsBadClient = in.IsBadClient
		if in.Appointments != nil {
			existing.Appointments = in.Appointments
		}
		return existing
	})
}

func (s *ClientService) Delete(id int) error {
	return s.store.Remove(id)
}

func validateClient(in ClientInput) error {
	if in.Name == "" {
		return invalid("name", "is required")
	}
	if in.Email == "" {
		return invalid("email", "is required")
	}
	if !utils.ValidEmail(in.Email) {
		return invalid("email", "is not a valid email address")
	}
	if in.Phone != "" && !utils.ValidatePhone(in.Phone) {
		return invalid("phone", "is not a valid phone number")
	}
	return nil
}
