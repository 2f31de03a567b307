package services

import (
	"salonflow-backend/models"
	"salonflow-backend/storage"
	"salonflow-backend/utils"
)

type StaffInput struct {
	Name  string
	Role  string
	Email string
}

type StaffService struct {
	store *storage.Store[models.Staff]
}

func NewStaffService(store *storage.Store[models.Staff]) *StaffService {
	return &StaffService{store: store}
}

func (s *StaffService) List() ([]models.Staff, error) {
	return s.store.List()
}

func (s *StaffService) Find(id int) (*models.Staff, error) {
	staff, err := s.store.List()
	if err != nil {
		return nil, err
	}
	for i := range staff {
		if staff[i].ID == id {
			return &staff[i], nil
		}
	}
	return nil, nil
}

func (s *StaffService) Add(in StaffInput) (models.Staff, error) {
	if err := validateStaff(in); err != nil {
		return models.Staff{}, err
	}
	return s.store.Insert(models.Staff{Name: in.Name, Role: in.Role, Email: in.Email})
}

func (s *StaffService) Edit(id int, in StaffInput) (models.Staff, error) {
	if err := validateStaff(in); err != nil {
		return models.Staff{}, err
	}
	return s.store.Update(id, func(existing models.Staff) models.Staff {
		existing.Name = in.Name
		existing.Role = in.Role
		existing.Email = in.Email
		return existing
	})
}

func (s *StaffService) Delete(id int) error {
	return s.store.Remove(id)
}

func validateStaff(in StaffInput) error {
	if in.Name == "" {
		return invalid("name", "is required")
	}
	if in.Role == "" {
		return invalid("role", "is required")
	}
	if in.Email == "" {
		return invalid("email", "is required")
	}
	if !utils.ValidEmail(in.Email) {
		return invalid("email", "is not a valid email address")
	}
	return nil
}
