package services

import (
	"salonflow-backend/models"
	"salonflow-backend/storage"
)

// CatalogService manages the salon's service menu (the "services" entity).
type CatalogService struct {
	store *storage.Store[models.Service]
}

type ServiceInput struct {
	Name     string
	Duration int
	Price    float64
}

func NewCatalogService(store *storage.Store[models.Service]) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) List() ([]models.Service, error) {
	return s.store.List()
}

func (s *CatalogService) Find(id int) (*models.Service, error) {
	services, err := s.store.List()
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].ID == id {
			return &services[i], nil
		}
	}
	return nil, nil
}

func (s *CatalogService) Add(in ServiceInput) (models.Service, error) {
	if err := validateService(in); err != nil {
		return models.Service{}, err
	}
	return s.store.Insert(models.Service{Name: in.Name, Duration: in.Duration, Price: in.Price})
}

func (s *CatalogService) Edit(id int, in ServiceInput) (models.Service, error) {
	if err := validateService(in); err != nil {
		return models.Service{}, err
	}
	return s.store.Update(id, func(existing models.Service) models.Service {
		existing.Name = in.Name
		existing.Duration = in.Duration
		existing.Price = in.Price
		return existing
	})
}

func (s *CatalogService) Delete(id int) error {
	return s.store.Remove(id)
}

func validateService(in ServiceInput) error {
	if in.Name == "" {
		return invalid("name", "is required")
	}
	if in.Duration < 1 {
		return invalid("duration", "must be at least 1 minute")
	}
	if in.Price < 0 {
		return invalid("price", "must not be negative")
	}
	return nil
}
