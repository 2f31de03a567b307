package config

import (
	"os"
	"path/filepath"

	"salonflow-backend/models"
	"salonflow-backend/storage"
)

// Stores is the set of per-entity Record Stores, one JSON document each.
// Operations on different entities never contend for the same lock.
type Stores struct {
	Clients      *storage.Store[models.Client]
	Staff        *storage.Store[models.Staff]
	Services     *storage.Store[models.Service]
	Appointments *storage.Store[models.Appointment]
	Incomes      *storage.Store[models.Income]
}

func DataDir() string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}

func OpenStores(dir string) (*Stores, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Stores{
		Clients:      storage.NewStore[models.Client](filepath.Join(dir, "clients.json")),
		Staff:        storage.NewStore[models.Staff](filepath.Join(dir, "staff.json")),
		Services:     storage.NewStore[models.Service](filepath.Join(dir, "services.json")),
		Appointments: storage.NewStore[models.Appointment](filepath.Join(dir, "appointments.json")),
		Incomes:      storage.NewStore[models.Income](filepath.Join(dir, "incomes.json")),
	}, nil
}
