package services_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"salonflow-backend/models"
	"salonflow-backend/services"
	"salonflow-backend/storage"
)

type mockNotifier struct {
	events []services.AppointmentEvent
	err    error
}

func (m *mockNotifier) Notify(e services.AppointmentEvent) error {
	m.events = append(m.events, e)
	return m.err
}

func (m *mockNotifier) kinds() []string {
	kinds := make([]string, 0, len(m.events))
	for _, e := range m.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

type testEnv struct {
	clients      *services.ClientService
	staff        *services.StaffService
	catalog      *services.CatalogService
	incomes      *services.IncomeService
	appointments *services.AppointmentService
	notifier     *mockNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()

	clients := services.NewClientService(storage.NewStore[models.Client](filepath.Join(dir, "clients.json")))
	staff := services.NewStaffService(storage.NewStore[models.Staff](filepath.Join(dir, "staff.json")))
	catalog := services.NewCatalogService(storage.NewStore[models.Service](filepath.Join(dir, "services.json")))
	incomes := services.NewIncomeService(storage.NewStore[models.Income](filepath.Join(dir, "incomes.json")))
	notifier := &mockNotifier{}
	appointments := services.NewAppointmentService(
		storage.NewStore[models.Appointment](filepath.Join(dir, "appointments.json")),
		clients, staff, catalog, incomes, notifier)

	return &testEnv{
		clients:      clients,
		staff:        staff,
		catalog:      catalog,
		incomes:      incomes,
		appointments: appointments,
		notifier:     notifier,
	}
}

// seedBooking creates the Haircut/Alice/Bob fixture and a pending
// appointment, returning the appointment result.
func seedBooking(t *testing.T, env *testEnv) services.AppointmentResult {
	t.Helper()

	service, err := env.catalog.Add(services.ServiceInput{Name: "Haircut", Duration: 30, Price: 35.00})
	require.NoError(t, err)
	client, err := env.clients.Add(services.ClientInput{Name: "Alice", Email: "alice@x.com"})
	require.NoError(t, err)
	staff, err := env.staff.Add(services.StaffInput{Name: "Bob", Role: "Stylist", Email: "bob@x.com"})
	require.NoError(t, err)

	result, err := env.appointments.Add(services.AppointmentInput{
		ClientID:  client.ID,
		StaffID:   staff.ID,
		ServiceID: service.ID,
		Date:      "2024-12-23",
		Time:      "10:00",
		Status:    models.StatusPending,
	})
	require.NoError(t, err)
	return result
}
