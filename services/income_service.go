package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"salonflow-backend/models"
	"salonflow-backend/storage"
	"salonflow-backend/utils"
)

const dateLayout = "2006-01-02"

// IncomeService maintains the 1:1 mirror between complete appointments and
// income records, and computes aggregates on demand.
type IncomeService struct {
	store *storage.Store[models.Income]
}

func NewIncomeService(store *storage.Store[models.Income]) *IncomeService {
	return &IncomeService{store: store}
}

// IncomeInput is used for manual (walk-in) entries. AppointmentID 0 means the
// entry is not linked to an appointment.
type IncomeInput struct {
	AppointmentID int
	ClientName    string
	StaffName     string
	ServiceName   string
	Amount        float64
	Date          string
	Time          string
	PaymentMethod models.PaymentMethod
	Notes         string
}

// IncomeFilter narrows List results. Date bounds are inclusive and compared
// as ISO date strings.
type IncomeFilter struct {
	DateFrom      string
	DateTo        string
	PaymentMethod models.PaymentMethod
}

type Subtotal struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

type Summary struct {
	TotalAllTime   float64    `json:"totalAllTime"`
	TotalThisMonth float64    `json:"totalThisMonth"`
	TotalThisWeek  float64    `json:"totalThisWeek"`
	TotalToday     float64    `json:"totalToday"`
	ByStaff        []Subtotal `json:"byStaff"`
	ByService      []Subtotal `json:"byService"`
	RecordCount    int        `json:"recordCount"`
}

// RecordCompletion creates the income record for an appointment entering the
// complete state. Amount is snapshotted from the service's current price, the
// names from whatever client/staff/service records still exist.
func (s *IncomeService) RecordCompletion(appt models.Appointment, client *models.Client, staff *models.Staff, service *models.Service, method models.PaymentMethod, notes string) (models.Income, error) {
	existing, err := s.findByAppointment(appt.ID)
	if err != nil {
		return models.Income{}, err
	}
	if existing != nil {
		return models.Income{}, &ConflictError{
			Reason: fmt.Sprintf("an income record already exists for appointment %d", appt.ID),
		}
	}

	if method == "" {
		method = models.PaymentCash
	}

	income := models.Income{
		AppointmentID: appt.ID,
		ClientName:    "Unknown",
		StaffName:     "Unknown",
		ServiceName:   "Unknown",
		Date:          appt.Date,
		Time:          appt.Time,
		PaymentMethod: method,
		Notes:         notes,
		CompletedAt:   time.Now(),
	}
	if client != nil {
		income.ClientName = client.Name
	}
	if staff != nil {
		income.StaffName = staff.Name
	}
	if service != nil {
		income.ServiceName = service.Name
		income.Amount = service.Price
	}

	return s.store.Insert(income)
}

// RetractByAppointmentID deletes the income record mirroring the given
// appointment. Retracting when none exists is a no-op, not an error.
func (s *IncomeService) RetractByAppointmentID(appointmentID int) (bool, error) {
	existing, err := s.findByAppointment(appointmentID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	if err := s.store.Remove(existing.ID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *IncomeService) Add(in IncomeInput) (models.Income, error) {
	if in.Amount <= 0 {
		return models.Income{}, invalid("amount", "must be greater than zero")
	}
	if !utils.ValidDate(in.Date) {
		return models.Income{}, invalid("date", "must be a valid YYYY-MM-DD date")
	}
	if !utils.ValidTime(in.Time) {
		return models.Income{}, invalid("time", "must be a valid HH:MM time")
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = models.PaymentCash
	}
	if !in.PaymentMethod.Valid() {
		return models.Income{}, invalid("paymentMethod", "must be one of cash, card, check, other")
	}
	if in.AppointmentID > 0 {
		existing, err := s.findByAppointment(in.AppointmentID)
		if err != nil {
			return models.Income{}, err
		}
		if existing != nil {
			return models.Income{}, &ConflictError{
				Reason: fmt.Sprintf("an income record already exists for appointment %d", in.AppointmentID),
			}
		}
	}

	return s.store.Insert(models.Income{
		AppointmentID: in.AppointmentID,
		ClientName:    in.ClientName,
		StaffName:     in.StaffName,
		ServiceName:   in.ServiceName,
		Amount:        in.Amount,
		Date:          in.Date,
		Time:          in.Time,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		CompletedAt:   time.Now(),
	})
}

// Edit is a partial merge: only the supplied fields change. Amount and the
// name snapshots are immutable after creation.
func (s *IncomeService) Edit(id int, method *models.PaymentMethod, notes *string) (models.Income, error) {
	if method != nil && !method.Valid() {
		return models.Income{}, invalid("paymentMethod", "must be one of cash, card, check, other")
	}
	return s.store.Update(id, func(existing models.Income) models.Income {
		if method != nil {
			existing.PaymentMethod = *method
		}
		if notes != nil {
			existing.Notes = *notes
		}
		return existing
	})
}

// Delete hard-deletes an income record and returns it so the caller can run
// the (non-transactional) appointment status revert.
func (s *IncomeService) Delete(id int) (models.Income, error) {
	income, err := s.Get(id)
	if err != nil {
		return models.Income{}, err
	}
	if err := s.store.Remove(id); err != nil {
		return models.Income{}, err
	}
	return income, nil
}

func (s *IncomeService) Get(id int) (models.Income, error) {
	incomes, err := s.store.List()
	if err != nil {
		return models.Income{}, err
	}
	for _, income := range incomes {
		if income.ID == id {
			return income, nil
		}
	}
	return models.Income{}, storage.ErrNotFound
}

// List returns income records matching the filter, most recent first.
func (s *IncomeService) List(filter IncomeFilter) ([]models.Income, error) {
	incomes, err := s.store.List()
	if err != nil {
		return nil, err
	}

	matched := make([]models.Income, 0, len(incomes))
	for _, income := range incomes {
		if filter.DateFrom != "" && income.Date < filter.DateFrom {
			continue
		}
		if filter.DateTo != "" && income.Date > filter.DateTo {
			continue
		}
		if filter.PaymentMethod != "" && income.PaymentMethod != filter.PaymentMethod {
			continue
		}
		matched = append(matched, income)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date > matched[j].Date
		}
		return matched[i].Time > matched[j].Time
	})
	return matched, nil
}

// Summarize computes all windowed totals and per-staff/per-service subtotals
// in a single pass. Window membership is decided by ISO date string
// comparison against now's day, ISO week (Monday through Sunday) and
// calendar month.
func (s *IncomeService) Summarize(now time.Time) (Summary, error) {
	incomes, err := s.store.List()
	if err != nil {
		return Summary{}, err
	}

	today := now.Format(dateLayout)
	monthPrefix := now.Format("2006-01")
	weekStart := utils.StartOfISOWeek(now).Format(dateLayout)
	weekEnd := utils.StartOfISOWeek(now).AddDate(0, 0, 6).Format(dateLayout)

	byStaff := map[string]float64{}
	byService := map[string]float64{}

	summary := Summary{RecordCount: len(incomes)}
	for _, income := range incomes {
		summary.TotalAllTime += income.Amount
		if income.Date == today {
			summary.TotalToday += income.Amount
		}
		if income.Date >= weekStart && income.Date <= weekEnd {
			summary.TotalThisWeek += income.Amount
		}
		if strings.HasPrefix(income.Date, monthPrefix) {
			summary.TotalThisMonth += income.Amount
		}
		byStaff[income.StaffName] += income.Amount
		byService[income.ServiceName] += income.Amount
	}

	summary.TotalAllTime = round2(summary.TotalAllTime)
	summary.TotalThisMonth = round2(summary.TotalThisMonth)
	summary.TotalThisWeek = round2(summary.TotalThisWeek)
	summary.TotalToday = round2(summary.TotalToday)
	summary.ByStaff = sortedSubtotals(byStaff)
	summary.ByService = sortedSubtotals(byService)
	return summary, nil
}

func (s *IncomeService) findByAppointment(appointmentID int) (*models.Income, error) {
	incomes, err := s.store.List()
	if err != nil {
		return nil, err
	}
	for i := range incomes {
		if incomes[i].AppointmentID == appointmentID {
			return &incomes[i], nil
		}
	}
	return nil, nil
}

func sortedSubtotals(totals map[string]float64) []Subtotal {
	subtotals := make([]Subtotal, 0, len(totals))
	for name, total := range totals {
		subtotals = append(subtotals, Subtotal{Name: name, Total: round2(total)})
	}
	sort.Slice(subtotals, func(i, j int) bool {
		if subtotals[i].Total != subtotals[j].Total {
			return subtotals[i].Total > subtotals[j].Total
		}
		return subtotals[i].Name < subtotals[j].Name
	})
	return subtotals
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
