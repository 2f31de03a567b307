package models

import "time"

type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentCheck PaymentMethod = "check"
	PaymentOther PaymentMethod = "other"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentCheck, PaymentOther:
		return true
	}
	return false
}

// Income is a ledger entry derived from a completed appointment (or entered
// manually for walk-ins, AppointmentID 0). ClientName/StaffName/ServiceName
// are snapshots taken at completion time so the entry stays meaningful after
// the source client, staff member or service is deleted. Amount is immutable
// after creation; only PaymentMethod and Notes are editable.
type Income struct {
	ID            int           `json:"id"`
	AppointmentID int           `json:"appointmentId"`
	ClientName    string        `json:"clientName"`
	StaffName     string        `json:"staffName"`
	ServiceName   string        `json:"serviceName"`
	Amount        float64       `json:"amount"`
	Date          string        `json:"date"` // YYYY-MM-DD
	Time          string        `json:"time"` // HH:MM
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Notes         string        `json:"notes"`
	CompletedAt   time.Time     `json:"completedAt"`
}

func (i Income) RecordID() int { return i.ID }

func (i Income) WithRecordID(id int) Income {
	i.ID = id
	return i
}
