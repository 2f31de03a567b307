package models

type AppointmentStatus string

const (
	StatusPending        AppointmentStatus = "pending"
	StatusComplete       AppointmentStatus = "complete"
	StatusDeletedByUser  AppointmentStatus = "deleted_by_user"
	StatusDeletedByStaff AppointmentStatus = "deleted_by_staff"
	StatusNoShow         AppointmentStatus = "no_show"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusComplete, StatusDeletedByUser, StatusDeletedByStaff, StatusNoShow:
		return true
	}
	return false
}

// Appointment references client/staff/service by id without referential
// enforcement: dangling ids are tolerated and render as "Unknown".
type Appointment struct {
	ID        int               `json:"id"`
	ClientID  int               `json:"clientId"`
	StaffID   int               `json:"staffId"`
	ServiceID int               `json:"serviceId"`
	Date      string            `json:"date"` // YYYY-MM-DD
	Time      string            `json:"time"` // HH:MM
	Status    AppointmentStatus `json:"status"`
}

func (a Appointment) RecordID() int { return a.ID }

func (a Appointment) WithRecordID(id int) Appointment {
	a.ID = id
	return a
}
