package models

type Staff struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"` // free-text label, e.g. "Stylist"
	Email string `json:"email"`
}

func (s Staff) RecordID() int { return s.ID }

func (s Staff) WithRecordID(id int) Staff {
	s.ID = id
	return s
}
