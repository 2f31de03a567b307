package models

type Service struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"` // in minutes
	Price    float64 `json:"price"`
}

func (s Service) RecordID() int { return s.ID }

func (s Service) WithRecordID(id int) Service {
	s.ID = id
	return s
}
