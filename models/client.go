package models

type Client struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
	IsVIP bool   `json:"isVIP"`
	// IsBadClient flags clients with a history of no-shows or late cancels.
	IsBadClient bool `json:"isBadClient"`
	// Appointments is an informational visit-history list kept on the client
	// card. It is not referentially tied to the appointments collection.
	Appointments []string `json:"appointments"`
}

func (c Client) RecordID() int { return c.ID }

func (c Client) WithRecordID(id int) Client {
	c.ID = id
	return c
}
