package vehicle

import "time"

type Vehicle struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Make      string    `json:"make"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	Plate     string    `json:"plate,omitempty"`
	Odometer  float64   `json:"odometer"`
	CreatedAt time.Time `json:"created_at"`
}
