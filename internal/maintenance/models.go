package maintenance

import "time"

type Record struct {
	ID          string    `json:"id"`
	VehicleID   string    `json:"vehicle_id"`
	ServiceType string    `json:"service_type"`
	ServicedAt  time.Time `json:"serviced_at"`
	Odometer    float64   `json:"odometer"`
	Cost        float64   `json:"cost"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
