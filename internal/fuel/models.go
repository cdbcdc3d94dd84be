package fuel

import "time"

type FillUp struct {
	ID        string    `json:"id"`
	VehicleID string    `json:"vehicle_id"`
	FilledAt  time.Time `json:"filled_at"`
	Odometer  float64   `json:"odometer"`
	Volume    float64   `json:"volume_l"`
	TotalCost float64   `json:"total_cost"`
	Station   string    `json:"station,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Economy is the consumption computed between two consecutive fill-ups.
type Economy struct {
	FillUpID    string  `json:"fill_up_id"`
	Distance    float64 `json:"distance"`
	Volume      float64 `json:"volume_l"`
	DistPerUnit float64 `json:"distance_per_liter"`
	CostPerDist float64 `json:"cost_per_distance"`
}
