package fuel

import (
	"context"
	"time"

	"backend-drivelog/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) AddFillUp(ctx context.Context, input FillUp) (FillUp, error) {
	input.ID = uuid.NewString()
	if input.FilledAt.IsZero() {
		input.FilledAt = time.Now()
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO fuel_fill_ups (id, vehicle_id, filled_at, odometer, volume_l, total_cost, station)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at
	`, input.ID, input.VehicleID, input.FilledAt, input.Odometer, input.Volume, input.TotalCost, input.Station)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return FillUp{}, err
	}
	return input, nil
}

func (s *Service) FillUps(ctx context.Context, vehicleID string) ([]FillUp, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, vehicle_id, filled_at, odometer, volume_l, total_cost, COALESCE(station,''), created_at
		FROM fuel_fill_ups WHERE vehicle_id=$1
		ORDER BY odometer
	`, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fillUps []FillUp
	for rows.Next() {
		var f FillUp
		if err := rows.Scan(&f.ID, &f.VehicleID, &f.FilledAt, &f.Odometer, &f.Volume, &f.TotalCost, &f.Station, &f.CreatedAt); err != nil {
			return nil, err
		}
		fillUps = append(fillUps, f)
	}
	return fillUps, nil
}

func (s *Service) DeleteFillUp(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM fuel_fill_ups WHERE id=$1`, id)
	return err
}

// EconomyReport derives consumption figures between consecutive fill-ups.
func (s *Service) EconomyReport(ctx context.Context, vehicleID string) ([]Economy, error) {
	fillUps, err := s.FillUps(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return computeEconomy(fillUps), nil
}

func computeEconomy(fillUps []FillUp) []Economy {
	var report []Economy
	for i := 1; i < len(fillUps); i++ {
		prev, curr := fillUps[i-1], fillUps[i]
		dist := curr.Odometer - prev.Odometer
		if dist <= 0 || curr.Volume <= 0 {
			continue
		}
		report = append(report, Economy{
			FillUpID:    curr.ID,
			Distance:    dist,
			Volume:      curr.Volume,
			DistPerUnit: dist / curr.Volume,
			CostPerDist: curr.TotalCost / dist,
		})
	}
	return report
}
