package maintenance

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

func (s *Service) AddRecord(ctx context.Context, input Record) (Record, error) {
	input.ID = uuid.NewString()
	if input.ServicedAt.IsZero() {
		input.ServicedAt = time.Now()
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO maintenance_records (id, vehicle_id, service_type, serviced_at, odometer, cost, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at
	`, input.ID, input.VehicleID, input.ServiceType, input.ServicedAt, input.Odometer, input.Cost, input.Notes)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Record{}, err
	}
	return input, nil
}

func (s *Service) Records(ctx context.Context, vehicleID string) ([]Record, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, vehicle_id, service_type, serviced_at, odometer, cost, COALESCE(notes,''), created_at
		FROM maintenance_records WHERE vehicle_id=$1
		ORDER BY serviced_at DESC
	`, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.VehicleID, &r.ServiceType, &r.ServicedAt, &r.Odometer, &r.Cost, &r.Notes, &r.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func (s *Service) GetRecord(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, vehicle_id, service_type, serviced_at, odometer, cost, COALESCE(notes,''), created_at
		FROM maintenance_records WHERE id=$1
	`, id)
	var r Record
	if err := row.Scan(&r.ID, &r.VehicleID, &r.ServiceType, &r.ServicedAt, &r.Odometer, &r.Cost, &r.Notes, &r.CreatedAt); err != nil {
		return Record{}, err
	}
	return r, nil
}

func (s *Service) DeleteRecord(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM maintenance_records WHERE id=$1`, id)
	return err
}
