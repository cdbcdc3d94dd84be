package vehicle

import (
	"context"

	"backend-drivelog/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) CreateVehicle(ctx context.Context, input Vehicle) (Vehicle, error) {
	input.ID = uuid.NewString()
	row := s.db.QueryRow(ctx, `
		INSERT INTO vehicles (id, owner_id, name, make, model, year, plate, odometer)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at
	`, input.ID, input.OwnerID, input.Name, input.Make, input.Model, input.Year, input.Plate, input.Odometer)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Vehicle{}, err
	}
	return input, nil
}

func (s *Service) GetVehicle(ctx context.Context, id string) (Vehicle, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, owner_id, name, make, model, year, COALESCE(plate,''), odometer, created_at
		FROM vehicles WHERE id=$1
	`, id)
	var v Vehicle
	if err := row.Scan(&v.ID, &v.OwnerID, &v.Name, &v.Make, &v.Model, &v.Year, &v.Plate, &v.Odometer, &v.CreatedAt); err != nil {
		return Vehicle{}, err
	}
	return v, nil
}

func (s *Service) Vehicles(ctx context.Context, ownerID string) ([]Vehicle, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, owner_id, name, make, model, year, COALESCE(plate,''), odometer, created_at
		FROM vehicles WHERE owner_id=$1
		ORDER BY created_at
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []Vehicle
	for rows.Next() {
		var v Vehicle
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.Name, &v.Make, &v.Model, &v.Year, &v.Plate, &v.Odometer, &v.CreatedAt); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

func (s *Service) UpdateVehicle(ctx context.Context, id string, patch Vehicle) (Vehicle, error) {
	v, err := s.GetVehicle(ctx, id)
	if err != nil {
		return Vehicle{}, err
	}
	if patch.Name != "" {
		v.Name = patch.Name
	}
	if patch.Make != "" {
		v.Make = patch.Make
	}
	if patch.Model != "" {
		v.Model = patch.Model
	}
	if patch.Year != 0 {
		v.Year = patch.Year
	}
	if patch.Plate != "" {
		v.Plate = patch.Plate
	}
	if patch.Odometer != 0 {
		v.Odometer = patch.Odometer
	}

	_, err = s.db.Exec(ctx, `
		UPDATE vehicles
		SET name=$2, make=$3, model=$4, year=$5, plate=$6, odometer=$7
		WHERE id=$1
	`, v.ID, v.Name, v.Make, v.Model, v.Year, v.Plate, v.Odometer)
	if err != nil {
		return Vehicle{}, err
	}
	return v, nil
}

func (s *Service) DeleteVehicle(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM vehicles WHERE id=$1`, id)
	return err
}

// Odometer returns the current odometer reading. The recorder reads this at
// trip start and stop.
func (s *Service) Odometer(ctx context.Context, vehicleID string) (float64, error) {
	var odo float64
	err := s.db.QueryRow(ctx, `SELECT odometer FROM vehicles WHERE id=$1`, vehicleID).Scan(&odo)
	return odo, err
}

func (s *Service) UpdateOdometer(ctx context.Context, vehicleID string, odometer float64) error {
	_, err := s.db.Exec(ctx, `UPDATE vehicles SET odometer=$2 WHERE id=$1`, vehicleID, odometer)
	return err
}
