package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "fleetops/internal/config"
	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
)

type RentalRepository struct {
	DB *sql.DB
}

func (r RentalRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const rentalSelect = `
	SELECT id,
	       vehicle_id,
	       kind,
	       start_at,
	       end_at,
	       COALESCE(week_count,0),
	       duration_units,
	       rate,
	       total,
	       COALESCE(status,'active')
	FROM rentals
`

// Create stores a priced rental and returns its id.
func (r RentalRepository) Create(rental models.Rental) (int64, error) {
	if rental.VehicleID == 0 {
		return 0, domain.ValidationError{Field: "vehicleId", Msg: "must be positive"}
	}
	var weekCount any
	if rental.WeekCount > 0 {
		weekCount = rental.WeekCount
	}
	res, err := r.db().Exec(`
		INSERT INTO rentals (vehicle_id, kind, start_at, end_at, week_count, duration_units, rate, total, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, COALESCE(NULLIF(?,''),'active'))
	`, rental.VehicleID, rental.Kind, rental.Start, rental.End, weekCount,
		rental.DurationUnits, rental.Rate, rental.Total, strings.TrimSpace(rental.Status))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r RentalRepository) GetByID(id int64) (models.Rental, error) {
	if id <= 0 {
		return models.Rental{}, domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	var out models.Rental
	err := r.db().QueryRow(rentalSelect+` WHERE id=? LIMIT 1`, id).Scan(
		&out.ID, &out.VehicleID, &out.Kind, &out.Start, &out.End,
		&out.WeekCount, &out.DurationUnits, &out.Rate, &out.Total, &out.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Rental{}, domain.NotFoundError{Resource: "rental"}
		}
		return models.Rental{}, err
	}
	return out, nil
}

// List returns rentals newest first, optionally scoped to one vehicle.
func (r RentalRepository) List(vehicleID uint64, limit, offset int) ([]models.Rental, error) {
	query := rentalSelect
	args := []any{}
	if vehicleID > 0 {
		query += ` WHERE vehicle_id = ?`
		args = append(args, vehicleID)
	}
	query += ` ORDER BY id DESC`
	if limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Rental{}
	for rows.Next() {
		var out models.Rental
		if err := rows.Scan(
			&out.ID, &out.VehicleID, &out.Kind, &out.Start, &out.End,
			&out.WeekCount, &out.DurationUnits, &out.Rate, &out.Total, &out.Status,
		); err != nil {
			return nil, err
		}
		list = append(list, out)
	}
	return list, rows.Err()
}
