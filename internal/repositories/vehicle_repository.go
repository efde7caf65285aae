package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "fleetops/internal/config"
	intdb "fleetops/internal/db"
	"fleetops/internal/domain"
	"fleetops/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type VehicleRepository struct {
	DB *sql.DB
}

func (r VehicleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const vehicleSelect = `
	SELECT id,
	       registration,
	       COALESCE(make,''),
	       COALESCE(model,''),
	       daily_rate,
	       weekly_rate,
	       COALESCE(status,'active')
	FROM vehicles
`

// List returns vehicles, optionally filtered by a registration/make search.
func (r VehicleRepository) List(q string, limit, offset int) ([]models.Vehicle, error) {
	query := vehicleSelect
	args := []any{}
	if q = strings.TrimSpace(q); q != "" {
		query += ` WHERE (registration LIKE ? OR make LIKE ?)`
		like := "%" + q + "%"
		args = append(args, like, like)
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

	list := []models.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r VehicleRepository) GetByID(id uint64) (models.Vehicle, error) {
	if id == 0 {
		return models.Vehicle{}, domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	row := r.db().QueryRow(vehicleSelect+` WHERE id=? LIMIT 1`, id)
	v, err := scanVehicle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vehicle{}, domain.NotFoundError{Resource: "vehicle"}
		}
		return models.Vehicle{}, err
	}
	return v, nil
}

func (r VehicleRepository) Create(p models.VehiclePayload) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO vehicles (registration, make, model, daily_rate, weekly_rate, status)
		VALUES (?, ?, ?, ?, ?, COALESCE(NULLIF(?,''),'active'))
	`, strings.TrimSpace(p.Registration), intdb.NullIfEmpty(p.Make), intdb.NullIfEmpty(p.Model),
		p.DailyRate, p.WeeklyRate, strings.TrimSpace(p.Status))
	if err != nil {
		return 0, asConflict(err)
	}
	return res.LastInsertId()
}

func (r VehicleRepository) Update(id uint64, p models.VehiclePayload) error {
	if id == 0 {
		return domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	res, err := r.db().Exec(`
		UPDATE vehicles
		SET registration = ?, make = ?, model = ?, daily_rate = ?, weekly_rate = ?, status = COALESCE(NULLIF(?,''),'active')
		WHERE id = ?
	`, strings.TrimSpace(p.Registration), intdb.NullIfEmpty(p.Make), intdb.NullIfEmpty(p.Model),
		p.DailyRate, p.WeeklyRate, strings.TrimSpace(p.Status), id)
	if err != nil {
		return asConflict(err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return nil
}

func (r VehicleRepository) Delete(id uint64) error {
	if id == 0 {
		return domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	res, err := r.db().Exec(`DELETE FROM vehicles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return nil
}

// asConflict maps a MySQL duplicate-key error onto the domain type.
func asConflict(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return domain.ConflictError{Resource: "vehicle", Msg: "registration already exists", Err: err}
	}
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (models.Vehicle, error) {
	var (
		v      models.Vehicle
		daily  sql.NullFloat64
		weekly sql.NullFloat64
	)
	if err := row.Scan(&v.ID, &v.Registration, &v.Make, &v.Model, &daily, &weekly, &v.Status); err != nil {
		return models.Vehicle{}, err
	}
	if daily.Valid {
		x := daily.Float64
		v.DailyRate = &x
	}
	if weekly.Valid {
		x := weekly.Float64
		v.WeeklyRate = &x
	}
	return v, nil
}
