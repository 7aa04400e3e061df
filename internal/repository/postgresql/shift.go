package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/shift"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// List implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT code, name, start_time, end_time, duration_hours, description, location, created_at, updated_at
		FROM shifts
		ORDER BY code ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(
			&s.Code,
			&s.Name,
			&s.StartTime,
			&s.EndTime,
			&s.DurationHours,
			&s.Description,
			&s.Location,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shifts: %w", err)
	}

	return shifts, nil
}

// GetByCode implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByCode(ctx context.Context, code string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT code, name, start_time, end_time, duration_hours, description, location, created_at, updated_at
		FROM shifts
		WHERE code = $1
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query, code).Scan(
		&s.Code,
		&s.Name,
		&s.StartTime,
		&s.EndTime,
		&s.DurationHours,
		&s.Description,
		&s.Location,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("get shift by code: %w", err)
	}

	return s, nil
}

// Upsert implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Upsert(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (code, name, start_time, end_time, duration_hours, description, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (code) DO UPDATE
		SET name = EXCLUDED.name, start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time,
			duration_hours = EXCLUDED.duration_hours, description = EXCLUDED.description,
			location = EXCLUDED.location, updated_at = NOW()
		RETURNING code, name, start_time, end_time, duration_hours, description, location, created_at, updated_at
	`

	var saved shift.Shift
	err := q.QueryRow(ctx, query,
		s.Code,
		s.Name,
		s.StartTime,
		s.EndTime,
		s.DurationHours,
		s.Description,
		s.Location,
	).Scan(
		&saved.Code,
		&saved.Name,
		&saved.StartTime,
		&saved.EndTime,
		&saved.DurationHours,
		&saved.Description,
		&saved.Location,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("upsert shift: %w", err)
	}

	return saved, nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, code string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
