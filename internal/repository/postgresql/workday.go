package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/workday"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/database"
)

type workdayRepositoryImpl struct {
	db *database.DB
}

func NewWorkdayRepository(db *database.DB) workday.WorkdayRepository {
	return &workdayRepositoryImpl{db: db}
}

const workdayColumns = `
	id, employee_id, date, shift_code, start_time, end_time, crossed_midnight, rest_day, location,
	applied_salary, applied_divisor_hours, applied_hourly_rate, applied_rules, applied_multipliers,
	hours, amounts, status, created_at, closed_at
`

// scanWorkday reads one row. The four JSONB columns decode into the Applied*
// snapshot structs and the two breakdowns.
func scanWorkday(row pgx.Row) (workday.Workday, error) {
	var w workday.Workday
	var appliedRules, appliedMultipliers, hours, amounts []byte

	err := row.Scan(
		&w.ID,
		&w.EmployeeID,
		&w.Date,
		&w.ShiftCode,
		&w.StartTime,
		&w.EndTime,
		&w.CrossedMidnight,
		&w.RestDay,
		&w.Location,
		&w.AppliedSalary,
		&w.AppliedDivisorHours,
		&w.AppliedHourlyRate,
		&appliedRules,
		&appliedMultipliers,
		&hours,
		&amounts,
		&w.Status,
		&w.CreatedAt,
		&w.ClosedAt,
	)
	if err != nil {
		return workday.Workday{}, err
	}

	if err := json.Unmarshal(appliedRules, &w.AppliedRules); err != nil {
		return workday.Workday{}, fmt.Errorf("decode applied rules: %w", err)
	}
	if err := json.Unmarshal(appliedMultipliers, &w.AppliedMultipliers); err != nil {
		return workday.Workday{}, fmt.Errorf("decode applied multipliers: %w", err)
	}
	if err := json.Unmarshal(hours, &w.Hours); err != nil {
		return workday.Workday{}, fmt.Errorf("decode hour breakdown: %w", err)
	}
	if err := json.Unmarshal(amounts, &w.Values); err != nil {
		return workday.Workday{}, fmt.Errorf("decode value breakdown: %w", err)
	}

	return w, nil
}

// Create implements workday.WorkdayRepository.
func (r *workdayRepositoryImpl) Create(ctx context.Context, w workday.Workday) (workday.Workday, error) {
	q := GetQuerier(ctx, r.db)

	appliedRules, err := json.Marshal(w.AppliedRules)
	if err != nil {
		return workday.Workday{}, fmt.Errorf("encode applied rules: %w", err)
	}
	appliedMultipliers, err := json.Marshal(w.AppliedMultipliers)
	if err != nil {
		return workday.Workday{}, fmt.Errorf("encode applied multipliers: %w", err)
	}
	hours, err := json.Marshal(w.Hours)
	if err != nil {
		return workday.Workday{}, fmt.Errorf("encode hour breakdown: %w", err)
	}
	amounts, err := json.Marshal(w.Values)
	if err != nil {
		return workday.Workday{}, fmt.Errorf("encode value breakdown: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO workdays (
			employee_id, date, shift_code, start_time, end_time, crossed_midnight, rest_day, location,
			applied_salary, applied_divisor_hours, applied_hourly_rate, applied_rules, applied_multipliers,
			hours, amounts, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING %s
	`, workdayColumns)

	created, err := scanWorkday(q.QueryRow(ctx, query,
		w.EmployeeID,
		w.Date,
		w.ShiftCode,
		w.StartTime,
		w.EndTime,
		w.CrossedMidnight,
		w.RestDay,
		w.Location,
		w.AppliedSalary,
		w.AppliedDivisorHours,
		w.AppliedHourlyRate,
		appliedRules,
		appliedMultipliers,
		hours,
		amounts,
		w.Status,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return workday.Workday{}, workday.ErrWorkdayExists
		}
		return workday.Workday{}, fmt.Errorf("create workday: %w", err)
	}

	return created, nil
}

// GetByID implements workday.WorkdayRepository.
func (r *workdayRepositoryImpl) GetByID(ctx context.Context, id string) (workday.Workday, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM workdays WHERE id = $1`, workdayColumns)

	found, err := scanWorkday(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return workday.Workday{}, workday.ErrWorkdayNotFound
		}
		return workday.Workday{}, fmt.Errorf("get workday by id: %w", err)
	}

	return found, nil
}

// GetByEmployeeAndDate implements workday.WorkdayRepository.
func (r *workdayRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*workday.Workday, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM workdays WHERE employee_id = $1 AND date = $2`, workdayColumns)

	found, err := scanWorkday(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get workday by employee and date: %w", err)
	}

	return &found, nil
}

// ListByEmployee implements workday.WorkdayRepository.
func (r *workdayRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]workday.Workday, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM workdays
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`, workdayColumns)

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list workdays by employee: %w", err)
	}
	defer rows.Close()

	return collectWorkdays(rows)
}

// ListRange implements workday.WorkdayRepository. Employee names are joined
// so reporting never needs a second round trip. Records whose employee row
// is gone are kept with a nil name; the aggregation decides what to do
// with them.
func (r *workdayRepositoryImpl) ListRange(ctx context.Context, from, to time.Time, company *string) ([]workday.Workday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT w.id, w.employee_id, w.date, w.shift_code, w.start_time, w.end_time, w.crossed_midnight,
			   w.rest_day, w.location, w.applied_salary, w.applied_divisor_hours, w.applied_hourly_rate,
			   w.applied_rules, w.applied_multipliers, w.hours, w.amounts, w.status, w.created_at, w.closed_at,
			   e.full_name
		FROM workdays w
		LEFT JOIN employees e ON e.id = w.employee_id
		WHERE w.date BETWEEN $1 AND $2
	`
	args := []any{from, to}
	if company != nil {
		query += ` AND e.company = $3`
		args = append(args, *company)
	}
	query += ` ORDER BY e.full_name ASC, w.date ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workdays in range: %w", err)
	}
	defer rows.Close()

	var workdays []workday.Workday
	for rows.Next() {
		var w workday.Workday
		var appliedRules, appliedMultipliers, hours, amounts []byte
		var fullName *string

		if err := rows.Scan(
			&w.ID,
			&w.EmployeeID,
			&w.Date,
			&w.ShiftCode,
			&w.StartTime,
			&w.EndTime,
			&w.CrossedMidnight,
			&w.RestDay,
			&w.Location,
			&w.AppliedSalary,
			&w.AppliedDivisorHours,
			&w.AppliedHourlyRate,
			&appliedRules,
			&appliedMultipliers,
			&hours,
			&amounts,
			&w.Status,
			&w.CreatedAt,
			&w.ClosedAt,
			&fullName,
		); err != nil {
			return nil, fmt.Errorf("scan workday: %w", err)
		}

		if err := json.Unmarshal(appliedRules, &w.AppliedRules); err != nil {
			return nil, fmt.Errorf("decode applied rules: %w", err)
		}
		if err := json.Unmarshal(appliedMultipliers, &w.AppliedMultipliers); err != nil {
			return nil, fmt.Errorf("decode applied multipliers: %w", err)
		}
		if err := json.Unmarshal(hours, &w.Hours); err != nil {
			return nil, fmt.Errorf("decode hour breakdown: %w", err)
		}
		if err := json.Unmarshal(amounts, &w.Values); err != nil {
			return nil, fmt.Errorf("decode value breakdown: %w", err)
		}

		w.EmployeeName = fullName
		workdays = append(workdays, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workdays: %w", err)
	}

	return workdays, nil
}

// Close implements workday.WorkdayRepository.
func (r *workdayRepositoryImpl) Close(ctx context.Context, id string, closedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workdays
		SET status = $1, closed_at = $2
		WHERE id = $3 AND status = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, workday.StatusClosed, closedAt, id, workday.StatusComputed).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Either missing or already closed; let the caller decide which.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return getErr
			}
			return workday.ErrWorkdayAlreadyClosed
		}
		return fmt.Errorf("close workday: %w", err)
	}

	return nil
}

// Delete implements workday.WorkdayRepository.
func (r *workdayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM workdays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete workday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workday.ErrWorkdayNotFound
	}

	return nil
}

func collectWorkdays(rows pgx.Rows) ([]workday.Workday, error) {
	var workdays []workday.Workday
	for rows.Next() {
		w, err := scanWorkday(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workday: %w", err)
		}
		workdays = append(workdays, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workdays: %w", err)
	}
	return workdays, nil
}
