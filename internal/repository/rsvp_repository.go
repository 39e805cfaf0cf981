package repository

import (
	"context"
	"errors"

	"wedding-rsvp/internal/model"
	apperrors "wedding-rsvp/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RSVPRepository interface {
	Create(ctx context.Context, rsvp *model.RSVP) (*model.RSVP, error)
	List(ctx context.Context) ([]*model.RSVP, error)
	FindByID(ctx context.Context, id int) (*model.RSVP, error)
	Update(ctx context.Context, id int, params model.UpdateRSVPParams) (*model.RSVP, error)
	Delete(ctx context.Context, id int) (*model.RSVP, error)
	Stats(ctx context.Context) ([]*model.AttendanceStats, error)
}

type RSVPRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewRSVPRepository(pool *pgxpool.Pool) RSVPRepository {
	return &RSVPRepositoryImpl{
		pool: pool,
	}
}

// undefinedTable is the Postgres error code for a missing relation.
const undefinedTable = "42P01"

func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedTable {
		return apperrors.ErrSchemaMissing
	}
	return err
}

func (r *RSVPRepositoryImpl) Create(ctx context.Context, rsvp *model.RSVP) (*model.RSVP, error) {
	if rsvp.GuestCount <= 0 {
		rsvp.GuestCount = 1
	}

	query := `
		INSERT INTO rsvps (name, email, attendance, guest_count, dietary_restrictions, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, email, attendance, guest_count, dietary_restrictions, message, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		rsvp.Name, rsvp.Email, rsvp.Attendance, rsvp.GuestCount, rsvp.DietaryRestrictions, rsvp.Message,
	).Scan(
		&rsvp.ID,
		&rsvp.Name,
		&rsvp.Email,
		&rsvp.Attendance,
		&rsvp.GuestCount,
		&rsvp.DietaryRestrictions,
		&rsvp.Message,
		&rsvp.CreatedAt,
		&rsvp.UpdatedAt,
	)
	if err != nil {
		return nil, classify(err)
	}
	return rsvp, nil
}

func (r *RSVPRepositoryImpl) List(ctx context.Context) ([]*model.RSVP, error) {
	query := `
		SELECT id, name, email, attendance, guest_count, dietary_restrictions, message, created_at, updated_at
		FROM rsvps
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	rsvps := make([]*model.RSVP, 0)
	for rows.Next() {
		var rsvp model.RSVP
		err := rows.Scan(
			&rsvp.ID,
			&rsvp.Name,
			&rsvp.Email,
			&rsvp.Attendance,
			&rsvp.GuestCount,
			&rsvp.DietaryRestrictions,
			&rsvp.Message,
			&rsvp.CreatedAt,
			&rsvp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		rsvps = append(rsvps, &rsvp)
	}
	return rsvps, nil
}

func (r *RSVPRepositoryImpl) FindByID(ctx context.Context, id int) (*model.RSVP, error) {
	query := `
		SELECT id, name, email, attendance, guest_count, dietary_restrictions, message, created_at, updated_at
		FROM rsvps
		WHERE id = $1
	`

	var rsvp model.RSVP
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rsvp.ID,
		&rsvp.Name,
		&rsvp.Email,
		&rsvp.Attendance,
		&rsvp.GuestCount,
		&rsvp.DietaryRestrictions,
		&rsvp.Message,
		&rsvp.CreatedAt,
		&rsvp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrRSVPNotFound
		}
		return nil, classify(err)
	}

	return &rsvp, nil
}

// Update applies a coalesce merge: nil params keep the stored column,
// and updated_at is refreshed even when no field is supplied.
func (r *RSVPRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateRSVPParams) (*model.RSVP, error) {
	query := `
		UPDATE rsvps
		SET name = COALESCE($1, name),
			email = COALESCE($2, email),
			attendance = COALESCE($3, attendance),
			guest_count = COALESCE($4, guest_count),
			dietary_restrictions = COALESCE($5, dietary_restrictions),
			message = COALESCE($6, message),
			updated_at = NOW()
		WHERE id = $7
		RETURNING id, name, email, attendance, guest_count, dietary_restrictions, message, created_at, updated_at
	`

	var rsvp model.RSVP
	err := r.pool.QueryRow(ctx, query,
		params.Name,
		params.Email,
		params.Attendance,
		params.GuestCount,
		params.DietaryRestrictions,
		params.Message,
		id,
	).Scan(
		&rsvp.ID,
		&rsvp.Name,
		&rsvp.Email,
		&rsvp.Attendance,
		&rsvp.GuestCount,
		&rsvp.DietaryRestrictions,
		&rsvp.Message,
		&rsvp.CreatedAt,
		&rsvp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrRSVPNotFound
		}
		return nil, classify(err)
	}

	return &rsvp, nil
}

func (r *RSVPRepositoryImpl) Delete(ctx context.Context, id int) (*model.RSVP, error) {
	query := `
		DELETE FROM rsvps
		WHERE id = $1
		RETURNING id, name, email, attendance, guest_count, dietary_restrictions, message, created_at, updated_at
	`

	var rsvp model.RSVP
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rsvp.ID,
		&rsvp.Name,
		&rsvp.Email,
		&rsvp.Attendance,
		&rsvp.GuestCount,
		&rsvp.DietaryRestrictions,
		&rsvp.Message,
		&rsvp.CreatedAt,
		&rsvp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrRSVPNotFound
		}
		return nil, classify(err)
	}

	return &rsvp, nil
}

func (r *RSVPRepositoryImpl) Stats(ctx context.Context) ([]*model.AttendanceStats, error) {
	query := `
		SELECT attendance, COUNT(*) AS count, SUM(guest_count) AS total_guests
		FROM rsvps
		GROUP BY attendance
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	stats := make([]*model.AttendanceStats, 0)
	for rows.Next() {
		var s model.AttendanceStats
		if err := rows.Scan(&s.Attendance, &s.Count, &s.TotalGuests); err != nil {
			return nil, err
		}
		stats = append(stats, &s)
	}
	return stats, nil
}
