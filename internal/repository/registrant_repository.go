package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"promo-api/internal/domain"
	"promo-api/pkg/database"
)

type PostgresRegistrantRepository struct {
	db *database.PostgresDB
}

func NewRegistrantRepository(db *database.PostgresDB) *PostgresRegistrantRepository {
	return &PostgresRegistrantRepository{db: db}
}

const registrantColumns = `id, name, cpf, phone, birth_date, qr_token, used, created_at, used_at`

// Create persists a new registrant
func (r *PostgresRegistrantRepository) Create(ctx context.Context, registrant *domain.Registrant) error {
	query := `
		INSERT INTO registrants (id, name, cpf, phone, birth_date, qr_token)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		registrant.ID,
		registrant.Name,
		registrant.NationalID,
		registrant.Phone,
		registrant.BirthDate,
		registrant.QRToken,
	).Scan(&registrant.CreatedAt)

	if err != nil {
		return wrapErr("failed to create registrant", err)
	}

	return nil
}

// GetByNationalIDOrPhone retrieves a registrant by CPF or phone
func (r *PostgresRegistrantRepository) GetByNationalIDOrPhone(ctx context.Context, nationalID, phone string) (*domain.Registrant, error) {
	query := `
		SELECT ` + registrantColumns + `
		FROM registrants
		WHERE cpf = $1 OR phone = $2
	`

	registrant, err := r.scanOne(r.db.Pool.QueryRow(ctx, query, nationalID, phone))
	if err != nil {
		return nil, wrapErr("failed to get registrant by cpf or phone", err)
	}
	return registrant, nil
}

// GetByToken retrieves a registrant by QR token
func (r *PostgresRegistrantRepository) GetByToken(ctx context.Context, token string) (*domain.Registrant, error) {
	query := `
		SELECT ` + registrantColumns + `
		FROM registrants
		WHERE qr_token = $1
	`

	registrant, err := r.scanOne(r.db.Pool.QueryRow(ctx, query, token))
	if err != nil {
		return nil, wrapErr("failed to get registrant by token", err)
	}
	return registrant, nil
}

// Redeem flips used to true for an unused token. The conditional update
// is a single statement, so concurrent redemptions of the same token are
// serialized by the database and only one caller gets the row back.
func (r *PostgresRegistrantRepository) Redeem(ctx context.Context, token string, usedAt time.Time) (*domain.Registrant, error) {
	query := `
		UPDATE registrants
		SET used = true, used_at = $1
		WHERE qr_token = $2 AND used = false
		RETURNING ` + registrantColumns + `
	`

	registrant, err := r.scanOne(r.db.Pool.QueryRow(ctx, query, usedAt, token))
	if err != nil {
		return nil, wrapErr("failed to redeem token", err)
	}
	return registrant, nil
}

// List retrieves a page of registrants, newest first
func (r *PostgresRegistrantRepository) List(ctx context.Context, offset, limit int, search string) ([]domain.Registrant, error) {
	query := `
		SELECT ` + registrantColumns + `
		FROM registrants
		WHERE $3 = '' OR name ILIKE '%' || $3 || '%' OR cpf ILIKE '%' || $3 || '%'
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Pool.Query(ctx, query, offset, limit, search)
	if err != nil {
		return nil, wrapErr("failed to list registrants", err)
	}
	defer rows.Close()

	var registrants []domain.Registrant
	for rows.Next() {
		var registrant domain.Registrant
		if err := rows.Scan(
			&registrant.ID,
			&registrant.Name,
			&registrant.NationalID,
			&registrant.Phone,
			&registrant.BirthDate,
			&registrant.QRToken,
			&registrant.Used,
			&registrant.CreatedAt,
			&registrant.UsedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan registrant: %w", err)
		}
		registrants = append(registrants, registrant)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to read registrants", err)
	}

	return registrants, nil
}

// Count returns the total number of registrants
func (r *PostgresRegistrantRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM registrants`).Scan(&count); err != nil {
		return 0, wrapErr("failed to count registrants", err)
	}
	return count, nil
}

// ResetAllUsage clears redemption state on every registrant
func (r *PostgresRegistrantRepository) ResetAllUsage(ctx context.Context) (int64, error) {
	tag, err := r.db.Pool.Exec(ctx, `UPDATE registrants SET used = false, used_at = NULL WHERE used = true`)
	if err != nil {
		return 0, wrapErr("failed to reset registrant usage", err)
	}
	return tag.RowsAffected(), nil
}

// scanOne scans a single registrant row, translating pgx.ErrNoRows into
// (nil, nil)
func (r *PostgresRegistrantRepository) scanOne(row pgx.Row) (*domain.Registrant, error) {
	var registrant domain.Registrant
	err := row.Scan(
		&registrant.ID,
		&registrant.Name,
		&registrant.NationalID,
		&registrant.Phone,
		&registrant.BirthDate,
		&registrant.QRToken,
		&registrant.Used,
		&registrant.CreatedAt,
		&registrant.UsedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &registrant, nil
}

// wrapErr wraps repository errors, surfacing timeouts and cancellations
// as the storage-unavailable condition
func wrapErr(msg string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", msg, domain.ErrStorageUnavailable)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
