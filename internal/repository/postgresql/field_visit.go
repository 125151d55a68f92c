package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tugasgi/attendance-backend-go/internal/domain/fieldvisit"
	"github.com/tugasgi/attendance-backend-go/internal/pkg/database"
)

type fieldVisitRepository struct {
	db *database.DB
}

func NewFieldVisitRepository(db *database.DB) fieldvisit.FieldVisitRepository {
	return &fieldVisitRepository{db: db}
}

const fieldVisitColumns = `
	v.id, v.user_id, v.customer, v.person_in_charge, v.remarks,
	v.time, v.latitude, v.longitude, v.address, v.photo_url, v.created_at,
	u.username, u.full_name
`

func scanFieldVisit(row pgx.Row) (fieldvisit.FieldVisit, error) {
	var v fieldvisit.FieldVisit
	err := row.Scan(
		&v.ID, &v.UserID, &v.Customer, &v.PersonInCharge, &v.Remarks,
		&v.Time, &v.Latitude, &v.Longitude, &v.Address, &v.PhotoURL, &v.CreatedAt,
		&v.Username, &v.FullName,
	)
	return v, err
}

// Create implements fieldvisit.FieldVisitRepository.
func (r *fieldVisitRepository) Create(ctx context.Context, visit fieldvisit.FieldVisit) (fieldvisit.FieldVisit, error) {
	q := GetQuerier(ctx, r.db)

	if visit.ID == "" {
		id, err := newID()
		if err != nil {
			return fieldvisit.FieldVisit{}, err
		}
		visit.ID = id
	}

	err := q.QueryRow(ctx, `
		INSERT INTO field_visits (id, user_id, customer, person_in_charge, remarks, time, latitude, longitude, address, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`, visit.ID, visit.UserID, visit.Customer, visit.PersonInCharge, visit.Remarks,
		visit.Time, visit.Latitude, visit.Longitude, visit.Address, visit.PhotoURL,
	).Scan(&visit.CreatedAt)
	if err != nil {
		return fieldvisit.FieldVisit{}, fmt.Errorf("failed to create field visit: %w", err)
	}

	return visit, nil
}

// GetByID implements fieldvisit.FieldVisitRepository.
func (r *fieldVisitRepository) GetByID(ctx context.Context, id string) (fieldvisit.FieldVisit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + fieldVisitColumns + `
		FROM field_visits v
		JOIN users u ON u.id = v.user_id
		WHERE v.id = $1
	`

	v, err := scanFieldVisit(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fieldvisit.FieldVisit{}, fieldvisit.ErrFieldVisitNotFound
		}
		return fieldvisit.FieldVisit{}, fmt.Errorf("failed to get field visit: %w", err)
	}

	return v, nil
}

// ListByUser implements fieldvisit.FieldVisitRepository.
func (r *fieldVisitRepository) ListByUser(ctx context.Context, userID string, date *time.Time) ([]fieldvisit.FieldVisit, error) {
	query := `
		SELECT ` + fieldVisitColumns + `
		FROM field_visits v
		JOIN users u ON u.id = v.user_id
		WHERE v.user_id = $1
	`
	args := []interface{}{userID}

	if date != nil {
		args = append(args, *date, date.AddDate(0, 0, 1))
		query += " AND v.time >= $2 AND v.time < $3"
	}
	query += " ORDER BY v.time DESC"

	return r.list(ctx, query, args...)
}

// ListAll implements fieldvisit.FieldVisitRepository.
func (r *fieldVisitRepository) ListAll(ctx context.Context, date *time.Time) ([]fieldvisit.FieldVisit, error) {
	query := `
		SELECT ` + fieldVisitColumns + `
		FROM field_visits v
		JOIN users u ON u.id = v.user_id
	`
	args := []interface{}{}

	if date != nil {
		args = append(args, *date, date.AddDate(0, 0, 1))
		query += " WHERE v.time >= $1 AND v.time < $2"
	}
	query += " ORDER BY v.time DESC"

	return r.list(ctx, query, args...)
}

func (r *fieldVisitRepository) list(ctx context.Context, query string, args ...interface{}) ([]fieldvisit.FieldVisit, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list field visits: %w", err)
	}
	defer rows.Close()

	var visits []fieldvisit.FieldVisit
	for rows.Next() {
		v, err := scanFieldVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan field visit: %w", err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read field visits: %w", err)
	}

	return visits, nil
}
