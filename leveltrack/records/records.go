package records

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new record repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// creates a record for the user
func (r *Repository) Create(ctx context.Context, userID string, level int, at time.Time) (*Record, error) {
	var record Record

	err := r.db.QueryRow(ctx, queryCreateRecord, userID, level, at).Scan(
		&record.ID,
		&record.UserID,
		&record.Level,
		&record.Time,
		&record.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &record, nil
}

// lists all records for the user, most recent first
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	rows, err := r.db.Query(ctx, queryListByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recordsList := []Record{}

	for rows.Next() {
		var record Record

		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Level,
			&record.Time,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		recordsList = append(recordsList, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return recordsList, nil
}
