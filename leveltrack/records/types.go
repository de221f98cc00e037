package records

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles record database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents one tracked level measurement for a user
type Record struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Level     int       `json:"level"`
	Time      time.Time `json:"time"`
	CreatedAt time.Time `json:"created_at"`
}

// contains data for creating a record
type CreateRecordRequest struct {
	Level *int      `json:"level" binding:"required,min=0"`
	Time  time.Time `json:"time" binding:"required"`
}
