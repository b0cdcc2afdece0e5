package audit

import (
	"context"
	"database/sql"
)

// Postgres is a Recorder writing outcome rows through database/sql.
// Parameterized queries only, no business logic.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

var _ Recorder = (*Postgres)(nil)

func (r *Postgres) Record(ctx context.Context, e Entry) error {
	const q = `
		INSERT INTO submission_audit (request_id, outcome, detail, file_count, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, q,
		e.RequestID,
		e.Outcome,
		e.Detail,
		e.FileCount,
		e.CreatedAt,
	)
	return err
}
