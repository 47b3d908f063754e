package postgres

import (
	"context"
	"database/sql"

	"docqa/internal/model"
	"docqa/internal/repository"
)

// ActivityPostgres is a PostgreSQL implementation of repository.ActivityRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ActivityPostgres struct {
	db *sql.DB
}

// NewActivityPostgres creates a new ActivityPostgres repository.
func NewActivityPostgres(db *sql.DB) *ActivityPostgres {
	return &ActivityPostgres{db: db}
}

var _ repository.ActivityRepository = (*ActivityPostgres)(nil)

// Create inserts a new ledger row.
func (r *ActivityPostgres) Create(ctx context.Context, a *model.Activity) error {
	const q = `
		INSERT INTO activity (id, kind, media_type, size_bytes, content_length, question_length, answer_length, outcome, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, q,
		a.ID,
		string(a.Kind),
		a.MediaType,
		a.SizeBytes,
		a.ContentLength,
		a.QuestionLength,
		a.AnswerLength,
		a.Outcome,
		a.DurationMS,
		a.CreatedAt,
	)
	return err
}

// List returns entries using LIMIT/OFFSET pagination and a total count.
func (r *ActivityPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Activity], error) {
	const qCount = `SELECT COUNT(*) FROM activity`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, kind, media_type, size_bytes, content_length, question_length, answer_length, outcome, duration_ms, created_at
		FROM activity
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Activity, 0)
	for rows.Next() {
		var (
			a    model.Activity
			kind string
		)
		if err := rows.Scan(
			&a.ID,
			&kind,
			&a.MediaType,
			&a.SizeBytes,
			&a.ContentLength,
			&a.QuestionLength,
			&a.AnswerLength,
			&a.Outcome,
			&a.DurationMS,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		a.Kind = model.ActivityKind(kind)
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Activity]{
		Items: items,
		Total: total,
	}, nil
}

// Summary counts entries per kind, split by successful and failed outcomes.
func (r *ActivityPostgres) Summary(ctx context.Context) (*model.ActivitySummary, error) {
	const q = `
		SELECT
			COUNT(*) FILTER (WHERE kind = 'upload'),
			COUNT(*) FILTER (WHERE kind = 'upload' AND outcome <> 'OK'),
			COUNT(*) FILTER (WHERE kind = 'ask'),
			COUNT(*) FILTER (WHERE kind = 'ask' AND outcome <> 'OK')
		FROM activity
	`
	var s model.ActivitySummary
	if err := r.db.QueryRowContext(ctx, q).Scan(&s.Uploads, &s.UploadsFailed, &s.Asks, &s.AsksFailed); err != nil {
		return nil, err
	}
	return &s, nil
}
