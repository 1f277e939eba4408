package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/model"
)

// PGRepo persists resume records in Postgres. Content is stored as JSONB in
// the exact ResumeDocument wire shape.
type PGRepo struct {
	pool *pgxpool.Pool
}

func NewPGRepo(pool *pgxpool.Pool) *PGRepo {
	return &PGRepo{pool: pool}
}

func (r *PGRepo) Create(ctx context.Context, rec *ResumeRecord) error {
	contentB, err := json.Marshal(rec.Content)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO resumes (id, user_id, title, content, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		rec.ID, rec.UserID, rec.Title, contentB, rec.CreatedAt, rec.UpdatedAt)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id uuid.UUID) (ResumeRecord, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, user_id, title, content, created_at, updated_at
		FROM resumes WHERE id = $1`, id)
	return scanRecord(row)
}

func (r *PGRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]ResumeRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, title, content, created_at, updated_at
		FROM resumes WHERE user_id = $1 ORDER BY updated_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ResumeRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, id uuid.UUID, content *model.ResumeDocument, title string) (ResumeRecord, error) {
	contentB, err := json.Marshal(content)
	if err != nil {
		return ResumeRecord{}, err
	}
	row := r.pool.QueryRow(ctx, `UPDATE resumes
		SET content = $2, title = COALESCE(NULLIF($3, ''), title), updated_at = now()
		WHERE id = $1
		RETURNING id, user_id, title, content, created_at, updated_at`,
		id, contentB, title)
	return scanRecord(row)
}

func (r *PGRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRecord(row pgx.Row) (ResumeRecord, error) {
	var rec ResumeRecord
	var contentB []byte
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Title, &contentB, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ResumeRecord{}, ErrNotFound
		}
		return ResumeRecord{}, err
	}
	if len(contentB) > 0 {
		var doc model.ResumeDocument
		if err := json.Unmarshal(contentB, &doc); err != nil {
			return ResumeRecord{}, err
		}
		rec.Content = &doc
	}
	return rec, nil
}
