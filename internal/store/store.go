package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/model"
)

// ErrNotFound reports a missing resume record.
var ErrNotFound = errors.New("resume not found")

// ResumeRecord is one persisted resume: an owning user, a display title and
// the full ResumeDocument as the content payload.
type ResumeRecord struct {
	ID        uuid.UUID             `json:"id"`
	UserID    uuid.UUID             `json:"user_id"`
	Title     string                `json:"title"`
	Content   *model.ResumeDocument `json:"content"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// Repo is the resume persistence contract. Update with an empty title keeps
// the stored title; content is always replaced whole (last write wins).
type Repo interface {
	Create(ctx context.Context, rec *ResumeRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (ResumeRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ResumeRecord, error)
	Update(ctx context.Context, id uuid.UUID, content *model.ResumeDocument, title string) (ResumeRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
