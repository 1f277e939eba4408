package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/model"
)

// MemoryRepo is an in-memory Repo used by tests and when the server runs
// without a database.
type MemoryRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]ResumeRecord
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{records: map[uuid.UUID]ResumeRecord{}}
}

func (r *MemoryRepo) Create(_ context.Context, rec *ResumeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *rec
	if stored.Content != nil {
		stored.Content = stored.Content.Clone()
	}
	r.records[stored.ID] = stored
	return nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id uuid.UUID) (ResumeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return ResumeRecord{}, ErrNotFound
	}
	return copyRecord(rec), nil
}

func (r *MemoryRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]ResumeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []ResumeRecord{}
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, copyRecord(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *MemoryRepo) Update(_ context.Context, id uuid.UUID, content *model.ResumeDocument, title string) (ResumeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return ResumeRecord{}, ErrNotFound
	}
	if content != nil {
		rec.Content = content.Clone()
	}
	if title != "" {
		rec.Title = title
	}
	rec.UpdatedAt = time.Now().UTC()
	r.records[id] = rec
	return copyRecord(rec), nil
}

func (r *MemoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func copyRecord(rec ResumeRecord) ResumeRecord {
	out := rec
	if rec.Content != nil {
		out.Content = rec.Content.Clone()
	}
	return out
}
