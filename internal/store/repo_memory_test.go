package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/model"
)

func newRecord(userID uuid.UUID) *ResumeRecord {
	now := time.Now().UTC()
	doc := model.NewResumeDocument()
	doc.SetPersonalInfo(model.PersonalInfo{FullName: "Jane Doe"})
	return &ResumeRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Jane's resume",
		Content:   doc,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMemoryRepoCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	user := uuid.New()

	rec := newRecord(user)
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Title, got.Title)
	assert.Equal(t, "Jane Doe", got.Content.PersonalInfo.FullName)

	doc := got.Content
	doc.AddSkill("Go")
	updated, err := repo.Update(ctx, rec.ID, doc, "Renamed")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, []string{"Go"}, updated.Content.Skills)
	assert.True(t, updated.UpdatedAt.After(rec.UpdatedAt) || updated.UpdatedAt.Equal(rec.UpdatedAt))

	// empty title keeps the stored one
	kept, err := repo.Update(ctx, rec.ID, doc, "")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", kept.Title)

	require.NoError(t, repo.Delete(ctx, rec.ID))
	_, err = repo.GetByID(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, rec.ID), ErrNotFound)
}

func TestMemoryRepoListByUserNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	user := uuid.New()

	older := newRecord(user)
	older.UpdatedAt = time.Now().UTC().Add(-time.Hour)
	newer := newRecord(user)
	other := newRecord(uuid.New())

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, other))

	recs, err := repo.ListByUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, newer.ID, recs[0].ID)
	assert.Equal(t, older.ID, recs[1].ID)
}

func TestMemoryRepoUpdateMissing(t *testing.T) {
	repo := NewMemoryRepo()
	_, err := repo.Update(context.Background(), uuid.New(), model.NewResumeDocument(), "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepoIsolatesContent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	rec := newRecord(uuid.New())
	require.NoError(t, repo.Create(ctx, rec))

	// mutating the caller's document must not leak into the store
	rec.Content.AddSkill("Rust")

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Content.Skills)
}
