package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/Backend-Dev-Connect/src/lib"
	"github.com/theleywin/Backend-Dev-Connect/src/models"
)

func profileFixture(user primitive.ObjectID) *models.Profile {
	return &models.Profile{
		User:      user,
		Status:    "Developer",
		Skills:    []string{"go"},
		UpdatedAt: time.Now().UTC(),
	}
}

func TestMemoryUpsertCreatesThenUpdates(t *testing.T) {
	s := NewMemoryStore()
	user := primitive.NewObjectID()

	created, err := s.Upsert(context.Background(), profileFixture(user))
	require.NoError(t, err)
	assert.False(t, created.Id.IsZero())
	assert.Equal(t, created.UpdatedAt, created.CreatedAt)

	update := profileFixture(user)
	update.Status = "Senior Developer"
	update.UpdatedAt = created.UpdatedAt.Add(time.Hour)

	updated, err := s.Upsert(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, created.Id, updated.Id, "same aggregate, same identity")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "creation timestamp survives")
	assert.Equal(t, "Senior Developer", updated.Status)
}

func TestMemoryUpsertPreservesEmbeddedLists(t *testing.T) {
	s := NewMemoryStore()
	user := primitive.NewObjectID()

	created, err := s.Upsert(context.Background(), profileFixture(user))
	require.NoError(t, err)

	created.Experience = models.AddEntry(created.Experience, models.Experience{Title: "Engineer", Company: "Acme"})
	_, err = s.Replace(context.Background(), created)
	require.NoError(t, err)

	updated, err := s.Upsert(context.Background(), profileFixture(user))
	require.NoError(t, err)
	assert.Len(t, updated.Experience, 1)
}

func TestMemoryReplaceMissingAggregate(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Replace(context.Background(), profileFixture(primitive.NewObjectID()))
	assert.ErrorIs(t, err, lib.ErrNotFound)
}

func TestMemoryFindByExperienceIDSpansOwners(t *testing.T) {
	s := NewMemoryStore()

	ownerA := primitive.NewObjectID()
	ownerB := primitive.NewObjectID()
	for _, owner := range []primitive.ObjectID{ownerA, ownerB} {
		_, err := s.Upsert(context.Background(), profileFixture(owner))
		require.NoError(t, err)
	}

	b, err := s.GetByUser(context.Background(), ownerB)
	require.NoError(t, err)
	b.Experience = models.AddEntry(b.Experience, models.Experience{Title: "Engineer", Company: "Acme"})
	saved, err := s.Replace(context.Background(), b)
	require.NoError(t, err)
	entryID := saved.Experience[0].Id

	found, err := s.FindByExperienceID(context.Background(), entryID)
	require.NoError(t, err)
	assert.Equal(t, ownerB, found.User)

	_, err = s.FindByExperienceID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, lib.ErrNotFound)
}

func TestMemoryStoreCopiesOnRead(t *testing.T) {
	s := NewMemoryStore()
	user := primitive.NewObjectID()

	_, err := s.Upsert(context.Background(), profileFixture(user))
	require.NoError(t, err)

	got, err := s.GetByUser(context.Background(), user)
	require.NoError(t, err)
	got.Skills[0] = "mutated"

	again, err := s.GetByUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "go", again.Skills[0], "callers never share slices with the store")
}
