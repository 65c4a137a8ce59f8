// Package store owns persistence for the profile aggregate and the records it
// cascades over. Handlers and services depend on the interfaces here, never on
// a concrete database handle, so tests run against the in-memory implementation.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/Backend-Dev-Connect/src/models"
)

// ProfileStore holds the single-aggregate-per-owner invariant.
type ProfileStore interface {
	GetByUser(ctx context.Context, user primitive.ObjectID) (*models.Profile, error)
	GetAll(ctx context.Context) ([]models.Profile, error)

	// Upsert atomically creates or replaces the scalar fields of the
	// aggregate keyed on the owner identity. The embedded experience and
	// education lists and the creation timestamp survive an update; two
	// concurrent upserts for the same owner never interleave field by field.
	Upsert(ctx context.Context, p *models.Profile) (*models.Profile, error)

	// Replace saves back a previously loaded aggregate, whole document,
	// keyed on the owner. Fails with ErrNotFound if the aggregate is gone.
	Replace(ctx context.Context, p *models.Profile) (*models.Profile, error)

	// FindByExperienceID and FindByEducationID locate the aggregate whose
	// embedded list contains the given entry, across all owners.
	FindByExperienceID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error)
	FindByEducationID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error)

	DeleteByUser(ctx context.Context, user primitive.ObjectID) error
}

type PostStore interface {
	DeleteByAuthor(ctx context.Context, user primitive.ObjectID) error
}

type UserStore interface {
	Create(ctx context.Context, u *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}
