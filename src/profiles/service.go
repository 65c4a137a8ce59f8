// Package profiles implements the profile aggregate operations: upsert with
// normalization, the experience/education sub-document protocol, and the
// cascade that removes an owner's dependent records.
package profiles

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/theleywin/Backend-Dev-Connect/src/lib"
	"github.com/theleywin/Backend-Dev-Connect/src/models"
	"github.com/theleywin/Backend-Dev-Connect/src/store"
)

type Service struct {
	profiles store.ProfileStore
	posts    store.PostStore
	users    store.UserStore
	validate *validator.Validate
	log      lib.Logger
}

func NewService(profiles store.ProfileStore, posts store.PostStore, users store.UserStore, log lib.Logger) *Service {
	v := validator.New()
	// Report field errors under their wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Service{
		profiles: profiles,
		posts:    posts,
		users:    users,
		validate: v,
		log:      log,
	}
}

func (s *Service) GetByUser(ctx context.Context, user primitive.ObjectID) (*models.Profile, error) {
	return s.profiles.GetByUser(ctx, user)
}

func (s *Service) GetAll(ctx context.Context) ([]models.Profile, error) {
	return s.profiles.GetAll(ctx)
}

// GetByUserID looks up a profile by the owner's public id string. A malformed
// id is rejected before any lookup, distinct from a missing profile.
func (s *Service) GetByUserID(ctx context.Context, rawID string) (*models.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, lib.ErrInvalidID
	}
	return s.profiles.GetByUser(ctx, oid)
}

// Upsert validates and normalizes the scalar fields, then atomically creates
// or replaces the aggregate for the owner. Existing experience and education
// lists survive an update.
func (s *Service) Upsert(ctx context.Context, user primitive.ObjectID, in ProfileInput) (*models.Profile, error) {
	fields := s.structErrors(in)

	skills := normalizeSkills(in.Skills)
	if len(skills) == 0 {
		fields = append(fields, lib.FieldError{Field: "skills", Message: "skills is required"})
	}

	p := models.Profile{
		User:           user,
		Company:        in.Company,
		Location:       in.Location,
		Status:         in.Status,
		Skills:         skills,
		Bio:            in.Bio,
		GithubUsername: in.GithubUsername,
		UpdatedAt:      time.Now().UTC(),
	}

	links := []struct {
		field string
		raw   string
		dst   *string
	}{
		{"website", in.Website, &p.Website},
		{"youtube", in.Youtube, &p.Social.Youtube},
		{"twitter", in.Twitter, &p.Social.Twitter},
		{"instagram", in.Instagram, &p.Social.Instagram},
		{"linkedin", in.Linkedin, &p.Social.Linkedin},
		{"facebook", in.Facebook, &p.Social.Facebook},
	}
	for _, l := range links {
		normalized, err := lib.NormalizeURL(l.raw)
		if err != nil {
			fields = append(fields, lib.FieldError{Field: l.field, Message: fmt.Sprintf("%s must be a valid URL", l.field)})
			continue
		}
		*l.dst = normalized
	}

	if len(fields) > 0 {
		return nil, lib.NewValidationError(fields...)
	}

	return s.profiles.Upsert(ctx, &p)
}

// AddExperience prepends a new entry to the caller's own aggregate. The
// aggregate must already exist; there is no implicit profile creation here.
func (s *Service) AddExperience(ctx context.Context, user primitive.ObjectID, in ExperienceInput) (*models.Profile, error) {
	fields := s.structErrors(in)
	fields = append(fields, dateErrors(in.From, in.To)...)
	if len(fields) > 0 {
		return nil, lib.NewValidationError(fields...)
	}

	profile, err := s.profiles.GetByUser(ctx, user)
	if err != nil {
		return nil, err
	}

	profile.Experience = models.AddEntry(profile.Experience, in.toModel())
	profile.UpdatedAt = time.Now().UTC()
	return s.profiles.Replace(ctx, profile)
}

// UpdateExperience locates the aggregate containing the entry across all
// owners, not just the caller's. Carried over from the original system as-is;
// see DESIGN.md for the open question around scoping.
func (s *Service) UpdateExperience(ctx context.Context, rawID string, in ExperienceInput) (*models.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, lib.ErrInvalidID
	}

	fields := s.structErrors(in)
	fields = append(fields, dateErrors(in.From, in.To)...)
	if len(fields) > 0 {
		return nil, lib.NewValidationError(fields...)
	}

	profile, err := s.profiles.FindByExperienceID(ctx, oid)
	if err != nil {
		return nil, err
	}

	updated, found := models.UpdateEntryByID(profile.Experience, oid, func(models.Experience) models.Experience {
		return in.toModel()
	})
	if !found {
		return nil, lib.ErrNotFound
	}

	profile.Experience = updated
	profile.UpdatedAt = time.Now().UTC()
	return s.profiles.Replace(ctx, profile)
}

// RemoveExperience drops the entry from the caller's own aggregate. Removing
// an identifier that is not present is a no-op; the aggregate is persisted
// either way.
func (s *Service) RemoveExperience(ctx context.Context, user primitive.ObjectID, rawID string) (*models.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, lib.ErrInvalidID
	}

	profile, err := s.profiles.GetByUser(ctx, user)
	if err != nil {
		return nil, err
	}

	profile.Experience = models.RemoveEntryByID(profile.Experience, oid)
	profile.UpdatedAt = time.Now().UTC()
	return s.profiles.Replace(ctx, profile)
}

func (s *Service) AddEducation(ctx context.Context, user primitive.ObjectID, in EducationInput) (*models.Profile, error) {
	fields := s.structErrors(in)
	fields = append(fields, dateErrors(in.From, in.To)...)
	if len(fields) > 0 {
		return nil, lib.NewValidationError(fields...)
	}

	profile, err := s.profiles.GetByUser(ctx, user)
	if err != nil {
		return nil, err
	}

	profile.Education = models.AddEntry(profile.Education, in.toModel())
	profile.UpdatedAt = time.Now().UTC()
	return s.profiles.Replace(ctx, profile)
}

// UpdateEducation mirrors UpdateExperience, including the cross-owner lookup.
func (s *Service) UpdateEducation(ctx context.Context, rawID string, in EducationInput) (*models.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, lib.ErrInvalidID
	}

	fields := s.structErrors(in)
	fields = append(fields, dateErrors(in.From, in.To)...)
	if len(fields) > 0 {
		return nil, lib.NewValidationError(fields...)
	}

	profile, err := s.profiles.FindByEducationID(ctx, oid)
	if err != nil {
		return nil, err
	}

	updated, found := models.UpdateEntryByID(profile.Education, oid, func(models.Education) models.Education {
		return in.toModel()
	})
	if !found {
		return nil, lib.ErrNotFound
	}

	profile.Education = updated
	profile.UpdatedAt = time.Now().UTC()
	return s.profiles.Replace(ctx, profile)
}

func (s *Service) RemoveEducation(ctx context.Context, user primitive.ObjectID, rawID string) (*models.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, lib.ErrInvalidID
	}

	profile, err := s.profiles.GetByUser(ctx, user)
	if err != nil {
		return nil, err
	}

	profile.Education = models.RemoveEntryByID(profile.Education, oid)
	profile.UpdatedAt = time.Now().UTC()
	return s.profiles.Replace(ctx, profile)
}

// DeleteOwner removes the owner's posts, profile and account record, in that
// order. The sequence is best-effort: a failing step aborts the rest but
// already-completed deletions stay deleted. There is no transaction here.
func (s *Service) DeleteOwner(ctx context.Context, user primitive.ObjectID) error {
	if err := s.posts.DeleteByAuthor(ctx, user); err != nil {
		return err
	}
	if err := s.profiles.DeleteByUser(ctx, user); err != nil {
		return err
	}
	if err := s.users.DeleteByID(ctx, user); err != nil {
		return err
	}

	s.log.Info("owner deleted", zap.String("user", user.Hex()))
	return nil
}

func (s *Service) structErrors(in any) []lib.FieldError {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []lib.FieldError{{Field: "body", Message: "invalid request body"}}
	}

	fields := make([]lib.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, lib.FieldError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("%s is required", fe.Field()),
		})
	}
	return fields
}

func dateErrors(from Date, to *Date) []lib.FieldError {
	var fields []lib.FieldError
	if from.IsZero() {
		fields = append(fields, lib.FieldError{Field: "from", Message: "from date is required"})
	} else if to != nil && !to.IsZero() && !from.Time.Before(to.Time) {
		fields = append(fields, lib.FieldError{Field: "to", Message: "to date must be after from date"})
	}
	return fields
}

func normalizeSkills(raw SkillList) []string {
	skills := make([]string, 0, len(raw))
	for _, s := range raw {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
