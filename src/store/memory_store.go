package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/Backend-Dev-Connect/src/lib"
	"github.com/theleywin/Backend-Dev-Connect/src/models"
)

// MemoryStore is the in-memory implementation of all three store interfaces,
// used by tests. Aggregates are copied on the way in and out so callers never
// share slices with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[primitive.ObjectID]models.Profile // keyed by owner identity
	users    map[primitive.ObjectID]models.User
	posts    map[primitive.ObjectID]models.Post
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[primitive.ObjectID]models.Profile),
		users:    make(map[primitive.ObjectID]models.User),
		posts:    make(map[primitive.ObjectID]models.Post),
	}
}

func (s *MemoryStore) GetByUser(ctx context.Context, user primitive.ObjectID) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[user]
	if !ok {
		return nil, lib.ErrNotFound
	}
	out := cloneProfile(p)
	return &out, nil
}

func (s *MemoryStore) GetAll(ctx context.Context) ([]models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profiles := make([]models.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		profiles = append(profiles, cloneProfile(p))
	}
	return profiles, nil
}

func (s *MemoryStore) Upsert(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneProfile(*p)
	if existing, ok := s.profiles[p.User]; ok {
		stored.Id = existing.Id
		stored.CreatedAt = existing.CreatedAt
		stored.Experience = existing.Experience
		stored.Education = existing.Education
	} else {
		stored.Id = primitive.NewObjectID()
		stored.CreatedAt = stored.UpdatedAt
		stored.Experience = []models.Experience{}
		stored.Education = []models.Education{}
	}
	s.profiles[p.User] = stored

	out := cloneProfile(stored)
	return &out, nil
}

func (s *MemoryStore) Replace(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.profiles[p.User]
	if !ok {
		return nil, lib.ErrNotFound
	}

	stored := cloneProfile(*p)
	stored.Id = existing.Id
	s.profiles[p.User] = stored

	out := cloneProfile(stored)
	return &out, nil
}

func (s *MemoryStore) FindByExperienceID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.profiles {
		for _, e := range p.Experience {
			if e.Id == id {
				out := cloneProfile(p)
				return &out, nil
			}
		}
	}
	return nil, lib.ErrNotFound
}

func (s *MemoryStore) FindByEducationID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.profiles {
		for _, e := range p.Education {
			if e.Id == id {
				out := cloneProfile(p)
				return &out, nil
			}
		}
	}
	return nil, lib.ErrNotFound
}

func (s *MemoryStore) DeleteByUser(ctx context.Context, user primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.profiles, user)
	return nil
}

func (s *MemoryStore) DeleteByAuthor(ctx context.Context, user primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, post := range s.posts {
		if post.User == user {
			delete(s.posts, id)
		}
	}
	return nil
}

func (s *MemoryStore) Create(ctx context.Context, u *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *u
	if stored.Id.IsZero() {
		stored.Id = primitive.NewObjectID()
	}
	s.users[stored.Id] = stored

	out := stored
	return &out, nil
}

func (s *MemoryStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, lib.ErrNotFound
}

func (s *MemoryStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, lib.ErrNotFound
	}
	out := u
	return &out, nil
}

func (s *MemoryStore) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, id)
	return nil
}

// AddPost seeds a post record. Only tests exercise this; the profile core
// never creates posts, it only deletes them during a cascade.
func (s *MemoryStore) AddPost(p models.Post) primitive.ObjectID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Id.IsZero() {
		p.Id = primitive.NewObjectID()
	}
	s.posts[p.Id] = p
	return p.Id
}

// CountPostsByAuthor reports how many posts an author still has. Test helper.
func (s *MemoryStore) CountPostsByAuthor(user primitive.ObjectID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, post := range s.posts {
		if post.User == user {
			n++
		}
	}
	return n
}

func cloneProfile(p models.Profile) models.Profile {
	out := p
	out.Skills = append([]string(nil), p.Skills...)
	out.Experience = append([]models.Experience(nil), p.Experience...)
	out.Education = append([]models.Education(nil), p.Education...)
	return out
}
