package memory

import (
	"context"

	"cragfeed/internal/domain"
	"cragfeed/internal/domain/entities"
	"cragfeed/internal/domain/repositories"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) repositories.UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneUser(user.GetUser())
	stored.ID = s.nextUserID
	s.nextUserID++
	s.users[stored.ID] = stored

	return cloneUser(stored), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*entities.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(user), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findBy(func(u *entities.User) bool { return u.Email == email })
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findBy(func(u *entities.User) bool { return u.Username == username })
}

func (r *UserRepository) Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := user.GetUser()
	if _, ok := s.users[updated.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	s.users[updated.ID] = cloneUser(updated)

	return cloneUser(updated), nil
}

func (r *UserRepository) findBy(match func(*entities.User) bool) (*entities.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if match(user) {
			return cloneUser(user), nil
		}
	}
	return nil, domain.ErrNotFound
}
