package memory

import (
	"context"

	"cragfeed/internal/domain/entities"
	"cragfeed/internal/domain/repositories"
)

type GymRepository struct {
	store *Store
}

func NewGymRepository(store *Store) repositories.GymRepository {
	return &GymRepository{store: store}
}

func (r *GymRepository) Create(ctx context.Context, gym *entities.Gym) (*entities.Gym, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneGym(gym)
	stored.ID = s.nextGymID
	s.nextGymID++
	s.gyms = append(s.gyms, stored)

	return cloneGym(stored), nil
}

func (r *GymRepository) List(ctx context.Context) ([]*entities.Gym, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	gyms := make([]*entities.Gym, 0, len(s.gyms))
	for _, gym := range s.gyms {
		gyms = append(gyms, cloneGym(gym))
	}
	return gyms, nil
}
