package repositories

import (
	"context"

	"cragfeed/internal/domain/entities"
)

type GymRepository interface {
	Create(ctx context.Context, gym *entities.Gym) (*entities.Gym, error)
	List(ctx context.Context) ([]*entities.Gym, error)
}
