package mapper

import (
	"cragfeed/internal/application/common"
	"cragfeed/internal/domain/entities"
)

func NewGymResultFromEntity(gym *entities.Gym) *common.GymResult {
	return &common.GymResult{
		ID:        gym.ID,
		Name:      gym.Name,
		Location:  gym.Location,
		CreatedAt: gym.CreatedAt,
	}
}
