package postgres

import (
	"context"

	"gorm.io/gorm"

	"cragfeed/internal/domain/entities"
	"cragfeed/internal/domain/repositories"
)

type GymRepository struct {
	db *gorm.DB
}

func NewGymRepository(db *gorm.DB) repositories.GymRepository {
	return &GymRepository{db: db}
}

func (r *GymRepository) Create(ctx context.Context, gym *entities.Gym) (*entities.Gym, error) {
	gymModel := &GymModel{
		Name:      gym.Name,
		Location:  gym.Location,
		CreatedAt: gym.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(gymModel).Error; err != nil {
		return nil, err
	}

	return mapGymToEntity(gymModel), nil
}

func (r *GymRepository) List(ctx context.Context) ([]*entities.Gym, error) {
	var gymModels []GymModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&gymModels).Error; err != nil {
		return nil, err
	}

	gyms := make([]*entities.Gym, 0, len(gymModels))
	for i := range gymModels {
		gyms = append(gyms, mapGymToEntity(&gymModels[i]))
	}
	return gyms, nil
}

func mapGymToEntity(gymModel *GymModel) *entities.Gym {
	return &entities.Gym{
		ID:        gymModel.ID,
		Name:      gymModel.Name,
		Location:  gymModel.Location,
		CreatedAt: gymModel.CreatedAt,
	}
}
