package services

import (
	"context"

	"cragfeed/internal/application/command"
	"cragfeed/internal/application/common"
	"cragfeed/internal/application/interfaces"
	"cragfeed/internal/application/mapper"
	"cragfeed/internal/domain/entities"
	"cragfeed/internal/domain/repositories"
	"cragfeed/internal/validation"
)

type GymService struct {
	gymRepo repositories.GymRepository
}

func NewGymService(gymRepo repositories.GymRepository) interfaces.GymService {
	return &GymService{gymRepo: gymRepo}
}

func (s *GymService) Create(ctx context.Context, cmd *command.CreateGymCommand) (*command.CreateGymCommandResult, error) {
	if err := validation.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	gym, err := entities.NewGym(cmd.Name, cmd.Location)
	if err != nil {
		return nil, err
	}

	created, err := s.gymRepo.Create(ctx, gym)
	if err != nil {
		return nil, err
	}

	return &command.CreateGymCommandResult{Gym: mapper.NewGymResultFromEntity(created)}, nil
}

func (s *GymService) List(ctx context.Context) ([]common.GymResult, error) {
	gyms, err := s.gymRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]common.GymResult, 0, len(gyms))
	for _, gym := range gyms {
		results = append(results, *mapper.NewGymResultFromEntity(gym))
	}
	return results, nil
}
