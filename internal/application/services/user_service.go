package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"cragfeed/internal/application/command"
	"cragfeed/internal/application/common"
	"cragfeed/internal/application/interfaces"
	"cragfeed/internal/application/mapper"
	"cragfeed/internal/domain"
	"cragfeed/internal/domain/entities"
	"cragfeed/internal/domain/repositories"
	"cragfeed/internal/infrastructure"
	"cragfeed/internal/validation"
)

const profileCacheTTL = 24 * time.Hour

type UserService struct {
	userRepo    repositories.UserRepository
	jwtService  *infrastructure.JWTService
	cache       *infrastructure.RedisService
	authLimiter *infrastructure.RateLimiter
	log         zerolog.Logger
}

func NewUserService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
	cache *infrastructure.RedisService,
	authLimiter *infrastructure.RateLimiter,
	log zerolog.Logger,
) interfaces.UserService {
	return &UserService{
		userRepo:    userRepo,
		jwtService:  jwtService,
		cache:       cache,
		authLimiter: authLimiter,
		log:         log,
	}
}

func (s *UserService) Register(ctx context.Context, cmd *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	if err := validation.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	if !s.authLimiter.Allow("register:" + cmd.Email) {
		return nil, domain.ErrRateLimited
	}

	// Check duplicates before creating. The unique indexes still back
	// this up under a race; the pre-check just yields the clean error.
	if _, err := s.userRepo.FindByEmail(ctx, cmd.Email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if _, err := s.userRepo.FindByUsername(ctx, cmd.Username); err == nil {
		return nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	newUser := entities.NewUser(cmd.Username, cmd.Email, cmd.Password, cmd.AvatarURL)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}
	if err := validatedUser.HashPassword(); err != nil {
		return nil, err
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(createdUser)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("user_id", createdUser.ID).Str("username", createdUser.Username).Msg("user registered")

	return &command.RegisterUserCommandResult{
		User:  mapper.NewUserResultFromEntity(createdUser),
		Token: token,
	}, nil
}

func (s *UserService) Login(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if err := validation.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	if !s.authLimiter.Allow("login:" + cmd.Email) {
		return nil, domain.ErrRateLimited
	}

	user, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := user.CheckPassword(cmd.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{
		User:  mapper.NewUserResultFromEntity(user),
		Token: token,
	}, nil
}

func (s *UserService) GetProfile(ctx context.Context, id int) (*common.UserResult, error) {
	if cached, err := s.cache.GetProfile(ctx, id); err == nil && cached != nil {
		return mapper.NewUserResultFromEntity(cached), nil
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetProfile(ctx, id, user, profileCacheTTL); err != nil {
		s.log.Warn().Err(err).Int("user_id", id).Msg("failed to cache profile")
	}

	return mapper.NewUserResultFromEntity(user), nil
}

func (s *UserService) GetPublicProfile(ctx context.Context, id int) (*common.PublicUserResult, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.NewPublicUserResultFromEntity(user), nil
}
