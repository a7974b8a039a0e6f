package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cragfeed/internal/domain"
	"cragfeed/internal/domain/entities"
	"cragfeed/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userModel := newUserModel(user.GetUser())

	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		return nil, err
	}

	// Read back the created user so defaults and timestamps match the row.
	return r.FindByID(ctx, userModel.ID)
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*entities.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userModel := newUserModel(user.GetUser())

	if err := r.db.WithContext(ctx).Save(userModel).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, userModel.ID)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg interface{}) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return mapUserToEntity(&userModel), nil
}

func newUserModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:        user.ID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		Username:  user.Username,
		Email:     user.Email,
		Password:  user.Password,
		AvatarURL: user.AvatarURL,
		HeightCM:  user.HeightCM,
		ReachCM:   user.ReachCM,
		Bio:       user.Bio,
	}
}

func mapUserToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		ID:        userModel.ID,
		CreatedAt: userModel.CreatedAt,
		UpdatedAt: userModel.UpdatedAt,
		Username:  userModel.Username,
		Email:     userModel.Email,
		Password:  userModel.Password,
		AvatarURL: userModel.AvatarURL,
		HeightCM:  userModel.HeightCM,
		ReachCM:   userModel.ReachCM,
		Bio:       userModel.Bio,
	}
}
