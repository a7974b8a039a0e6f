package mapper

import (
	"cragfeed/internal/application/common"
	"cragfeed/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		HeightCM:  user.HeightCM,
		ReachCM:   user.ReachCM,
		Bio:       user.Bio,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func NewPublicUserResultFromEntity(user *entities.User) *common.PublicUserResult {
	return &common.PublicUserResult{
		ID:        user.ID,
		Username:  user.Username,
		AvatarURL: user.AvatarURL,
	}
}
