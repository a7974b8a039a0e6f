package entities

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the salt rounds the API has always used for stored
// credentials. Changing it invalidates no existing hashes but new ones
// must stay comparable across deployments.
const bcryptCost = 12

type User struct {
	ID        int
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Email     string
	Password  string // bcrypt hash after HashPassword has run
	AvatarURL *string
	HeightCM  *int
	ReachCM   *int
	Bio       *string
}

func NewUser(username, email, password string, avatarURL *string) *User {
	now := time.Now()
	return &User{
		CreatedAt: now,
		UpdatedAt: now,
		Username:  username,
		Email:     email,
		Password:  password,
		AvatarURL: avatarURL,
	}
}

func (u *User) validate() error {
	if u.Username == "" {
		return errors.New("username must not be empty")
	}
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if !strings.Contains(u.Email, "@") {
		return errors.New("email must be a valid address")
	}
	if u.Password == "" {
		return errors.New("password must not be empty")
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return errors.New("created_at must be before updated_at")
	}
	return nil
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcryptCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

func (u *User) UpdateProfile(avatarURL *string, heightCM, reachCM *int, bio *string) error {
	u.AvatarURL = avatarURL
	u.HeightCM = heightCM
	u.ReachCM = reachCM
	u.Bio = bio
	u.UpdatedAt = time.Now()
	return u.validate()
}
