package entities

import (
	"errors"
	"time"
)

type Session struct {
	ID              int
	UserID          int
	Location        string
	Title           string
	TotalSends      int
	RoutesClimbed   int
	DurationMinutes int
	HardestSend     *string
	CreatedAt       time.Time

	// Denormalized on reads: the owning user and the attached media in
	// display order. Nil / empty on writes.
	User  *User
	Media []Media
}

func NewSession(userID int, location, title string, totalSends, routesClimbed, durationMinutes int, hardestSend *string) *Session {
	return &Session{
		UserID:          userID,
		Location:        location,
		Title:           title,
		TotalSends:      totalSends,
		RoutesClimbed:   routesClimbed,
		DurationMinutes: durationMinutes,
		HardestSend:     hardestSend,
		CreatedAt:       time.Now(),
	}
}

func (s *Session) validate() error {
	if s.UserID <= 0 {
		return errors.New("session must have an owning user")
	}
	if s.Location == "" {
		return errors.New("location must not be empty")
	}
	if s.Title == "" {
		return errors.New("title must not be empty")
	}
	if s.TotalSends < 0 {
		return errors.New("total sends must not be negative")
	}
	if s.RoutesClimbed < 0 {
		return errors.New("routes climbed must not be negative")
	}
	if s.DurationMinutes < 1 {
		return errors.New("duration must be at least one minute")
	}
	return nil
}
