package entities

import (
	"errors"
	"time"
)

type Gym struct {
	ID        int
	Name      string
	Location  string
	CreatedAt time.Time
}

func NewGym(name, location string) (*Gym, error) {
	if name == "" {
		return nil, errors.New("name must not be empty")
	}
	if location == "" {
		return nil, errors.New("location must not be empty")
	}
	return &Gym{Name: name, Location: location, CreatedAt: time.Now()}, nil
}
