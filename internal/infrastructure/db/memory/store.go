// Package memory is the disposable development and test double for the
// gorm store. It is single-process and non-durable; a mutex keeps tests
// honest but nothing here is meant for production traffic.
package memory

import (
	"sync"

	"cragfeed/internal/domain/entities"
)

type Store struct {
	mu sync.RWMutex

	users    map[int]*entities.User
	sessions map[int]*entities.Session
	media    map[int][]entities.Media // keyed by session id
	gyms     []*entities.Gym

	nextUserID    int
	nextSessionID int
	nextMediaID   int
	nextGymID     int
}

func NewStore() *Store {
	return &Store{
		users:         make(map[int]*entities.User),
		sessions:      make(map[int]*entities.Session),
		media:         make(map[int][]entities.Media),
		nextUserID:    1,
		nextSessionID: 1,
		nextMediaID:   1,
		nextGymID:     1,
	}
}

func cloneUser(user *entities.User) *entities.User {
	clone := *user
	return &clone
}

func cloneSession(session *entities.Session) *entities.Session {
	clone := *session
	clone.User = nil
	clone.Media = nil
	return &clone
}

func cloneGym(gym *entities.Gym) *entities.Gym {
	clone := *gym
	return &clone
}
