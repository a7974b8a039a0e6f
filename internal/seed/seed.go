// Package seed loads the sample data the app has always shipped with:
// three gyms, three climbers, three sessions spread over three days.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cragfeed/internal/domain"
	"cragfeed/internal/domain/entities"
	"cragfeed/internal/domain/repositories"
)

type sampleUser struct {
	username string
	email    string
	avatar   string
}

type sampleSession struct {
	owner           int // index into the sample users
	location        string
	title           string
	totalSends      int
	routesClimbed   int
	durationMinutes int
	daysAgo         int
}

var (
	sampleGyms = [][2]string{
		{"Movement Santa Clara", "Santa Clara"},
		{"Movement Sunnyvale", "Sunnyvale"},
		{"Movement Berkeley", "Berkeley"},
	}

	sampleUsers = []sampleUser{
		{"alex_climber", "alex@example.com", "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face"},
		{"sarah_sends", "sarah@example.com", "https://images.unsplash.com/photo-1494790108755-2616b612b77c?w=100&h=100&fit=crop&crop=face"},
		{"mike_boulder", "mike@example.com", "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop&crop=face"},
	}

	sampleSessions = []sampleSession{
		{0, "Movement Santa Clara", "Great bouldering session!", 8, 12, 116, 0},
		{1, "Movement Sunnyvale", "Top rope training", 6, 8, 90, 1},
		{2, "Movement Santa Clara", "Quick lunch session", 4, 6, 45, 2},
	}
)

// Load is idempotent: it does nothing when the first sample user already
// exists.
func Load(ctx context.Context, users repositories.UserRepository, gyms repositories.GymRepository, sessions repositories.SessionRepository) error {
	if _, err := users.FindByUsername(ctx, sampleUsers[0].username); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	for _, g := range sampleGyms {
		gym, err := entities.NewGym(g[0], g[1])
		if err != nil {
			return err
		}
		if _, err := gyms.Create(ctx, gym); err != nil {
			return fmt.Errorf("seed gym %s: %w", g[0], err)
		}
	}

	userIDs := make([]int, 0, len(sampleUsers))
	for _, u := range sampleUsers {
		avatar := u.avatar
		user := entities.NewUser(u.username, u.email, "password", &avatar)
		validated, err := entities.NewValidatedUser(user)
		if err != nil {
			return err
		}
		if err := validated.HashPassword(); err != nil {
			return err
		}
		created, err := users.Create(ctx, validated)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
		userIDs = append(userIDs, created.ID)
	}

	for _, s := range sampleSessions {
		session := entities.NewSession(userIDs[s.owner], s.location, s.title, s.totalSends, s.routesClimbed, s.durationMinutes, nil)
		session.CreatedAt = time.Now().AddDate(0, 0, -s.daysAgo)
		validated, err := entities.NewValidatedSession(session)
		if err != nil {
			return err
		}
		if _, err := sessions.Create(ctx, validated); err != nil {
			return fmt.Errorf("seed session %q: %w", s.title, err)
		}
	}

	return nil
}
