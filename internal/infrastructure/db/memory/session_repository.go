package memory

import (
	"context"
	"sort"

	"cragfeed/internal/domain"
	"cragfeed/internal/domain/entities"
	"cragfeed/internal/domain/repositories"
)

type SessionRepository struct {
	store *Store
}

func NewSessionRepository(store *Store) repositories.SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) Create(ctx context.Context, session *entities.ValidatedSession) (*entities.Session, error) {
	s := r.store
	s.mu.Lock()

	if _, ok := s.users[session.GetSession().UserID]; !ok {
		s.mu.Unlock()
		return nil, domain.ErrNotFound
	}

	stored := cloneSession(session.GetSession())
	stored.ID = s.nextSessionID
	s.nextSessionID++
	s.sessions[stored.ID] = stored
	id := stored.ID
	s.mu.Unlock()

	return r.FindByID(ctx, id)
}

func (r *SessionRepository) FindByID(ctx context.Context, id int) (*entities.Session, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s.denormalize(session), nil
}

func (r *SessionRepository) FeedPage(ctx context.Context, offset, limit int) ([]*entities.Session, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ordered := make([]*entities.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		ordered = append(ordered, session)
	}

	// Newest first; id descending breaks creation-time ties.
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
		}
		return ordered[i].ID > ordered[j].ID
	})

	if offset >= len(ordered) {
		return []*entities.Session{}, nil
	}
	end := offset + limit
	if end > len(ordered) {
		end = len(ordered)
	}

	page := make([]*entities.Session, 0, end-offset)
	for _, session := range ordered[offset:end] {
		page = append(page, s.denormalize(session))
	}
	return page, nil
}

func (r *SessionRepository) Count(ctx context.Context) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.sessions)), nil
}

func (r *SessionRepository) Update(ctx context.Context, id, ownerID int, update *repositories.SessionUpdate) (*entities.Session, error) {
	s := r.store
	s.mu.Lock()

	session, ok := s.sessions[id]
	if !ok || session.UserID != ownerID {
		s.mu.Unlock()
		return nil, domain.ErrNotFound
	}

	if update.Location != nil {
		session.Location = *update.Location
	}
	if update.Title != nil {
		session.Title = *update.Title
	}
	if update.TotalSends != nil {
		session.TotalSends = *update.TotalSends
	}
	if update.RoutesClimbed != nil {
		session.RoutesClimbed = *update.RoutesClimbed
	}
	if update.DurationMinutes != nil {
		session.DurationMinutes = *update.DurationMinutes
	}
	if update.HardestSend != nil {
		session.HardestSend = update.HardestSend
	}
	s.mu.Unlock()

	return r.FindByID(ctx, id)
}

func (r *SessionRepository) Delete(ctx context.Context, id, ownerID int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok || session.UserID != ownerID {
		return domain.ErrNotFound
	}

	delete(s.sessions, id)
	delete(s.media, id)
	return nil
}

func (r *SessionRepository) AttachMedia(ctx context.Context, ownerID int, media *entities.ValidatedMedia) (*entities.Media, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	mediaEntity := media.GetMedia()
	session, ok := s.sessions[mediaEntity.SessionID]
	if !ok || session.UserID != ownerID {
		return nil, domain.ErrNotFound
	}

	stored := *mediaEntity
	stored.ID = s.nextMediaID
	s.nextMediaID++
	s.media[stored.SessionID] = append(s.media[stored.SessionID], stored)

	return &stored, nil
}

// denormalize attaches the owning user and the order-index-sorted media
// list. Callers must hold at least a read lock.
func (s *Store) denormalize(session *entities.Session) *entities.Session {
	result := cloneSession(session)

	if user, ok := s.users[session.UserID]; ok {
		result.User = cloneUser(user)
	}

	media := append([]entities.Media(nil), s.media[session.ID]...)
	sort.SliceStable(media, func(i, j int) bool {
		return media[i].OrderIndex < media[j].OrderIndex
	})
	result.Media = media

	return result
}
