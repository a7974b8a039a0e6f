package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"cragfeed/internal/application/command"
	"cragfeed/internal/application/common"
	"cragfeed/internal/application/interfaces"
	"cragfeed/internal/application/mapper"
	"cragfeed/internal/application/query"
	"cragfeed/internal/domain/entities"
	"cragfeed/internal/domain/repositories"
	"cragfeed/internal/infrastructure"
	"cragfeed/internal/validation"
)

// Feed pages are cached briefly; writes bump the feed version instead of
// hunting down every cached page.
const feedCacheTTL = 30 * time.Second

type SessionService struct {
	sessionRepo repositories.SessionRepository
	cache       *infrastructure.RedisService
	events      *infrastructure.EventPublisher
	log         zerolog.Logger
}

func NewSessionService(
	sessionRepo repositories.SessionRepository,
	cache *infrastructure.RedisService,
	events *infrastructure.EventPublisher,
	log zerolog.Logger,
) interfaces.SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		cache:       cache,
		events:      events,
		log:         log,
	}
}

func (s *SessionService) Create(ctx context.Context, ownerID int, cmd *command.CreateSessionCommand) (*command.CreateSessionCommandResult, error) {
	if err := validation.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	session := entities.NewSession(ownerID, cmd.Location, cmd.Title, cmd.TotalSends, cmd.RoutesClimbed, cmd.DurationMinutes, cmd.HardestSend)
	validatedSession, err := entities.NewValidatedSession(session)
	if err != nil {
		return nil, err
	}

	created, err := s.sessionRepo.Create(ctx, validatedSession)
	if err != nil {
		return nil, err
	}

	result := mapper.NewSessionResultFromEntity(created)
	s.cache.BumpFeedVersion(ctx)
	s.events.Publish(infrastructure.SubjectSessionCreated, result)
	s.log.Info().Int("session_id", created.ID).Int("user_id", ownerID).Msg("session created")

	return &command.CreateSessionCommandResult{Session: result}, nil
}

func (s *SessionService) GetByID(ctx context.Context, id int) (*common.SessionResult, error) {
	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.NewSessionResultFromEntity(session), nil
}

func (s *SessionService) Update(ctx context.Context, id, ownerID int, cmd *command.UpdateSessionCommand) (*command.UpdateSessionCommandResult, error) {
	if err := validation.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	update := &repositories.SessionUpdate{
		Location:        cmd.Location,
		Title:           cmd.Title,
		TotalSends:      cmd.TotalSends,
		RoutesClimbed:   cmd.RoutesClimbed,
		DurationMinutes: cmd.DurationMinutes,
		HardestSend:     cmd.HardestSend,
	}

	updated, err := s.sessionRepo.Update(ctx, id, ownerID, update)
	if err != nil {
		return nil, err
	}

	result := mapper.NewSessionResultFromEntity(updated)
	s.cache.BumpFeedVersion(ctx)
	s.events.Publish(infrastructure.SubjectSessionUpdated, result)

	return &command.UpdateSessionCommandResult{Session: result}, nil
}

func (s *SessionService) Delete(ctx context.Context, id, ownerID int) error {
	if err := s.sessionRepo.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.cache.BumpFeedVersion(ctx)
	s.events.Publish(infrastructure.SubjectSessionDeleted, map[string]int{"id": id})
	s.log.Info().Int("session_id", id).Int("user_id", ownerID).Msg("session deleted")

	return nil
}

func (s *SessionService) AttachMedia(ctx context.Context, sessionID, ownerID int, cmd *command.AttachMediaCommand) (*command.AttachMediaCommandResult, error) {
	if err := validation.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	media := entities.NewMedia(sessionID, cmd.URL, entities.MediaType(cmd.Type), cmd.ThumbnailURL, cmd.Duration, cmd.RouteGrade, cmd.RouteColor, cmd.OrderIndex)
	validatedMedia, err := entities.NewValidatedMedia(media)
	if err != nil {
		// The photo/video duration rule crosses fields, so it surfaces
		// here rather than from a struct tag.
		return nil, validation.NewError(err.Error())
	}

	created, err := s.sessionRepo.AttachMedia(ctx, ownerID, validatedMedia)
	if err != nil {
		return nil, err
	}

	s.cache.BumpFeedVersion(ctx)

	return &command.AttachMediaCommandResult{Media: mapper.NewMediaResultFromEntity(created)}, nil
}

func (s *SessionService) Feed(ctx context.Context, q *query.FeedQuery) (*common.FeedResult, error) {
	if err := validation.ValidateStruct(q); err != nil {
		return nil, err
	}

	version := s.cache.FeedVersion(ctx)
	if cached, err := s.cache.GetFeedPage(ctx, version, q.Page, q.Limit); err == nil && cached != nil {
		return cached, nil
	}

	total, err := s.sessionRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.FeedPage(ctx, q.Offset(), q.Limit)
	if err != nil {
		return nil, err
	}

	feed := make([]common.FeedSession, 0, len(sessions))
	for _, session := range sessions {
		feed = append(feed, *mapper.NewFeedSessionFromEntity(session))
	}

	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	result := &common.FeedResult{
		Sessions: feed,
		Pagination: common.Pagination{
			Page:       q.Page,
			TotalPages: totalPages,
			HasMore:    q.Page < totalPages,
		},
	}

	if err := s.cache.SetFeedPage(ctx, version, q.Page, q.Limit, result, feedCacheTTL); err != nil {
		s.log.Warn().Err(err).Int("page", q.Page).Msg("failed to cache feed page")
	}

	return result, nil
}

func (s *SessionService) Timeline(ctx context.Context) ([]common.TimelineSession, error) {
	total, err := s.sessionRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	timeline := make([]common.TimelineSession, 0, total)
	if total == 0 {
		return timeline, nil
	}

	sessions, err := s.sessionRepo.FeedPage(ctx, 0, int(total))
	if err != nil {
		return nil, err
	}

	for _, session := range sessions {
		timeline = append(timeline, *mapper.NewTimelineSessionFromEntity(session))
	}

	return timeline, nil
}
