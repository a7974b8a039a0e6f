package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cragfeed/internal/domain"
	"cragfeed/internal/domain/entities"
	"cragfeed/internal/domain/repositories"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) repositories.SessionRepository {
	return &SessionRepository{db: db}
}

// withAssociations preloads the owning user and the media list in display
// order, so every read comes back fully denormalized.
func (r *SessionRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		})
}

func (r *SessionRepository) Create(ctx context.Context, session *entities.ValidatedSession) (*entities.Session, error) {
	sessionModel := newSessionModel(session.GetSession())

	if err := r.db.WithContext(ctx).Create(sessionModel).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, sessionModel.ID)
}

func (r *SessionRepository) FindByID(ctx context.Context, id int) (*entities.Session, error) {
	var sessionModel SessionModel
	if err := r.withAssociations(ctx).Where("id = ?", id).First(&sessionModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return mapSessionToEntity(&sessionModel), nil
}

func (r *SessionRepository) FeedPage(ctx context.Context, offset, limit int) ([]*entities.Session, error) {
	var sessionModels []SessionModel
	err := r.withAssociations(ctx).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&sessionModels).Error
	if err != nil {
		return nil, err
	}

	sessions := make([]*entities.Session, 0, len(sessionModels))
	for i := range sessionModels {
		sessions = append(sessions, mapSessionToEntity(&sessionModels[i]))
	}
	return sessions, nil
}

func (r *SessionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&SessionModel{}).Count(&count).Error
	return count, err
}

func (r *SessionRepository) Update(ctx context.Context, id, ownerID int, update *repositories.SessionUpdate) (*entities.Session, error) {
	values := map[string]interface{}{}
	if update.Location != nil {
		values["location"] = *update.Location
	}
	if update.Title != nil {
		values["title"] = *update.Title
	}
	if update.TotalSends != nil {
		values["total_sends"] = *update.TotalSends
	}
	if update.RoutesClimbed != nil {
		values["routes_climbed"] = *update.RoutesClimbed
	}
	if update.DurationMinutes != nil {
		values["duration_minutes"] = *update.DurationMinutes
	}
	if update.HardestSend != nil {
		values["hardest_send"] = *update.HardestSend
	}

	// Scoping by owner in the WHERE clause keeps "not yours" and "does
	// not exist" indistinguishable.
	owned := r.db.WithContext(ctx).Model(&SessionModel{}).Where("id = ? AND user_id = ?", id, ownerID)

	if len(values) == 0 {
		var count int64
		if err := owned.Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, domain.ErrNotFound
		}
		return r.FindByID(ctx, id)
	}

	result := owned.Updates(values)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *SessionRepository) Delete(ctx context.Context, id, ownerID int) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&SessionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	// Media rows go with the session via the ON DELETE CASCADE constraint.
	return nil
}

func (r *SessionRepository) AttachMedia(ctx context.Context, ownerID int, media *entities.ValidatedMedia) (*entities.Media, error) {
	mediaEntity := media.GetMedia()

	var count int64
	err := r.db.WithContext(ctx).Model(&SessionModel{}).
		Where("id = ? AND user_id = ?", mediaEntity.SessionID, ownerID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, domain.ErrNotFound
	}

	mediaModel := newMediaModel(mediaEntity)
	if err := r.db.WithContext(ctx).Create(mediaModel).Error; err != nil {
		return nil, err
	}

	created := mapMediaToEntity(mediaModel)
	return &created, nil
}

func newSessionModel(session *entities.Session) *SessionModel {
	return &SessionModel{
		ID:              session.ID,
		UserID:          session.UserID,
		Location:        session.Location,
		Title:           session.Title,
		TotalSends:      session.TotalSends,
		RoutesClimbed:   session.RoutesClimbed,
		DurationMinutes: session.DurationMinutes,
		HardestSend:     session.HardestSend,
		CreatedAt:       session.CreatedAt,
	}
}

func newMediaModel(media *entities.Media) *MediaModel {
	return &MediaModel{
		ID:              media.ID,
		SessionID:       media.SessionID,
		URL:             media.URL,
		Type:            string(media.Type),
		ThumbnailURL:    media.ThumbnailURL,
		DurationSeconds: media.DurationSeconds,
		RouteGrade:      media.RouteGrade,
		RouteColor:      media.RouteColor,
		OrderIndex:      media.OrderIndex,
		CreatedAt:       media.CreatedAt,
	}
}

func mapSessionToEntity(sessionModel *SessionModel) *entities.Session {
	session := &entities.Session{
		ID:              sessionModel.ID,
		UserID:          sessionModel.UserID,
		Location:        sessionModel.Location,
		Title:           sessionModel.Title,
		TotalSends:      sessionModel.TotalSends,
		RoutesClimbed:   sessionModel.RoutesClimbed,
		DurationMinutes: sessionModel.DurationMinutes,
		HardestSend:     sessionModel.HardestSend,
		CreatedAt:       sessionModel.CreatedAt,
		User:            mapUserToEntity(&sessionModel.User),
	}
	for i := range sessionModel.Media {
		session.Media = append(session.Media, mapMediaToEntity(&sessionModel.Media[i]))
	}
	return session
}

func mapMediaToEntity(mediaModel *MediaModel) entities.Media {
	return entities.Media{
		ID:              mediaModel.ID,
		SessionID:       mediaModel.SessionID,
		URL:             mediaModel.URL,
		Type:            entities.MediaType(mediaModel.Type),
		ThumbnailURL:    mediaModel.ThumbnailURL,
		DurationSeconds: mediaModel.DurationSeconds,
		RouteGrade:      mediaModel.RouteGrade,
		RouteColor:      mediaModel.RouteColor,
		OrderIndex:      mediaModel.OrderIndex,
		CreatedAt:       mediaModel.CreatedAt,
	}
}
