package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "budgettracker/internal/errors"
	"budgettracker/internal/models"
)

// sessionService stores login sessions in the database.
type sessionService struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewSessionService creates a new SessionServicer whose sessions live for ttl.
func NewSessionService(db *gorm.DB, ttl time.Duration) SessionServicer {
	return &sessionService{db: db, ttl: ttl, now: time.Now}
}

// Create starts a session. A nil userID creates an anonymous session.
func (s *sessionService) Create(ctx context.Context, userID *string, returnTo string) (*models.Session, error) {
	session := &models.Session{
		UserID:    userID,
		ReturnTo:  returnTo,
		ExpiresAt: s.now().Add(s.ttl).UTC(),
	}
	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return session, nil
}

// Get returns an unexpired session. Expired sessions are removed.
func (s *sessionService) Get(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if session.Expired(s.now()) {
		if err := s.Delete(ctx, session.ID); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrSessionNotFound
	}
	return &session, nil
}

// SetReturnTo records where to send the visitor after login.
func (s *sessionService) SetReturnTo(ctx context.Context, id, returnTo string) error {
	if err := s.db.WithContext(ctx).Model(&models.Session{}).Where("id = ?", id).Update("return_to", returnTo).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (s *sessionService) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Session{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DeleteExpired purges every expired session and reports how many were removed.
func (s *sessionService) DeleteExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("expires_at <= ?", s.now().UTC()).Delete(&models.Session{})
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return result.RowsAffected, nil
}
