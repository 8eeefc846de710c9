package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"clubhub/internal/auth"
	apperrors "clubhub/internal/errors"
	"clubhub/internal/model"
	"clubhub/internal/repository"
)

// AnnouncementService exposes the announcement feed.
type AnnouncementService interface {
	List(ctx context.Context) ([]model.Announcement, error)
	Create(ctx context.Context, sess *auth.Session, title, content string) (*model.Announcement, error)
}

type announcementService struct {
	repo repository.AnnouncementRepository
}

// NewAnnouncementService creates a new announcement service.
func NewAnnouncementService(repo repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{repo: repo}
}

// List returns active announcements newest first. Each call is a fresh
// snapshot from the store.
func (s *announcementService) List(ctx context.Context) ([]model.Announcement, error) {
	announcements, err := s.repo.ListActive(ctx)
	if err != nil {
		return []model.Announcement{}, fmt.Errorf("list announcements: %w", err)
	}
	return announcements, nil
}

// Create posts a new announcement. The role check lives here rather than in
// the router, so the restriction holds regardless of caller discipline.
// Author attribution follows the session: admin posts carry no author
// reference and render as "Admin".
func (s *announcementService) Create(ctx context.Context, sess *auth.Session, title, content string) (*model.Announcement, error) {
	if sess == nil {
		return nil, apperrors.ErrNotAuthenticated
	}
	if !sess.IsAdmin {
		return nil, apperrors.ErrAdminOnly
	}
	if title == "" || content == "" {
		return nil, apperrors.ErrEmptyAnnouncement
	}

	announcement := &model.Announcement{
		Title:    title,
		Content:  content,
		AuthorID: authorRef(sess),
		Active:   true,
	}
	if err := s.repo.Create(ctx, announcement); err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}
	return announcement, nil
}

// authorRef resolves announcement attribution from the acting session:
// member sessions carry their own id, admin posts keep a nil author and
// render under the admin label.
func authorRef(sess *auth.Session) *uuid.UUID {
	if sess.IsAdmin {
		return nil
	}
	return &sess.PrincipalID
}
