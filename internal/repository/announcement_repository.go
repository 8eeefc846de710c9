package repository

import (
	"context"

	"gorm.io/gorm"

	"clubhub/internal/model"
)

// AnnouncementRepository defines announcement persistence operations.
// Announcements are append-only; there is no update or delete path.
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *model.Announcement) error
	ListActive(ctx context.Context) ([]model.Announcement, error)
}

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository builds a GORM-backed announcement repository.
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *model.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

// ListActive returns active announcements newest first, with the authoring
// member preloaded for display-name resolution.
func (r *announcementRepository) ListActive(ctx context.Context) ([]model.Announcement, error) {
	var announcements []model.Announcement
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}
