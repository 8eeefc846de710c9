package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminAuthorName is the display name used for announcements posted by an
// administrator (AuthorID is nil for those rows).
const AdminAuthorName = "Admin"

// Announcement represents a feed entry shown to all logged-in users.
type Announcement struct {
	ID        uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Title     string     `json:"title" gorm:"size:255;not null"`
	Content   string     `json:"content" gorm:"type:text;not null"`
	AuthorID  *uuid.UUID `json:"author_id,omitempty" gorm:"type:char(36);index"`
	Active    bool       `json:"active" gorm:"default:true;index"`
	CreatedAt time.Time  `json:"created_at"`

	// Relations
	Author *Member `json:"-" gorm:"foreignKey:AuthorID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// AuthorName resolves the display name shown next to the announcement.
func (a *Announcement) AuthorName() string {
	if a.AuthorID == nil || a.Author == nil {
		return AdminAuthorName
	}
	return a.Author.FullName
}
