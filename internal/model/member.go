package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Member represents a registered club member.
type Member struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	FullName     string    `json:"full_name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone        *string   `json:"phone,omitempty" gorm:"size:32"`
	StudentID    *string   `json:"student_id,omitempty" gorm:"size:64"`
	YearOfStudy  int       `json:"year_of_study" gorm:"not null;default:1"`
	Branch       string    `json:"branch" gorm:"size:128"`
	Skills       string    `json:"skills" gorm:"type:text"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Active       bool      `json:"active" gorm:"default:true;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
