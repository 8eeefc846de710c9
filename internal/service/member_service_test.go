package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"clubhub/internal/auth"
	apperrors "clubhub/internal/errors"
	"clubhub/internal/model"
)

func TestMemberService_Profile(t *testing.T) {
	memberID := uuid.New()
	member := &model.Member{ID: memberID, Email: "ann@x.com", FullName: "Ann Example"}

	mockRepo := new(MockMemberRepository)
	mockRepo.On("FindByID", mock.Anything, memberID).Return(member, nil)

	// nil cache client degrades to an always-miss cache
	svc := NewMemberService(mockRepo, nil)
	got, err := svc.Profile(context.Background(), memberID)

	assert.NoError(t, err)
	assert.Equal(t, member, got)
	mockRepo.AssertExpectations(t)
}

func TestMemberService_Profile_NotFound(t *testing.T) {
	memberID := uuid.New()

	mockRepo := new(MockMemberRepository)
	mockRepo.On("FindByID", mock.Anything, memberID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewMemberService(mockRepo, nil)
	got, err := svc.Profile(context.Background(), memberID)

	assert.Equal(t, apperrors.ErrMemberNotFound, err)
	assert.Nil(t, got)
}

func TestMemberService_ListActive(t *testing.T) {
	roster := []model.Member{
		{ID: uuid.New(), FullName: "Ann Example", Email: "ann@x.com", Active: true},
		{ID: uuid.New(), FullName: "Bob Example", Email: "bob@x.co", Active: true},
	}

	tests := []struct {
		name          string
		sess          *auth.Session
		setupMock     func(*MockMemberRepository)
		expectedError error
	}{
		{
			name: "admin sees roster",
			sess: auth.AdminSession(uuid.New()),
			setupMock: func(m *MockMemberRepository) {
				m.On("ListActive", mock.Anything).Return(roster, nil)
			},
		},
		{
			name:          "anonymous rejected",
			sess:          nil,
			setupMock:     func(m *MockMemberRepository) {},
			expectedError: apperrors.ErrNotAuthenticated,
		},
		{
			name:          "member rejected",
			sess:          auth.MemberSession(uuid.New(), "Ann Example"),
			setupMock:     func(m *MockMemberRepository) {},
			expectedError: apperrors.ErrAdminOnly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMemberRepository)
			tt.setupMock(mockRepo)

			svc := NewMemberService(mockRepo, nil)
			members, err := svc.ListActive(context.Background(), tt.sess)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, members)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, roster, members)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
