package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub/internal/auth"
	"clubhub/internal/cache"
	apperrors "clubhub/internal/errors"
	"clubhub/internal/model"
	"clubhub/internal/repository"
)

const memberCacheTTL = 5 * time.Minute

// MemberService exposes profile and roster reads.
type MemberService interface {
	Profile(ctx context.Context, memberID uuid.UUID) (*model.Member, error)
	ListActive(ctx context.Context, sess *auth.Session) ([]model.Member, error)
}

type memberService struct {
	repo  repository.MemberRepository
	cache *cache.Client
}

// NewMemberService builds a MemberService with repository and cache.
func NewMemberService(repo repository.MemberRepository, cache *cache.Client) MemberService {
	return &memberService{repo: repo, cache: cache}
}

func (s *memberService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("member:%s", id)
}

// Profile returns the member's own record, cache-aside with a short TTL.
func (s *memberService) Profile(ctx context.Context, memberID uuid.UUID) (*model.Member, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(memberID)); data != nil {
		var cached model.Member
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	member, err := s.repo.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}

	if payload, err := json.Marshal(member); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(memberID), payload, memberCacheTTL)
	}
	return member, nil
}

// ListActive returns active members newest first. The roster is an
// administrative view, so the admin gate sits in the service.
func (s *memberService) ListActive(ctx context.Context, sess *auth.Session) ([]model.Member, error) {
	if sess == nil {
		return nil, apperrors.ErrNotAuthenticated
	}
	if !sess.IsAdmin {
		return nil, apperrors.ErrAdminOnly
	}

	members, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}
