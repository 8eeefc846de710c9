package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"clubhub/internal/auth"
	apperrors "clubhub/internal/errors"
	"clubhub/internal/model"
	"clubhub/internal/repository"
	"clubhub/internal/validation"
)

var (
	// ErrEmailTaken is returned when registering with an already-used email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// One message for both cases, so login cannot be used to probe which
	// emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FullName    string
	Email       string
	Phone       *string
	StudentID   *string
	YearOfStudy int
	Branch      string
	Skills      string
	Password    string
}

// IdentityService handles registration, login and logout.
type IdentityService interface {
	Register(ctx context.Context, input RegisterInput) (*model.Member, error)
	Login(ctx context.Context, email, password string) (token string, sess *auth.Session, err error)
	Logout(ctx context.Context, sessionID string) error
}

type identityService struct {
	memberRepo   repository.MemberRepository
	adminRepo    repository.AdminRepository
	sessions     *auth.SessionService
	sessionStore auth.SessionStoreInterface
}

// NewIdentityService creates a new identity service.
func NewIdentityService(
	memberRepo repository.MemberRepository,
	adminRepo repository.AdminRepository,
	sessions *auth.SessionService,
	sessionStore auth.SessionStoreInterface,
) IdentityService {
	return &identityService{
		memberRepo:   memberRepo,
		adminRepo:    adminRepo,
		sessions:     sessions,
		sessionStore: sessionStore,
	}
}

// Register validates the input, hashes the password and inserts the member.
// It never establishes a session; login stays a separate step.
func (s *identityService) Register(ctx context.Context, input RegisterInput) (*model.Member, error) {
	if input.FullName == "" || input.Email == "" || input.Password == "" {
		return nil, apperrors.ErrMissingFields
	}
	if !validation.ValidPassword(input.Password) {
		return nil, apperrors.ErrPasswordTooShort
	}
	if !validation.ValidEmail(input.Email) {
		return nil, apperrors.ErrInvalidEmail
	}

	existing, err := s.memberRepo.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check member existence: %w", err)
	}

	passwordHash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	member := &model.Member{
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		StudentID:    input.StudentID,
		YearOfStudy:  input.YearOfStudy,
		Branch:       input.Branch,
		Skills:       input.Skills,
		PasswordHash: passwordHash,
		Active:       true,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		// The unique index on email closes the race between the existence
		// check above and this insert.
		if repository.IsDuplicateEntry(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create member: %w", err)
	}

	return member, nil
}

// Login authenticates against the member table first, then the admin table.
// A member and an admin sharing an email resolve to the member; the tables
// keep disjoint identity spaces and only share the verification scheme.
func (s *identityService) Login(ctx context.Context, email, password string) (string, *auth.Session, error) {
	sess, err := s.authenticate(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	sessionID, token, err := s.sessions.IssueToken(sess)
	if err != nil {
		return "", nil, fmt.Errorf("issue session token: %w", err)
	}
	if err := s.sessionStore.StoreSession(ctx, sessionID, sess, auth.SessionTTL); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}

	return token, sess, nil
}

func (s *identityService) authenticate(ctx context.Context, email, password string) (*auth.Session, error) {
	member, err := s.memberRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup member: %w", err)
	}
	if member != nil && auth.CheckPassword(password, member.PasswordHash) {
		return auth.MemberSession(member.ID, member.FullName), nil
	}

	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup admin: %w", err)
	}
	if admin != nil && auth.CheckPassword(password, admin.PasswordHash) {
		return auth.AdminSession(admin.ID), nil
	}

	return nil, ErrInvalidCredentials
}

// Logout revokes the session unconditionally.
func (s *identityService) Logout(ctx context.Context, sessionID string) error {
	return s.sessionStore.DeleteSession(ctx, sessionID)
}
