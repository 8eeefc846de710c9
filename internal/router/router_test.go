package router

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"clubhub/internal/auth"
	"clubhub/internal/config"
	"clubhub/internal/handler"
	"clubhub/internal/model"
	"clubhub/internal/service"
)

// memorySessionStore is an in-memory SessionStoreInterface for router tests.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*auth.Session
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]*auth.Session)}
}

func (s *memorySessionStore) StoreSession(ctx context.Context, sessionID string, sess *auth.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = sess
	return nil
}

func (s *memorySessionStore) GetSession(ctx context.Context, sessionID string) (*auth.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session not found")
	}
	return sess, nil
}

func (s *memorySessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// stubIdentityService wires logout through the session store; the gated
// routes under test never register or login through the service.
type stubIdentityService struct {
	store auth.SessionStoreInterface
}

func (s *stubIdentityService) Register(ctx context.Context, input service.RegisterInput) (*model.Member, error) {
	return nil, service.ErrEmailTaken
}

func (s *stubIdentityService) Login(ctx context.Context, email, password string) (string, *auth.Session, error) {
	return "", nil, service.ErrInvalidCredentials
}

func (s *stubIdentityService) Logout(ctx context.Context, sessionID string) error {
	return s.store.DeleteSession(ctx, sessionID)
}

type stubAnnouncementService struct{}

func (s *stubAnnouncementService) List(ctx context.Context) ([]model.Announcement, error) {
	return []model.Announcement{}, nil
}

func (s *stubAnnouncementService) Create(ctx context.Context, sess *auth.Session, title, content string) (*model.Announcement, error) {
	return &model.Announcement{ID: uuid.New(), Title: title, Content: content, Active: true}, nil
}

type stubMemberService struct{}

func (s *stubMemberService) Profile(ctx context.Context, memberID uuid.UUID) (*model.Member, error) {
	return &model.Member{ID: memberID, FullName: "Ann Example"}, nil
}

func (s *stubMemberService) ListActive(ctx context.Context, sess *auth.Session) ([]model.Member, error) {
	return []model.Member{}, nil
}

func newTestRouter() (*echo.Echo, *auth.SessionService, *memorySessionStore) {
	cfg := &config.Config{SessionSecret: "test-secret"}
	sessions := auth.NewSessionService(cfg.SessionSecret)
	store := newMemorySessionStore()

	e := echo.New()
	Register(
		e,
		cfg,
		sessions,
		store,
		handler.NewAuthHandler(&stubIdentityService{store: store}),
		handler.NewAnnouncementHandler(&stubAnnouncementService{}),
		handler.NewMemberHandler(&stubMemberService{}),
	)
	return e, sessions, store
}

func establishSession(t *testing.T, sessions *auth.SessionService, store *memorySessionStore, sess *auth.Session) string {
	t.Helper()
	sessionID, token, err := sessions.IssueToken(sess)
	assert.NoError(t, err)
	assert.NoError(t, store.StoreSession(context.Background(), sessionID, sess, auth.SessionTTL))
	return token
}

func doRequest(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_BearerTokenAccepted(t *testing.T) {
	e, sessions, store := newTestRouter()
	token := establishSession(t, sessions, store, auth.MemberSession(uuid.New(), "Ann Example"))

	rec := doRequest(e, http.MethodGet, "/api/announcements", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AdminRoutesWithBearerToken(t *testing.T) {
	e, sessions, store := newTestRouter()
	token := establishSession(t, sessions, store, auth.AdminSession(uuid.New()))

	rec := doRequest(e, http.MethodPost, "/api/announcements", token, `{"title":"Hack Night","content":"Friday 6pm."}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/members", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_MissingToken(t *testing.T) {
	e, _, _ := newTestRouter()

	rec := doRequest(e, http.MethodGet, "/api/announcements", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ForgedTokenRejected(t *testing.T) {
	e, _, store := newTestRouter()
	forger := auth.NewSessionService("other-secret")
	sess := auth.MemberSession(uuid.New(), "Ann Example")
	sessionID, token, err := forger.IssueToken(sess)
	assert.NoError(t, err)
	assert.NoError(t, store.StoreSession(context.Background(), sessionID, sess, auth.SessionTTL))

	rec := doRequest(e, http.MethodGet, "/api/announcements", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_LogoutRevokesSession(t *testing.T) {
	e, sessions, store := newTestRouter()
	token := establishSession(t, sessions, store, auth.AdminSession(uuid.New()))

	rec := doRequest(e, http.MethodGet, "/api/announcements", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/auth/logout", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// The token still has a valid signature, but its session is gone.
	rec = doRequest(e, http.MethodGet, "/api/announcements", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_REVOKED")

	rec = doRequest(e, http.MethodGet, "/api/members", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_MemberForbiddenOnAdminRoutes(t *testing.T) {
	e, sessions, store := newTestRouter()
	token := establishSession(t, sessions, store, auth.MemberSession(uuid.New(), "Ann Example"))

	rec := doRequest(e, http.MethodPost, "/api/announcements", token, `{"title":"Hack Night","content":"Friday 6pm."}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "ADMIN_ONLY")

	rec = doRequest(e, http.MethodGet, "/api/members", token, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
