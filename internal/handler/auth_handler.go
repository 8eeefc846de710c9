package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clubhub/internal/auth"
	apperrors "clubhub/internal/errors"
	"clubhub/internal/service"
)

// AuthHandler handles registration, login and logout endpoints.
type AuthHandler struct {
	identityService service.IdentityService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(identityService service.IdentityService) *AuthHandler {
	return &AuthHandler{identityService: identityService}
}

// RegisterRequest represents a member registration request.
type RegisterRequest struct {
	FullName    string  `json:"full_name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone,omitempty"`
	StudentID   *string `json:"student_id,omitempty"`
	YearOfStudy int     `json:"year_of_study" validate:"required,min=1,max=5"`
	Branch      string  `json:"branch"`
	Skills      string  `json:"skills"`
	Password    string  `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents a successful login.
type AuthResponse struct {
	Token       string `json:"token"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
}

// currentSession returns the session placed in the context by the session
// middleware, or nil for anonymous requests.
func currentSession(c echo.Context) *auth.Session {
	sess, _ := c.Get(auth.ContextKeySession).(*auth.Session)
	return sess
}

// Register godoc
// @Summary Register a new club member
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.identityService.Register(c.Request().Context(), service.RegisterInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		StudentID:   req.StudentID,
		YearOfStudy: req.YearOfStudy,
		Branch:      req.Branch,
		Skills:      req.Skills,
		Password:    req.Password,
	})
	if err != nil {
		if err == service.ErrEmailTaken {
			return echo.NewHTTPError(http.StatusConflict, apperrors.ErrorResponse{
				Error: err.Error(),
				Code:  "EMAIL_TAKEN",
			})
		}
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "registration successful, you can now login",
		"member":  member,
	})
}

// Login godoc
// @Summary Login as member or admin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, sess, err := h.identityService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_CREDENTIALS",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "failed to login",
			Code:  "LOGIN_FAILED",
		})
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Token:       token,
		DisplayName: sess.DisplayName,
		IsAdmin:     sess.IsAdmin,
	})
}

// Logout godoc
// @Summary Logout the current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID, _ := c.Get(auth.ContextKeySessionID).(string)
	if sessionID == "" {
		he := apperrors.MapErrorToHTTP(apperrors.ErrNotAuthenticated)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	if err := h.identityService.Logout(c.Request().Context(), sessionID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "failed to logout",
			Code:  "LOGOUT_FAILED",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}
