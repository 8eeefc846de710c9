package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/service"
)

// MemberHandler handles profile and roster endpoints.
type MemberHandler struct {
	memberService service.MemberService
}

// NewMemberHandler creates a new member handler.
func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// Profile godoc
// @Summary Get the logged-in member's profile
// @Tags members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Member
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *MemberHandler) Profile(c echo.Context) error {
	sess := currentSession(c)
	if sess == nil {
		he := apperrors.MapErrorToHTTP(apperrors.ErrNotAuthenticated)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	// Admin principals have no member row; the lookup 404s for them.
	member, err := h.memberService.Profile(c.Request().Context(), sess.PrincipalID)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, member)
}

// ListMembers godoc
// @Summary List active members, newest first
// @Tags members
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Member
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /members [get]
func (h *MemberHandler) ListMembers(c echo.Context) error {
	members, err := h.memberService.ListActive(c.Request().Context(), currentSession(c))
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, members)
}
