package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/model"
	"clubhub/internal/service"
)

// AnnouncementHandler handles the announcement feed endpoints.
type AnnouncementHandler struct {
	announcementService service.AnnouncementService
}

// NewAnnouncementHandler creates a new announcement handler.
func NewAnnouncementHandler(announcementService service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// CreateAnnouncementRequest represents a new announcement.
type CreateAnnouncementRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// AnnouncementResponse is a feed entry with the author name resolved.
type AnnouncementResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	PostedBy  string    `json:"posted_by"`
	CreatedAt time.Time `json:"created_at"`
}

func toAnnouncementResponse(a *model.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		PostedBy:  a.AuthorName(),
		CreatedAt: a.CreatedAt,
	}
}

// List godoc
// @Summary List active announcements, newest first
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AnnouncementResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c echo.Context) error {
	announcements, err := h.announcementService.List(c.Request().Context())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	resp := make([]AnnouncementResponse, 0, len(announcements))
	for i := range announcements {
		resp = append(resp, toAnnouncementResponse(&announcements[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Post a new announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} AnnouncementResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c echo.Context) error {
	var req CreateAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	announcement, err := h.announcementService.Create(c.Request().Context(), currentSession(c), req.Title, req.Content)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, toAnnouncementResponse(announcement))
}
