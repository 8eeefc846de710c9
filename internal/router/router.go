package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"clubhub/internal/auth"
	"clubhub/internal/config"
	"clubhub/internal/handler"
)

// Register wires routes and middleware. Route groups implement the portal's
// page reachability: anonymous visitors get the auth endpoints, any session
// gets the feed and logout, and only admin sessions reach posting and the
// member roster.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessions *auth.SessionService,
	sessionStore auth.SessionStoreInterface,
	authHandler *handler.AuthHandler,
	announcementHandler *handler.AnnouncementHandler,
	memberHandler *handler.MemberHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Session-gated routes (member or admin). echojwt rejects missing or
	// forged tokens; sessionMiddleware then resolves the claims and checks
	// the session was not revoked by logout.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.SessionSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
	}), sessionMiddleware(sessions, sessionStore))

	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/announcements", announcementHandler.List)
	secured.GET("/profile", memberHandler.Profile)

	// Admin-gated routes
	admin := secured.Group("", requireAdmin)
	admin.POST("/announcements", announcementHandler.Create)
	admin.GET("/members", memberHandler.ListMembers)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
