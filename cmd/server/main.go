package main

import (
	"log"
	"net/http"

	_ "clubhub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"clubhub/internal/auth"
	"clubhub/internal/cache"
	"clubhub/internal/config"
	"clubhub/internal/db"
	"clubhub/internal/handler"
	"clubhub/internal/model"
	"clubhub/internal/repository"
	"clubhub/internal/router"
	"clubhub/internal/service"
)

// @title Club Membership Portal API
// @version 1.0
// @description Club membership portal with registration, member/admin login and an announcement feed.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Member{},
		&model.Admin{},
		&model.Announcement{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(gormDB)
	adminRepo := repository.NewAdminRepository(gormDB)
	announcementRepo := repository.NewAnnouncementRepository(gormDB)

	// Initialize session components
	sessionService := auth.NewSessionService(cfg.SessionSecret)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Initialize services
	identityService := service.NewIdentityService(memberRepo, adminRepo, sessionService, sessionStore)
	announcementService := service.NewAnnouncementService(announcementRepo)
	memberService := service.NewMemberService(memberRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(identityService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService)
	memberHandler := handler.NewMemberHandler(memberService)

	// Register routes
	router.Register(
		e,
		cfg,
		sessionService,
		sessionStore,
		authHandler,
		announcementHandler,
		memberHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
