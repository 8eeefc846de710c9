package main

import (
	"context"
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"clubhub/internal/auth"
	"clubhub/internal/config"
	"clubhub/internal/db"
	"clubhub/internal/model"
	"clubhub/internal/repository"
)

// Admins have no registration path in the portal; this command is the one
// place admin rows come from. Credentials are taken from ADMIN_EMAIL and
// ADMIN_PASSWORD, and an existing admin with the same email is left alone.
func main() {
	log.Println("Starting admin seed...")

	cfg := config.Load()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.Admin{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	adminRepo := repository.NewAdminRepository(gormDB)
	memberRepo := repository.NewMemberRepository(gormDB)

	if _, err := adminRepo.FindByEmail(ctx, email); err == nil {
		log.Printf("Admin %s already exists, nothing to do", email)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check existing admin: %v", err)
	}

	// Member lookups take precedence at login, so a member row with this
	// email would shadow the admin account.
	if _, err := memberRepo.FindByEmail(ctx, email); err == nil {
		log.Printf("Warning: a member is registered with %s; the admin account will not be reachable via login", email)
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &model.Admin{Email: email, PasswordHash: passwordHash}
	if err := adminRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Admin %s created (id %s)", email, admin.ID)
}
