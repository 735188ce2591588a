package main

import (
	"context"
	"flag"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"alumnihub/internal/config"
	"alumnihub/internal/db"
	"alumnihub/internal/model"
	"alumnihub/internal/repository"
)

const bcryptCost = 10

// createadmin bootstraps an admin account. If the email already belongs to a
// user, that user is promoted to admin and the password is reset; otherwise a
// fresh admin row is created.
func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	fullName := flag.String("name", "Administrator", "admin full name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcryptCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	existing, err := userRepo.FindByEmail(ctx, *email)
	if err != nil && err != gorm.ErrRecordNotFound {
		log.Fatalf("lookup user: %v", err)
	}

	if existing != nil {
		if existing.IsAdmin() {
			log.Printf("user %s already exists and is an admin", *email)
			return
		}
		existing.Role = model.RoleAdmin
		existing.PasswordHash = string(hashed)
		if err := userRepo.Save(ctx, existing); err != nil {
			log.Fatalf("promote user: %v", err)
		}
		log.Printf("user %s promoted to admin", *email)
		return
	}

	admin := &model.User{
		Email:        *email,
		PasswordHash: string(hashed),
		FullName:     *fullName,
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("create admin: %v", err)
	}
	log.Printf("admin %s created", *email)
}
