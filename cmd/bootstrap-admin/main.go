package main

import (
	"flag"
	"log"

	"go-legal-cms/internal/model"
	"go-legal-cms/internal/repository"
	"go-legal-cms/pkg/database"

	"github.com/joho/godotenv"
)

// Creates the first admin account directly against the database. The
// HTTP bootstrap endpoint does the same thing; this exists for
// deployments where the API is not reachable yet.
func main() {
	var email, password, fullName string
	flag.StringVar(&email, "email", "", "Admin email address")
	flag.StringVar(&password, "password", "", "Admin password (min 6 characters)")
	flag.StringVar(&fullName, "name", "", "Admin full name")
	flag.Parse()

	if email == "" || password == "" || fullName == "" {
		log.Fatal("Usage: bootstrap-admin -email <email> -password <password> -name <full name>")
	}
	if len(password) < 6 {
		log.Fatal("Password must be at least 6 characters")
	}

	// 1. Load env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup database
	db := database.ConnectDB()
	if err := db.AutoMigrate(&model.User{}, &model.Profile{}, &model.UserRole{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	roleRepo := repository.NewRoleRepo(db)
	userRepo := repository.NewUserRepo(db)

	// 3. Refuse when an admin already exists
	hasAdmin, err := roleRepo.HasAdmin()
	if err != nil {
		log.Fatalf("Failed to check for existing admins: %v", err)
	}
	if hasAdmin {
		log.Fatal("An admin account already exists. Use the normal login flow.")
	}

	// 4. Create identity, profile, and role
	user := &model.User{Email: email, IsActive: true}
	user.CreatedBy = "bootstrap"
	user.UpdatedBy = "bootstrap"
	if err := user.SetPassword(password); err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	if err := userRepo.Create(user); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	if err := userRepo.CreateProfile(&model.Profile{
		UserID:     user.ID,
		FullName:   fullName,
		Email:      email,
		Department: "Legal",
	}); err != nil {
		log.Fatalf("Failed to create admin profile: %v", err)
	}
	if err := roleRepo.Create(&model.UserRole{UserID: user.ID, Role: model.RoleAdmin}); err != nil {
		log.Fatalf("Failed to assign admin role: %v", err)
	}

	log.Printf("Admin account created: %s (%s)", email, fullName)
}
