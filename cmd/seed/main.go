package main

import (
	"context"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ecohub/internal/config"
	"ecohub/internal/db"
	"ecohub/internal/model"
	"ecohub/internal/repository"
)

// starterChallenges is the default challenge catalog for a fresh install.
var starterChallenges = []model.Challenge{
	{
		Title:        "Zero Waste Week",
		Description:  "Produce no landfill waste for seven days.",
		PointsReward: 100,
		CO2SavingKg:  4.5,
		DurationDays: 7,
		Category:     "Week",
	},
	{
		Title:        "Bike to Work",
		Description:  "Swap the car commute for a bike every workday.",
		PointsReward: 150,
		CO2SavingKg:  12.0,
		DurationDays: 5,
		Category:     "Week",
	},
	{
		Title:        "Plant-Based Month",
		Description:  "Eat plant-based for thirty days.",
		PointsReward: 400,
		CO2SavingKg:  30.0,
		DurationDays: 30,
		Category:     "Month",
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Challenge{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	challengeRepo := repository.NewChallengeRepository(gormDB)

	if err := seedAdmin(ctx, userRepo); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	created, skipped, err := seedChallenges(ctx, gormDB, challengeRepo)
	if err != nil {
		log.Fatalf("Failed to seed challenges: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New challenges created: %d", created)
	log.Printf("  - Existing challenges skipped: %d", skipped)
}

// seedAdmin creates the admin account from ADMIN_EMAIL / ADMIN_PASSWORD if
// it does not exist yet.
func seedAdmin(ctx context.Context, userRepo repository.UserRepository) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	existing, err := userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		log.Printf("Admin user %s already exists, skipping", email)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return err
	}

	admin := &model.User{
		Username:     "admin",
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    "Platform",
		LastName:     "Admin",
		BirthDate:    "1970-01-01",
		Gender:       "other",
		Role:         model.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("Admin user %s created", email)
	return nil
}

// seedChallenges inserts the starter catalog, skipping titles that already
// exist so the script stays re-runnable.
func seedChallenges(ctx context.Context, gormDB *gorm.DB, repo repository.ChallengeRepository) (created int, skipped int, err error) {
	for i := range starterChallenges {
		challenge := starterChallenges[i]

		var count int64
		if err := gormDB.WithContext(ctx).Model(&model.Challenge{}).
			Where("title = ?", challenge.Title).
			Count(&count).Error; err != nil {
			return created, skipped, err
		}
		if count > 0 {
			skipped++
			continue
		}

		if err := repo.Create(ctx, &challenge); err != nil {
			return created, skipped, err
		}
		created++
	}

	return created, skipped, nil
}
