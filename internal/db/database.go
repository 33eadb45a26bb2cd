package db

import (
	"fmt"
	"log"
	"os"

	"imagetags/pkg/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase creates a new database connection
func NewDatabase() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		os.Getenv("DB_TIMEZONE"),
	)

	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	db, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// AutoMigrate runs database migrations using GORM
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running GORM AutoMigrate...")

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Printf("Warning: Could not create uuid-ossp extension: %v", err)
	}

	if err := db.AutoMigrate(models.GetAllModels()...); err != nil {
		return fmt.Errorf("failed to run GORM AutoMigrate: %w", err)
	}

	if err := createCustomIndexes(db); err != nil {
		log.Printf("Warning: Failed to create some custom indexes: %v", err)
	}

	log.Println("GORM AutoMigrate completed successfully")
	return nil
}

// createCustomIndexes creates any custom indexes that GORM might not handle
func createCustomIndexes(db *gorm.DB) error {
	indexes := []string{
		// batch pages walk created_at,id so both need one composite index
		`CREATE INDEX IF NOT EXISTS idx_attachments_created_id ON attachments (created_at, id)`,

		// count queries filter on empty metadata columns
		`CREATE INDEX IF NOT EXISTS idx_attachments_empty_alt ON attachments (id) WHERE alt_text = ''`,
		`CREATE INDEX IF NOT EXISTS idx_attachments_empty_title ON attachments (id) WHERE title = ''`,
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s - %v", idx, err)
		}
	}

	return nil
}

// SeedInitialData creates the first admin account and default settings
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	var userCount int64
	if err := db.Model(&models.User{}).Where("role = ?", "admin").Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}

	if userCount == 0 {
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = "admin123"
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		adminEmail := os.Getenv("ADMIN_EMAIL")
		if adminEmail == "" {
			adminEmail = "admin@localhost"
		}

		adminUser := models.User{
			Email:    adminEmail,
			Password: string(hash),
			Name:     "Administrator",
			Role:     "admin",
			IsActive: true,
		}

		if err := db.Create(&adminUser).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Println("Admin user created successfully")
	}

	return nil
}

// RunMigrations is the main migration function called from main.go
func RunMigrations(db *gorm.DB) error {
	log.Println("Starting database migrations...")

	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}

	if err := SeedInitialData(db); err != nil {
		return fmt.Errorf("initial data seeding failed: %w", err)
	}

	log.Println("All migrations completed successfully")
	return nil
}
