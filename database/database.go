package database

import (
	"fmt"
	"log"
	"os"

	"resale-app/internal/domain/articles"
	"resale-app/internal/domain/family"
	"resale-app/internal/domain/lots"
	"resale-app/internal/domain/planner"
	"resale-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	// Required for uuid column defaults
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// accounts
		&users.User{},
		&users.VerificationToken{},
		&family.Member{},

		// inventory
		&articles.Article{},
		&articles.Photo{},

		// lots
		&lots.Lot{},
		&lots.Photo{},
		&lots.Item{},

		// planner
		&planner.Suggestion{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}
