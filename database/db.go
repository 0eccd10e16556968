package database

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"release-pulse/models"
)

// Open connects to the SQLite database and migrates the chat and mail tables.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.ChatMessage{}, &models.EmailSignup{}); err != nil {
		return nil, err
	}

	log.Println("Database connected successfully")
	return db, nil
}
