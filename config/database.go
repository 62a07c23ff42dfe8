package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"reviewdb/models"
)

// InitDB opens the Postgres connection and migrates the schema.
// TranslateError is on so unique-constraint violations surface as
// gorm.ErrDuplicatedKey; the composite (author_id, title_id) index is the
// real duplicate-review guarantee, not the application-level check.
func InitDB(cfg *Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.SetupJoinTable(&models.Title{}, "Genres", &models.GenreTitle{}); err != nil {
		log.Fatal("Failed to set up genre_titles join table:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Genre{},
		&models.Title{},
		&models.GenreTitle{},
		&models.Review{},
		&models.Comment{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	return db
}
