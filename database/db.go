package database

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Milaston7/ARRENDAKI-sub001/logger"
	"github.com/Milaston7/ARRENDAKI-sub001/models"
)

var DB *gorm.DB

func Connect() {
	log := logger.WithComponent("database")

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using process environment")
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "db"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=5432 sslmode=disable TimeZone=Africa/Luanda",
		host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to database")
	}
}

// AutoMigrate migrates the public (shared) tables. Agency-scoped tables are
// migrated per schema in MigrateTenantSchema.
func AutoMigrate() {
	if err := DB.AutoMigrate(&models.User{}, &models.Agency{}); err != nil {
		log := logger.WithComponent("database")
		log.Fatal().Err(err).Msg("public migration failed")
	}
}
