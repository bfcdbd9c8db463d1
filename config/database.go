package config

import (
	"fmt"
	"log"

	"holidayapi/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func getDSN() string {
	host := GetEnvDefault("DB_HOST", "localhost")
	user := GetEnvDefault("DB_USER", "postgres")
	password := GetEnv("DB_PASSWORD")
	name := GetEnvDefault("DB_NAME", "holidays")
	port := GetEnvDefault("DB_PORT", "5432")
	sslmode := GetEnvDefault("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, name, port, sslmode)
}

func ConnectDB() {
	var err error

	// TranslateError lets the repositories detect unique-index violations as
	// gorm.ErrDuplicatedKey instead of driver-specific errors.
	DB, err = gorm.Open(postgres.Open(getDSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	if err := DB.AutoMigrate(&models.Country{}, &models.Holiday{}); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	fmt.Println("Successfully connected to db")
}
