package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds everything the process needs from the environment. Secrets are
// never compiled in; Load fails fast when JWT_SECRET is missing.
type Config struct {
	DatabaseURL   string
	JWTSecret     string
	Port          string
	StaticDir     string
	AdminPhone    string
	AdminPassword string
}

var (
	C  Config
	DB *gorm.DB
)

func Load() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	C = Config{
		DatabaseURL:   getenv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=facilite port=5432 sslmode=disable"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		Port:          getenv("PORT", "8000"),
		StaticDir:     getenv("STATIC_DIR", "static"),
		AdminPhone:    os.Getenv("ADMIN_PHONE"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if C.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
}

func ConnectDatabase() {
	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey so handlers can answer 409 instead of 500.
	db, err := gorm.Open(postgres.Open(C.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	DB = db
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
