package config

import (
	"fmt"
	"os"
	"time"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// JWTExpiry returns the token lifetime. JWT_EXPIRE takes a Go duration
// string, e.g. "24h" or "15m".
func JWTExpiry() time.Duration {
	exp := os.Getenv("JWT_EXPIRE")
	if exp == "" {
		return 24 * time.Hour
	}
	d, err := time.ParseDuration(exp)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		return "5000"
	}
	return port
}
