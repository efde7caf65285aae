package config

import (
	"os"
	"strconv"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	// Optional billing overrides; zero means use engine defaults.
	DailyRateDefault  float64
	WeeklyRateDefault float64
	ClaimDailyRate    float64
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dbHost := strings.TrimSpace(os.Getenv("DB_HOST"))
	if dbHost == "" {
		dbHost = "127.0.0.1:3306"
	}
	dbUser := strings.TrimSpace(os.Getenv("DB_USER"))
	if dbUser == "" {
		dbUser = "root"
	}
	dbName := strings.TrimSpace(os.Getenv("DB_NAME"))
	if dbName == "" {
		dbName = "fleetops"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	return Env{
		AppAddr:           appAddr,
		GinMode:           strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:            dbUser,
		DBPass:            os.Getenv("DB_PASS"),
		DBHost:            dbHost,
		DBName:            dbName,
		JWTSecret:         secret,
		DailyRateDefault:  envFloat("BILLING_DAILY_RATE"),
		WeeklyRateDefault: envFloat("BILLING_WEEKLY_RATE"),
		ClaimDailyRate:    envFloat("BILLING_CLAIM_RATE"),
	}
}

func envFloat(key string) float64 {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
