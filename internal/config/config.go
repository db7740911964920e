package config

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Timezone is the fixed zone the schedule and the stored meal plans are
// authored in. Wall-clock time is always evaluated here regardless of the
// host timezone.
const Timezone = "America/Los_Angeles"

// Config holds the configuration for the application.
type Config struct {
	// ServiceAccountJSON is the decoded Firebase service-account credential.
	ServiceAccountJSON []byte
	// ProjectID is the GCP project id extracted from the credential.
	ProjectID string

	TelegramBotToken string

	// NotifyTime is the local time of day ("HH:MM") the daily meal is sent.
	NotifyTime string

	LogFile  string
	LogLevel string

	// Location resolves the Timezone constant; loaded once at startup.
	Location *time.Location
}

// NewFromEnv creates a new Config object from environment variables.
// A .env file in the working directory is loaded first if present.
func NewFromEnv() (*Config, error) {
	_ = godotenv.Load()

	saBase64 := os.Getenv("FIREBASE_SERVICE_ACCOUNT_BASE64")
	if saBase64 == "" {
		return nil, fmt.Errorf("FIREBASE_SERVICE_ACCOUNT_BASE64 environment variable not set")
	}

	saJSON, err := base64.StdEncoding.DecodeString(saBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode FIREBASE_SERVICE_ACCOUNT_BASE64: %w", err)
	}

	projectID, err := projectIDFromCredential(saJSON)
	if err != nil {
		return nil, err
	}

	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	if botToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable not set")
	}

	loc, err := time.LoadLocation(Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", Timezone, err)
	}

	return &Config{
		ServiceAccountJSON: saJSON,
		ProjectID:          projectID,
		TelegramBotToken:   botToken,
		NotifyTime:         getEnv("NOTIFY_TIME", "12:30"),
		LogFile:            getEnv("LOG_FILE", "meal-notifier.log"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Location:           loc,
	}, nil
}

// projectIDFromCredential pulls the project id out of a service-account
// credential blob, validating the JSON along the way.
func projectIDFromCredential(saJSON []byte) (string, error) {
	var cred struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal(saJSON, &cred); err != nil {
		return "", fmt.Errorf("FIREBASE_SERVICE_ACCOUNT_BASE64 is not valid JSON: %w", err)
	}
	if cred.ProjectID == "" {
		return "", fmt.Errorf("service account credential is missing project_id")
	}
	return cred.ProjectID, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
