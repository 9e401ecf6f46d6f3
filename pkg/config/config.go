package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	FirebaseApiKey  string
	StorageBucket   string
	Environment     string

	// Registration is restricted to addresses under this domain.
	CampusEmailDomain string

	// Minutes between SLA breach scans; 0 disables the scanner.
	BreachScanMinutes int
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		FirebaseProject:   getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:    getEnv("FIREBASE_API_KEY", ""),
		StorageBucket:     getEnv("STORAGE_BUCKET", ""),
		Environment:       getEnv("ENVIRONMENT", "development"),
		CampusEmailDomain: getEnv("CAMPUS_EMAIL_DOMAIN", "famt.ac.in"),
		BreachScanMinutes: getEnvAsInt("BREACH_SCAN_MINUTES", 15),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
