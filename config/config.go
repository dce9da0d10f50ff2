package config

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppEnv             string
	AppPort            string
	AllowedOrigins     string
	SpreadsheetID      string
	SheetName          string
	GoogleClientEmail  string
	GooglePrivateKey   string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleAPIKey       string
	OAuthRedirectURI   string
	DrivePageSize      int
	SubjectFolders     map[string]string
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("%s not set, defaulting to %s", key, defaultValue)
	return defaultValue
}

// getSecretEnv is getEnv without a default: credentials have no sensible
// fallback and missing ones are reported per call, not at load time.
func getSecretEnv(key string) string {
	return os.Getenv(key)
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Invalid integer value for %s, defaulting to %d", key, defaultValue)
	}
	return defaultValue
}

// getEnvAsMap parses a JSON object env var into a string map.
func getEnvAsMap(key string, defaultValue map[string]string) map[string]string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed := make(map[string]string)
	if err := json.Unmarshal([]byte(value), &parsed); err != nil {
		log.Printf("Invalid JSON object for %s, using default mapping: %v", key, err)
		return defaultValue
	}
	return parsed
}

// defaultSubjectFolders lists the curriculum subjects shipped with the
// study planner. Override with the SUBJECT_FOLDERS env var (JSON object,
// subject name -> Drive folder ID).
var defaultSubjectFolders = map[string]string{
	"Anatomy & Histology": "",
	"Physiology":          "",
	"Biochemistry":        "",
	"Medical Ethics":      "",
}

func Load() Config {
	log.Println("Loading configuration...")

	return Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		AppPort:            getEnv("APP_PORT", "8080"),
		AllowedOrigins:     getEnv("ALLOWED_ORIGINS", "*"),
		SpreadsheetID:      getEnv("SPREADSHEET_ID", "1R7U3iKwTgxLONcliIXqZR45LV8S_aHf_J8Mqam9eWYo"),
		SheetName:          getEnv("SHEET_NAME", "Tasks"),
		GoogleClientEmail:  getSecretEnv("GOOGLE_CLIENT_EMAIL"),
		GooglePrivateKey:   getSecretEnv("GOOGLE_PRIVATE_KEY"),
		GoogleClientID:     getSecretEnv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: getSecretEnv("GOOGLE_CLIENT_SECRET"),
		GoogleAPIKey:       getSecretEnv("GOOGLE_API_KEY"),
		OAuthRedirectURI:   getEnv("GOOGLE_REDIRECT_URI", "http://localhost:8080/api/v1/oauth/callback"),
		DrivePageSize:      getEnvAsInt("DRIVE_PAGE_SIZE", 20),
		SubjectFolders:     getEnvAsMap("SUBJECT_FOLDERS", defaultSubjectFolders),
	}
}
