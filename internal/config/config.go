package config

import "os"

// Get returns the environment variable value for key, or fallback when the
// variable is unset or empty. godotenv is loaded by the commands before any
// Get call.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
