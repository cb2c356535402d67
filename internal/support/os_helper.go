package support

import "os"

// GetEnv returns the value of key or fallback when the variable is unset.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
