package config

import (
	"log"
	"os"
)

type Environment struct {
	IsDevelopment bool
	Domain        string
}

var Env Environment

func init() {
	// Get domain from environment variable
	domain := os.Getenv("APP_DOMAIN")

	// If no domain is set, we're in development
	isDev := domain == ""
	if isDev {
		domain = "localhost"
	}

	Env = Environment{
		IsDevelopment: isDev,
		Domain:        domain,
	}
}

// CheckRequired warns about missing connection parameters at startup.
// Missing values are not fatal: requests depending on them fail individually.
func CheckRequired() {
	for _, name := range []string{"DB_URL", "JWT_SECRET_KEY"} {
		if os.Getenv(name) == "" {
			log.Printf("Warning: %s is not set", name)
		}
	}
}
