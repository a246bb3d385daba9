package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values.  Each field maps to an
// environment variable; optional integrations (RabbitMQ, Redis) stay
// disabled when their variables are unset.
type Config struct {
	Env             string // application environment (e.g. "dev", "prod")
	Port            string // HTTP port to listen on
	DataFile        string // path of the JSON booking store
	PublicDir       string // directory of the static site assets
	LogDir          string // directory for the confirmed-booking log
	JWTSecret       string // secret used to sign admin session tokens
	AccessTTLMin    int    // admin token time-to-live in minutes
	AdminUsername   string // shared admin username
	AdminPassword   string // shared admin password (hashed at startup)
	CountryCode     string // calling code substituted for a leading zero
	RestaurantName  string // restaurant name used in confirmation messages
	WhatsAppBaseURL string // messaging deep-link base
	AMQPURL         string // RabbitMQ URL; empty disables the event stream
}

// Load reads configuration from the environment.  Missing required
// variables cause the program to exit with a fatal log message; the
// rest fall back to development defaults matching the original
// deployment.
func Load() Config {
	return Config{
		Env:             getenv("APP_ENV", "dev"),
		Port:            getenv("APP_PORT", "3000"),
		DataFile:        getenv("DATA_FILE", "data/bookings.json"),
		PublicDir:       getenv("PUBLIC_DIR", "public"),
		LogDir:          getenv("LOG_DIR", "logs"),
		JWTSecret:       must("JWT_SECRET"),
		AccessTTLMin:    getenvInt("ACCESS_TOKEN_TTL_MIN", 60),
		AdminUsername:   getenv("ADMIN_USERNAME", "admin"),
		AdminPassword:   must("ADMIN_PASSWORD"),
		CountryCode:     getenv("COUNTRY_CODE", "44"),
		RestaurantName:  getenv("RESTAURANT_NAME", "Appayon Indian Restaurant"),
		WhatsAppBaseURL: getenv("WHATSAPP_BASE_URL", "https://wa.me"),
		AMQPURL:         os.Getenv("RABBITMQ_URL"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
