package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Only JWT_SECRET is mandatory: the server refuses
// to start without a signing secret, everything else has a usable default.
type Config struct {
	Env             string // application environment (e.g. "dev", "prod")
	Port            string // HTTP port to listen on
	JWTSecret       string // secret used to sign session tokens
	SessionTTLHours int    // session token time-to-live in hours
	BcryptCost      int    // bcrypt cost for password hashing
	StoreBackend    string // "file" or "redis"
	StoreFile       string // path of the JSON document (file backend)
	RedisKey        string // document key (redis backend, optional)
	OpenAIAPIKey    string // key for the tag suggestion API (optional)
	OpenAIModel     string // model used for tag suggestion
	AMQPURL         string // RabbitMQ URL for activity events (optional)
}

// Load reads configuration values from environment variables and returns a
// Config. A missing JWT_SECRET causes the process to exit with a fatal log
// message.
func Load() Config {
	return Config{
		Env:             getenv("APP_ENV", "dev"),
		Port:            getenv("APP_PORT", "8080"),
		JWTSecret:       must("JWT_SECRET"),
		SessionTTLHours: atoi(getenv("SESSION_TTL_HOURS", "24")),
		BcryptCost:      atoi(getenv("BCRYPT_COST", "10")),
		StoreBackend:    getenv("STORE_BACKEND", "file"),
		StoreFile:       getenv("STORE_FILE", "data.json"),
		RedisKey:        os.Getenv("STORE_REDIS_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getenv("OPENAI_MODEL", "gpt-4o-mini"),
		AMQPURL:         os.Getenv("RABBITMQ_URL"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
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

func atoi(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int value: %q", s)
	}
	return i
}
