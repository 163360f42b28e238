package config // package config loads application configuration from environment variables

import (
    "log"      // log is used to report configuration errors and halt execution
    "os"       // os provides access to environment variables
    "strconv"  // strconv converts strings to other types
    "time"     // time parses duration values such as the reminder interval

    "github.com/joho/godotenv" // godotenv loads a local .env file in development
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for costs and
// bounds, durations for the reminder schedule.
type Config struct {
    Env              string        // application environment (e.g. "dev", "prod")
    Port             string        // HTTP port to listen on
    DBUser           string        // database username
    DBPass           string        // database password (optional)
    DBHost           string        // database host address
    DBPort           string        // database port number
    DBName           string        // database name
    JWTSecret        string        // secret used to sign JWTs
    AccessTTLMin     int           // access token time‑to‑live in minutes
    RefreshTTLDays   int           // refresh token time‑to‑live in days
    BcryptCost       int           // bcrypt cost for password hashing
    ReminderInterval time.Duration // gap between cleaning a task and it coming due again
    SweepInterval    time.Duration // how often the background due sweep runs
    RatingMin        int           // smallest accepted recipe rating score
    RatingMax        int           // largest accepted recipe rating score
}

// Load reads configuration values from environment variables and returns a
// Config.  A .env file in the working directory is loaded first when
// present so local development does not need exported variables.  Required
// variables are enforced by must() and missing values cause the program to
// exit with a fatal log message.  Schedule and rating knobs have defaults
// and only need to be set when a deployment wants to deviate.
func Load() Config {
    _ = godotenv.Load() // best effort; absence of .env is not an error

    return Config{
        Env:              must("APP_ENV"),                   // environment (dev/test/prod)
        Port:             must("APP_PORT"),                  // port to bind the HTTP server
        DBUser:           must("DB_USER"),                   // database user
        DBPass:           os.Getenv("DB_PASS"),              // database password (empty allowed)
        DBHost:           must("DB_HOST"),                   // database host
        DBPort:           must("DB_PORT"),                   // database port
        DBName:           must("DB_NAME"),                   // database name
        JWTSecret:        must("JWT_SECRET"),                // secret used for signing JWTs
        AccessTTLMin:     mustInt("ACCESS_TOKEN_TTL_MIN"),   // TTL for access tokens in minutes
        RefreshTTLDays:   mustInt("REFRESH_TOKEN_TTL_DAYS"), // TTL for refresh tokens in days
        BcryptCost:       mustInt("BCRYPT_COST"),            // bcrypt cost factor
        ReminderInterval: envDur("REMINDER_INTERVAL", 720*time.Hour), // 30 days by default
        SweepInterval:    envDur("SWEEP_INTERVAL", 5*time.Minute),    // due sweep cadence
        RatingMin:        envInt("RATING_MIN", 1),           // lowest valid score
        RatingMax:        envInt("RATING_MAX", 5),           // highest valid score
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// Helper functions for optional variables with defaults.
func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func envInt(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    if n, err := strconv.Atoi(v); err == nil {
        return n
    }
    return def
}

func envDur(key string, def time.Duration) time.Duration {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    if d, err := time.ParseDuration(v); err == nil && d > 0 {
        return d
    }
    return def
}
