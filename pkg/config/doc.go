// Package config loads application configuration from environment variables
// into tagged structs.
//
// Values come from the process environment, optionally seeded from a .env
// file in the working directory (github.com/joho/godotenv), and are decoded
// with github.com/caarlos0/env/v11, so `env`, `envDefault` and `required`
// tags all apply. Load caches the parsed value per type; Parse bypasses the
// cache; Reset clears it between tests.
//
// Parsing failures wrap ErrParsingConfig and can be detected with errors.Is.
package config
