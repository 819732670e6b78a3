// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv (optional .env files) with
// github.com/caarlos0/env/v11 (struct tag parsing) and caches the parsed
// value per type and prefix, so every package can call Load for its own
// section without re-reading the environment.
package config
