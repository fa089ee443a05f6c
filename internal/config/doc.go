// Package config defines the application configuration structure and loads it
// from environment variables and optional config files, with validation.
package config
