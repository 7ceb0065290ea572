// Package config loads runtime configuration from multiple sources (YAML files,
// environment variables, CLI flags) with precedence: CLI flags > YAML config >
// Environment variables > Defaults. Only ambient settings live here; the coin
// denominations and pyramid shape are fixed.
package config
