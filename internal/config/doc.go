// Package config loads portfolio settings from an optional TOML file and
// the process environment.
//
// Precedence, lowest first: built-in defaults, the TOML file, then
// environment variables (PORT, PORTFOLIO_BASE_PATH, PORTFOLIO_OUT,
// LOG_LEVEL). A missing file is not an error.
package config
