// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-account-auth server. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version and log level.
	App App `envPrefix:"APP_"`

	// Auth holds the credential, token, and OTP parameters.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Mail holds the settings of the verification email transport.
	Mail Mail `envPrefix:"MAIL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the optional path to a .env file loaded into the process
	// environment before environment variables are parsed.
	DotEnvPath string `env:"DOTENV"`
}

// App holds application-level settings.
type App struct {
	// Version is reported by GET /api/version.
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string `env:"LOG_LEVEL"`
}

// Auth groups every secret and window used by the authentication engine.
type Auth struct {
	// TokenSecret is the HMAC key used to sign and verify session tokens.
	// Rotating it invalidates every token issued before.
	TokenSecret string `env:"TOKEN_SECRET"`

	// TokenIssuer is the "iss" claim embedded in every token.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// AccessTokenTTL is the lifetime of access tokens.
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL"`

	// RefreshTokenTTL is the lifetime of refresh tokens.
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL"`

	// OTPTTL is the validity window of a one-time code.
	OTPTTL time.Duration `env:"OTP_TTL"`

	// OTPLength is the number of digits in a one-time code.
	OTPLength int `env:"OTP_LENGTH"`

	// HashScheme selects the password digest function: "hmac-sha256" or
	// "argon2id".
	HashScheme string `env:"HASH_SCHEME"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the relational database connection settings.
type DB struct {
	// DSN is a postgres connection string or a "sqlite://<path>" URL.
	DSN string `env:"DATABASE_URI"`

	// Migrate runs the embedded migrations at startup when true.
	Migrate bool `env:"MIGRATE"`
}

// Server holds network address and timeout settings for the HTTP server.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Mail holds the settings of the verification email transport.
type Mail struct {
	// Transport is one of "smtp", "http", or "log".
	Transport string `env:"TRANSPORT"`

	// Host and Port address the SMTP server.
	Host string `env:"HOST"`
	Port int    `env:"PORT"`

	// User and Password authenticate against the SMTP server. User is also
	// the sender address.
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`

	// From overrides the sender address.
	From string `env:"FROM"`

	// RelayURL is the endpoint of the HTTP mail relay.
	RelayURL string `env:"RELAY_URL"`

	// RelayToken is sent as a bearer token to the HTTP mail relay.
	RelayToken string `env:"RELAY_TOKEN"`

	// Timeout bounds every notification attempt.
	Timeout time.Duration `env:"TIMEOUT"`
}

// Sender returns the configured sender address.
func (m Mail) Sender() string {
	if m.From != "" {
		return m.From
	}
	return m.User
}

// GetStructuredConfig builds the server configuration from every supported
// source, applies defaults, and validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
