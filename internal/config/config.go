// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// food ordering server. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment
// variables (optionally seeded from a .env file), an optional JSON file and
// built-in defaults.
//
// Sources are merged field by field and a zero value never overrides a
// value from a lower-priority source. A boolean set to true in the JSON file
// therefore cannot be switched off with false from the environment or flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters,
	// password hashing cost and the application version.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the data store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle, access control and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the optional "iss" claim embedded in issued tokens.
	// When set, it is also checked on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid after issuance.
	// Env: APP_TOKEN_DURATION (default 2h)
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt work factor used for password hashes.
	// Env: APP_PASSWORD_HASH_COST (default 10)
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// RequireAuth enables bearer-token checks on order and user routes.
	// An authenticated caller may only reach its own user and order list.
	// Env: APP_REQUIRE_AUTH (default false)
	RequireAuth bool `env:"REQUIRE_AUTH"`

	// CORSOrigins lists the origins allowed to call the API from a browser.
	// Env: APP_CORS_ORIGINS, comma separated (default "*")
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	// LogLevel is the minimal zerolog level that is written.
	// Env: APP_LOG_LEVEL (default debug)
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the version string exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the two supported data store
// backends. Exactly one of them must be configured.
type Storage struct {
	// Remote configures a hosted PostgREST-compatible data service.
	Remote Remote `envPrefix:"REMOTE_"`

	// DB configures a direct SQL connection.
	DB DB `envPrefix:"DB_"`
}

// Remote holds the settings of a hosted data service reached over HTTP.
type Remote struct {
	// URL is the project URL of the data service.
	// Env: STORAGE_REMOTE_URL
	URL string `env:"URL"`

	// Key is the access key sent with every request.
	// Env: STORAGE_REMOTE_KEY
	Key string `env:"KEY"`

	// RESTPath is the path under URL where the REST interface is mounted.
	// Env: STORAGE_REMOTE_REST_PATH (default /rest/v1)
	RESTPath string `env:"REST_PATH"`

	// Timeout bounds every request to the data service.
	// Env: STORAGE_REMOTE_TIMEOUT (default 10s)
	Timeout time.Duration `env:"TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. "postgres://" and
	// "postgresql://" select PostgreSQL; "sqlite://" and "file:" select
	// SQLite (e.g. "sqlite://food.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format. Takes precedence over Port.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Port is used when HTTPAddress is empty; the server then listens on
	// all interfaces.
	// Env: SERVER_PORT (default 3000)
	Port int `env:"PORT"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT (default 30s)
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT (default 10s)
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Address returns the listen address of the HTTP server.
func (s Server) Address() string {
	if s.HTTPAddress != "" {
		return s.HTTPAddress
	}
	return ":" + strconv.Itoa(s.Port)
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier source wins for non-zero fields):
//  1. Command-line flags
//  2. Environment variables, including those loaded from a .env file
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(os.Args[1:]).
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
