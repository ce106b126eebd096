package auth

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables consumed by LoadConfig
const (
	EnvSigningSecret   = "JWT_SECRET"
	EnvTokenExpiration = "TOKEN_EXPIRATION_HOURS"
	EnvIssuer          = "JWT_ISSUER"
	EnvStrictSecret    = "JWT_STRICT_SECRET"
)

// EnvConfig is the env-backed Config implementation
type EnvConfig struct {
	SigningSecret   string
	TokenExpiration int
	Issuer          string
	AuthScheme      string
	StrictSecret    bool
}

var _ Config = (*EnvConfig)(nil)

// LoadConfig reads auth configuration from the environment, layering any
// local .env file underneath real environment variables. It does not
// validate the secret; NewAuthenticator fails fast at startup when the
// secret is missing or, in strict mode, too short.
func LoadConfig() *EnvConfig {
	// real env vars win over .env entries
	_ = godotenv.Load(".env")

	cfg := &EnvConfig{
		SigningSecret:   os.Getenv(EnvSigningSecret),
		TokenExpiration: intFromEnv(EnvTokenExpiration, 24),
		Issuer:          os.Getenv(EnvIssuer),
		AuthScheme:      "Bearer",
		StrictSecret:    boolFromEnv(EnvStrictSecret),
	}

	return cfg
}

func (c *EnvConfig) GetSigningSecret() string { return c.SigningSecret }
func (c *EnvConfig) GetTokenExpiration() int  { return c.TokenExpiration }
func (c *EnvConfig) GetIssuer() string        { return c.Issuer }
func (c *EnvConfig) GetStrictSecret() bool    { return c.StrictSecret }

func (c *EnvConfig) GetAuthScheme() string {
	if c.AuthScheme == "" {
		return "Bearer"
	}
	return c.AuthScheme
}

func intFromEnv(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return def
	}
	return value
}

func boolFromEnv(key string) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && value
}
