package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"pressroom/internal/service/auth"
)

// SecurityConfig represents the security section of the YAML config file.
type SecurityConfig struct {
	Security struct {
		Password struct {
			MinLength     int      `yaml:"min_length"`
			WeakPasswords []string `yaml:"weak_passwords"`
			BcryptCost    int      `yaml:"bcrypt_cost"`
		} `yaml:"password"`
		JWT struct {
			SecretEnv   string `yaml:"secret_env"`
			ExpiryHours int    `yaml:"expiry_hours"`
		} `yaml:"jwt"`
		LoginThrottle struct {
			PerMinute int `yaml:"per_minute"`
			Burst     int `yaml:"burst"`
		} `yaml:"login_throttle"`
	} `yaml:"security"`
}

// DefaultSecurityConfig returns the configuration applied when no config
// file is provided.
func DefaultSecurityConfig() *SecurityConfig {
	var c SecurityConfig
	c.Security.Password.MinLength = 8
	c.Security.Password.BcryptCost = 0 // bcrypt default
	c.Security.JWT.SecretEnv = "JWT_SECRET"
	c.Security.JWT.ExpiryHours = 24
	c.Security.LoginThrottle.PerMinute = 10
	c.Security.LoginThrottle.Burst = 5
	return &c
}

// LoadSecurityConfig loads security configuration from a YAML file.
// The path is expected to come from a trusted source (CLI argument or
// hardcoded default), not user input.
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path is provided by trusted source
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultSecurityConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSecurityConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return config, nil
}

func validateSecurityConfig(config *SecurityConfig) error {
	if config.Security.Password.MinLength < 8 {
		return fmt.Errorf("password min_length must be at least 8")
	}
	if config.Security.JWT.SecretEnv == "" {
		return fmt.Errorf("jwt secret_env is required")
	}
	if config.Security.JWT.ExpiryHours <= 0 {
		return fmt.Errorf("jwt expiry_hours must be positive")
	}
	if config.Security.LoginThrottle.PerMinute < 0 || config.Security.LoginThrottle.Burst < 0 {
		return fmt.Errorf("login_throttle values must not be negative")
	}
	return nil
}

// PasswordPolicy builds the registration password policy from the config.
// An empty weak-password list falls back to the built-in one.
func (c *SecurityConfig) PasswordPolicy() auth.PasswordPolicy {
	policy := auth.DefaultPasswordPolicy()
	policy.MinLength = c.Security.Password.MinLength
	if len(c.Security.Password.WeakPasswords) > 0 {
		policy.WeakPasswords = c.Security.Password.WeakPasswords
	}
	return policy
}

// BcryptCost returns the configured bcrypt cost; zero means library default.
func (c *SecurityConfig) BcryptCost() int {
	return c.Security.Password.BcryptCost
}

// JWTSecretEnv returns the environment variable name holding the JWT secret.
func (c *SecurityConfig) JWTSecretEnv() string {
	return c.Security.JWT.SecretEnv
}

// TokenTTL returns the JWT expiry as a duration.
func (c *SecurityConfig) TokenTTL() time.Duration {
	return time.Duration(c.Security.JWT.ExpiryHours) * time.Hour
}

// LoginThrottle returns the per-client login rate limit as events per minute
// and burst size.
func (c *SecurityConfig) LoginThrottle() (perMinute, burst int) {
	return c.Security.LoginThrottle.PerMinute, c.Security.LoginThrottle.Burst
}
