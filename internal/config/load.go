// internal/config/load.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment overrides. Process environment wins over the env file.
const (
	EnvBaseURL       = "BADGEWATCH_BASE_URL"
	EnvSessionCookie = "BADGEWATCH_SESSION_COOKIE"
	EnvAuthenticated = "BADGEWATCH_AUTHENTICATED"
	EnvSeller        = "BADGEWATCH_SELLER"
)

// Load reads the YAML file at path over Default(), then applies overrides
// from envFile (optional, dotenv format) and the process environment.
// An empty path means defaults only.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	env := map[string]string{}
	if envFile != "" {
		fileEnv, err := godotenv.Read(envFile)
		if err != nil {
			return nil, fmt.Errorf("config: read env file %s: %w", envFile, err)
		}
		env = fileEnv
	}
	for _, k := range []string{EnvBaseURL, EnvSessionCookie, EnvAuthenticated, EnvSeller} {
		if v, ok := os.LookupEnv(k); ok {
			env[k] = v
		}
	}

	if err := applyEnv(cfg, env); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, env map[string]string) error {
	bw := &cfg.Badgewatch

	if v, ok := env[EnvBaseURL]; ok && v != "" {
		bw.BaseURL = v
	}
	if v, ok := env[EnvSessionCookie]; ok {
		bw.Session.CookieValue = v
	}
	if v, ok := env[EnvAuthenticated]; ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvAuthenticated, err)
		}
		bw.Auth.Authenticated = b
	}
	if v, ok := env[EnvSeller]; ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvSeller, err)
		}
		bw.Auth.Seller = b
	}
	return nil
}
