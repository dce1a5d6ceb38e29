// Package config loads runtime configuration from environment variables,
// with literal defaults suitable for local demo use.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the process-wide settings, read once at startup.
type Config struct {
	Port       int
	AppName    string
	DockerUser string
	ImageName  string
	Version    string
	JWTSecret  string
	TokenTTL   time.Duration
}

// Load reads configuration from the environment via viper.
// Every knob has a default; nothing is required.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 5090)
	v.SetDefault("APP_NAME", "usman-apis-dashboard")
	v.SetDefault("DOCKER_USER", "usmanfarooq317")
	v.SetDefault("VERSION", "v1")
	v.SetDefault("JWT_SECRET", "supersecret_demo_key") // change in production
	v.SetDefault("TOKEN_EXP_MINUTES", 60)

	appName := v.GetString("APP_NAME")
	v.SetDefault("IMAGE_NAME", appName)

	return &Config{
		Port:       v.GetInt("PORT"),
		AppName:    appName,
		DockerUser: v.GetString("DOCKER_USER"),
		ImageName:  v.GetString("IMAGE_NAME"),
		Version:    v.GetString("VERSION"),
		JWTSecret:  v.GetString("JWT_SECRET"),
		TokenTTL:   time.Duration(v.GetInt("TOKEN_EXP_MINUTES")) * time.Minute,
	}
}

// Image returns the composed container image reference.
func (c *Config) Image() string {
	return fmt.Sprintf("%s/%s", c.DockerUser, c.ImageName)
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
