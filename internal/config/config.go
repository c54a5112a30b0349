package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Session   SessionConfig   `mapstructure:"session"`
	Auth      AuthConfig      `mapstructure:"auth"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	S3        S3Config        `mapstructure:"s3"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Seed      SeedConfig      `mapstructure:"seed"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// SessionConfig locates the durable session record database. An empty
// path means in-memory, i.e. nothing survives a restart.
type SessionConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// AuthConfig tunes the simulated sign-in protocol.
type AuthConfig struct {
	// LoginDelay is the artificial latency added to login and signup,
	// simulating a slow upstream identity provider.
	LoginDelay time.Duration `mapstructure:"login_delay"`
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// Enabled reports whether avatar storage is configured at all; with no
// bucket the avatar endpoints are simply not mounted.
func (c S3Config) Enabled() bool {
	return c.BucketName != ""
}

// RateLimitConfig bounds the unauthenticated auth endpoints.
type RateLimitConfig struct {
	AuthPerMinute float64 `mapstructure:"auth_per_minute"`
	AuthBurst     int     `mapstructure:"auth_burst"`
}

// SeedConfig controls loading of the demo fixtures at startup.
type SeedConfig struct {
	Demo bool `mapstructure:"demo"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment overrides, e.g. session.db_path -> SESSION_DB_PATH
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("session.db_path", "gym-app-session.db")
	viper.SetDefault("auth.login_delay", "1s")
	viper.SetDefault("jwt.expiration", "1h")
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("ratelimit.auth_per_minute", 10.0)
	viper.SetDefault("ratelimit.auth_burst", 5)
	viper.SetDefault("seed.demo", true)

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// Config file not found; rely on defaults and env vars.
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
