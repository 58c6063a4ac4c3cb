package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL   string     `mapstructure:"database_url"`
	ServerPort    string     `mapstructure:"server_port"`
	JWTSecret     string     `mapstructure:"jwt_secret"`
	WebhookSecret string     `mapstructure:"webhook_secret"`
	AppName       string     `mapstructure:"app_name"`
	Mail          MailConfig `mapstructure:"mail"`
}

type MailConfig struct {
	From       string        `mapstructure:"from"`
	GatewayURL string        `mapstructure:"gateway_url"`
	APIKey     string        `mapstructure:"api_key"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// Load reads the configuration from an optional YAML file. Environment
// variables (DATABASE_URL, MAIL_API_KEY, ...) override file values or stand
// in for the file entirely.
func Load() *Config {
	v := viper.New()

	// Look for config in the current directory and ./config
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.AddConfigPath("./config")
	v.SetConfigType("yaml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults also register the keys, which env-only deployments need for
	// Unmarshal to see them.
	v.SetDefault("database_url", "")
	v.SetDefault("server_port", "8080")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("webhook_secret", "")
	v.SetDefault("app_name", "GiveCircle")
	v.SetDefault("mail.from", "GiveCircle <notifications@givecircle.org>")
	v.SetDefault("mail.gateway_url", "https://api.resend.com/emails")
	v.SetDefault("mail.api_key", "")
	v.SetDefault("mail.timeout", 10*time.Second)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Error reading config file: %v", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		log.Fatalf("Error unmarshalling config: %v", err)
	}

	if config.DatabaseURL == "" {
		log.Fatal("Database URL must be set in the config file or DATABASE_URL")
	}
	if config.JWTSecret == "" {
		log.Fatal("JWT secret must be set in the config file or JWT_SECRET")
	}

	return &config
}
