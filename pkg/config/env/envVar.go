package env

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "RECIPEBANK"

type Config struct {
	APIBaseURL          string
	CredentialsFile     string
	HTTPTimeout         time.Duration
	ExpiryCheckInterval time.Duration
	NoticeDuration      time.Duration
}

// NewConfig reads configuration from RECIPEBANK_* environment variables,
// falling back to defaults that match the development API server.
func NewConfig() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("api_url", "http://localhost:3000/api")
	v.SetDefault("credentials_file", defaultCredentialsFile())
	v.SetDefault("http_timeout", 30*time.Second)
	v.SetDefault("expiry_check_interval", time.Minute)
	v.SetDefault("notice_duration", 3*time.Second)

	config := Config{
		APIBaseURL:          v.GetString("api_url"),
		CredentialsFile:     v.GetString("credentials_file"),
		HTTPTimeout:         v.GetDuration("http_timeout"),
		ExpiryCheckInterval: v.GetDuration("expiry_check_interval"),
		NoticeDuration:      v.GetDuration("notice_duration"),
	}
	return config, nil
}

func defaultCredentialsFile() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "credentials.json"
	}
	return filepath.Join(configDir, "recipebank", "credentials.json")
}
