package main

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyDatabaseURL = "database_url"
	keyJWTSecret   = "jwt_secret"
	keyJWTExpiry   = "jwt_access_expiry"

	defaultJWTExpiry = 15 * time.Minute
)

// loadSettings resolves settings with precedence flag > environment (after
// .env) > config file > default. A missing config file is not an error.
func loadSettings(cmd *cobra.Command, configFile string) (*viper.Viper, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault(keyJWTExpiry, defaultJWTExpiry)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("vaultctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	for key, env := range map[string]string{
		keyDatabaseURL: "DATABASE_URL",
		keyJWTSecret:   "JWT_SECRET",
		keyJWTExpiry:   "JWT_ACCESS_EXPIRY",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	for key, flag := range map[string]string{
		keyDatabaseURL: "database-url",
		keyJWTSecret:   "jwt-secret",
		keyJWTExpiry:   "jwt-expiry",
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	return v, nil
}
