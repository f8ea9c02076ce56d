// Package config loads process configuration into the global viper instance.
//
// Sources, lowest precedence first: built-in defaults, an optional YAML file,
// a .env file in the working directory and ELECTIONS_* environment variables
// (ELECTIONS_DATABASE_DSN sets database.dsn).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ougirez/elections/internal/pkg/constants"
)

const envPrefix = "ELECTIONS"

func setDefaults() {
	viper.SetDefault(constants.ViperServerAddrKey, ":8080")
	viper.SetDefault(constants.ViperServerShutdownTimeoutKey, 10*time.Second)

	viper.SetDefault(constants.ViperDatabaseDSNKey, "postgres://localhost:5432/elections?sslmode=disable")
	viper.SetDefault(constants.ViperDatabaseMaxConnsKey, 10)
	viper.SetDefault(constants.ViperDatabaseConnectRetriesKey, 5)

	viper.SetDefault(constants.ViperAPIBaseURLKey, "")
	viper.SetDefault(constants.ViperCORSAllowOriginsKey, []string{"*"})

	viper.SetDefault(constants.ViperLogLevelKey, "info")
	viper.SetDefault(constants.ViperLogDevelopmentKey, false)

	viper.SetDefault(constants.ViperMetricsEnabledKey, true)
}

// Load populates viper. path may be empty, in which case only defaults, .env
// and the environment are used.
func Load(path string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("godotenv.Load: %w", err)
	}

	setDefaults()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path == "" {
		return nil
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("viper.ReadInConfig: %w", err)
	}

	return nil
}
