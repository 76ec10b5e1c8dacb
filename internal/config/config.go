// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes environment variables overriding single keys,
	// for example TECA_WEBSERVER_PORT.
	EnvPrefix = "TECA"

	// EnvConfigJSON holds a JSON document merged over the file configuration.
	EnvConfigJSON = "TECA_CONFIG_JSON"

	// MainFile is the name of the main configuration file.
	MainFile = "main.toml"

	defaultShutDownTime  = 5
	defaultCookieName    = "session"
	defaultSessionExpiry = 24 * time.Hour
	defaultSessionTable  = "sessions"
	defaultLoginLatency  = time.Second
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var c Config

	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(path, MainFile))
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	if JSONConfigEnv := os.Getenv(EnvConfigJSON); JSONConfigEnv != "" {
		var err error

		if c, err = decodeAndMergeConfig(c, JSONConfigEnv); err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	if err := json.Unmarshal([]byte(configAsJSON), &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer

	if err := toml.NewEncoder(&buffer).Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the settings the service cannot start without and fills defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	switch c.DB.GormEngine {
	case "":
		c.DB.GormEngine = GormEngineSQLite
	case GormEngineSQLite, GormEngineMySQL, GormEnginePostgres:
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalidErrMessage)
	}

	s := &c.Webserver.Session

	switch s.Storage {
	case "":
		s.Storage = SessionStorageMemory
	case SessionStorageMemory:
	case SessionStorageMySQL, SessionStoragePostgres:
		if s.Storage != c.DB.GormEngine {
			return errors.Wrap(ErrSessionStorageNeedsDB, invalidErrMessage)
		}
	default:
		return errors.Wrap(ErrUnknownSessionStorage, invalidErrMessage)
	}

	if s.CookieName == "" {
		s.CookieName = defaultCookieName
	}

	if s.ExpiryTime <= 0 {
		s.ExpiryTime = defaultSessionExpiry
	}

	if s.Table == "" {
		s.Table = defaultSessionTable
	}

	if c.Auth.LoginLatency == 0 {
		c.Auth.LoginLatency = defaultLoginLatency
	}

	return nil
}
