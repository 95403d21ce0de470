package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"diloti-server/internal/util"
)

// Config provides configuration for the card game server
type Config struct {
	loaded         bool
	Addr           string   `yaml:"addr" envconfig:"addr"`
	AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	SendBuffer     int      `yaml:"sendBuffer" envconfig:"send_buffer"`
	Log            struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration.
// A missing config file is not an error; environment variables and defaults
// still apply.
func Load() error {
	config = Config{}

	configFile := util.Getenv("DILOTI_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		err = yaml.NewDecoder(file).Decode(&config)
		_ = file.Close()
		if err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("diloti", &config); err != nil {
		return err
	}

	if config.Addr == "" {
		config.Addr = ":8080"
	}

	if config.SendBuffer == 0 {
		config.SendBuffer = 256
	}

	if config.Log.Level == "" {
		config.Log.Level = "info"
	}

	config.loaded = true
	return nil
}
