// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads cookbook daemon settings from an optional YAML file
// and COOKBOOK_* environment variables.
//
// Precedence, highest first: environment, config file, defaults.
//
//	port: 8080
//	address: ""
//	rate_limit: 100
//	rate_limit_burst: 200
//	catalogue: ./catalogue.yaml
//	log_level: info
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/mchmarny/cookbook/pkg/server"
)

const (
	// EnvPrefix is prepended to every environment variable name.
	EnvPrefix = "COOKBOOK"

	configFileName = "cookbook"
	configFileType = "yaml"

	KeyPort           = "port"
	KeyAddress        = "address"
	KeyRateLimit      = "rate_limit"
	KeyRateLimitBurst = "rate_limit_burst"
	KeyCatalogue      = "catalogue"
	KeyLogLevel       = "log_level"

	defaultPort           = 8080
	defaultRateLimit      = 100
	defaultRateLimitBurst = 200
	defaultLogLevel       = "info"
)

// Config holds the daemon settings.
type Config struct {
	Port           int     `mapstructure:"port"`
	Address        string  `mapstructure:"address"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
	Catalogue      string  `mapstructure:"catalogue"`
	LogLevel       string  `mapstructure:"log_level"`
}

// Load reads configuration. When path is empty a cookbook.yaml in the
// working directory is used if present; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyPort, defaultPort)
	v.SetDefault(KeyAddress, "")
	v.SetDefault(KeyRateLimit, defaultRateLimit)
	v.SetDefault(KeyRateLimitBurst, defaultRateLimitBurst)
	v.SetDefault(KeyCatalogue, "")
	v.SetDefault(KeyLogLevel, defaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	// PORT is honored for platforms that inject it.
	if err := v.BindEnv(KeyPort, EnvPrefix+"_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("bind port env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid %s %d: must be between 0 and 65535", KeyPort, c.Port)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("invalid %s %v: must be positive", KeyRateLimit, c.RateLimit)
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("invalid %s %d: must be positive", KeyRateLimitBurst, c.RateLimitBurst)
	}
	return nil
}

// ServerConfig applies c on top of the server defaults.
func (c *Config) ServerConfig() *server.Config {
	cfg := server.NewConfig()
	cfg.Address = c.Address
	cfg.Port = c.Port
	cfg.RateLimit = rate.Limit(c.RateLimit)
	cfg.RateLimitBurst = c.RateLimitBurst
	return cfg
}
