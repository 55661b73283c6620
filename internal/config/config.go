// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

// Package config loads the Slack credentials the slackfn command runs with.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file.
const (
	EnvBotToken = "SLACK_BOT_TOKEN"
	EnvTeamID   = "SLACK_TEAM_ID"
	EnvAPIURL   = "SLACK_API_URL"
)

const (
	// Dir is the directory name under XDG_CONFIG_HOME.
	Dir = "slackfn"
	// File is the config file name.
	File = "config.yml"
)

// Config is the on-disk configuration.
type Config struct {
	BotToken string `yaml:"bot_token,omitempty"`
	TeamID   string `yaml:"team_id,omitempty"`
	// APIURL overrides the Slack API root; empty means the default.
	APIURL string `yaml:"api_url,omitempty"`
}

// DefaultPath returns $XDG_CONFIG_HOME/slackfn/config.yml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset. It returns "" if neither is known.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, Dir, File)
}

// LoadDotEnv loads a .env file from the working directory into the
// environment, if there is one. Variables already set are left alone.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "failed to load .env")
	}

	return nil
}

// Load reads the config file at path, then applies environment overrides. An
// empty path means DefaultPath, which need not exist; an explicit path must.
func Load(path string) (*Config, error) {
	optional := path == ""
	if optional {
		path = DefaultPath()
	}

	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "failed to parse %s", path)
			}
		case optional && errors.Is(err, os.ErrNotExist):
		default:
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}
	}

	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvBotToken); v != "" {
		c.BotToken = v
	}

	if v := os.Getenv(EnvTeamID); v != "" {
		c.TeamID = v
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
}

// Validate reports the first missing credential.
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return errors.Errorf("no bot token: set %s or bot_token in %s", EnvBotToken, File)
	}

	if c.TeamID == "" {
		return errors.Errorf("no team ID: set %s or team_id in %s", EnvTeamID, File)
	}

	return nil
}
