// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

// Command slackfn exposes the slackfn functions on the command line and as an
// MCP server over stdio.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theckman/slackfn"
	"github.com/theckman/slackfn/internal/config"
	"github.com/theckman/slackfn/slackapi"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	configPath string
	debug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slackfn",
	Short: "Slack Web API calls as tool-calling functions",
	Long: `slackfn exposes a small set of Slack Web API calls (channels, messages,
threads, reactions, users) as named functions for LLM tool calling.

Credentials come from the config file (see --config), a .env file in the
working directory, or the SLACK_BOT_TOKEN and SLACK_TEAM_ID environment
variables, in increasing order of precedence.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadDotEnv()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/slackfn/config.yml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log Slack requests to stderr")
	rootCmd.Version = Version
}

// newLogger returns a logger writing to stderr; stdout is reserved for
// command output and the MCP transport.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg.Build()
}

// newFunctions builds the functions from the loaded configuration.
func newFunctions(cfg *config.Config, logger *zap.Logger) (*slackfn.Functions, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []slackapi.Option{slackapi.WithLogger(logger)}

	if cfg.APIURL != "" {
		opts = append(opts, slackapi.WithBaseURL(cfg.APIURL))
	}

	fns, err := slackfn.NewFromCredentials(cfg.TeamID, cfg.BotToken, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build Slack client")
	}

	return fns, nil
}

// setup loads the configuration and logger shared by call and serve.
func setup() (*slackfn.Functions, *zap.Logger, error) {
	logger, err := newLogger(debug)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to build logger")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	fns, err := newFunctions(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	return fns, logger, nil
}
