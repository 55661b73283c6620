// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package main

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theckman/slackfn"
	"github.com/theckman/slackfn/internal/json"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the functions as MCP tools over stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout with one tool per
function. Tool input schemas are the function schemas from "slackfn catalog
--schema", and tool results are the Slack response as JSON text.

Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	fns, logger, err := setup()
	if err != nil {
		return err
	}

	defer func() { _ = logger.Sync() }()

	s, err := newMCPServer(fns, logger)
	if err != nil {
		return err
	}

	logger.Info("serving MCP over stdio", zap.Int("tools", len(slackfn.Definitions())))

	return server.ServeStdio(s)
}

// newMCPServer registers every function as a tool.
func newMCPServer(fns *slackfn.Functions, logger *zap.Logger) (*server.MCPServer, error) {
	s := server.NewMCPServer("slackfn", Version, server.WithToolCapabilities(false))

	for _, d := range fns.Definitions() {
		schema, err := json.Marshal(d.Schema().Function.Parameters)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode schema for %s", d.Name)
		}

		s.AddTool(mcp.NewToolWithRawSchema(d.Name, d.Description, schema), toolHandler(fns, d.Name, logger))
	}

	return s, nil
}

// toolHandler dispatches a tool call to the function called name. Failures
// are reported to the client as tool errors rather than protocol errors.
func toolHandler(fns *slackfn.Functions, name string, logger *zap.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resp, err := fns.Invoke(ctx, name, req.GetArguments())
		if err != nil {
			logger.Warn("tool call failed", zap.String("tool", name), zap.Error(err))
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(resp.Text), nil
	}
}
