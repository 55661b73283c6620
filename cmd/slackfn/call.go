// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/theckman/slackfn"
	"github.com/theckman/slackfn/internal/json"
)

var (
	callArgsJSON string
	callArgs     []string
	callPretty   bool
)

var callCmd = &cobra.Command{
	Use:   "call <function>",
	Short: "Call a function by name",
	Long: `Call one function by name and print the Slack response.

Arguments come from --args, a JSON object, and then from any number of --arg
flags, which take precedence. --arg key=value passes value as a string, or
null when value is the literal null; --arg key:=value parses value as JSON.

Every parameter must be given, optional ones as null to use their default.
Run "slackfn catalog" for the list of functions and their parameters.

Examples:
  slackfn call listChannels --arg limit=50 --arg cursor=null
  slackfn call postMessage --args '{"channelId":"C123","text":"hello"}'
  slackfn call getChannelHistory --arg channelId=C123 --arg limit:=5`,
	Args: cobra.ExactArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().StringVar(&callArgsJSON, "args", "", "arguments as a JSON object")
	callCmd.Flags().StringArrayVar(&callArgs, "arg", nil, "argument as key=value or key:=json (repeatable)")
	callCmd.Flags().BoolVar(&callPretty, "pretty", false, "indent the JSON output")
	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	in, err := parseArgs(callArgsJSON, callArgs)
	if err != nil {
		return err
	}

	fns, logger, err := setup()
	if err != nil {
		return err
	}

	defer func() { _ = logger.Sync() }()

	return call(cmd.Context(), os.Stdout, fns, args[0], in, callPretty)
}

func call(ctx context.Context, w io.Writer, fns *slackfn.Functions, name string, in map[string]interface{}, pretty bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := fns.Invoke(ctx, name, in)
	if err != nil {
		return err
	}

	if !pretty {
		_, err = fmt.Fprintln(w, resp.Text)
		return err
	}

	v, err := resp.Decode()
	if err != nil {
		return err
	}

	p, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to format response")
	}

	_, err = fmt.Fprintln(w, string(p))
	return err
}

// parseArgs merges the --args object with the --arg flags.
func parseArgs(obj string, kvs []string) (map[string]interface{}, error) {
	out := make(map[string]interface{})

	if strings.TrimSpace(obj) != "" {
		if err := json.Unmarshal([]byte(obj), &out); err != nil {
			return nil, errors.Wrap(err, "--args must be a JSON object")
		}

		// "null" decodes to a nil map
		if out == nil {
			out = make(map[string]interface{})
		}
	}

	for _, kv := range kvs {
		i := strings.IndexByte(kv, '=')
		if i < 1 {
			return nil, errors.Errorf("invalid --arg %q: want key=value or key:=json", kv)
		}

		key, val := kv[:i], kv[i+1:]

		if strings.HasSuffix(key, ":") {
			key = strings.TrimSuffix(key, ":")
			if key == "" {
				return nil, errors.Errorf("invalid --arg %q: empty key", kv)
			}

			var v interface{}
			if err := json.Unmarshal([]byte(val), &v); err != nil {
				return nil, errors.Wrapf(err, "invalid JSON for --arg %s", key)
			}

			out[key] = v
			continue
		}

		if val == "null" {
			out[key] = nil
			continue
		}

		out[key] = val
	}

	return out, nil
}
