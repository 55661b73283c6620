// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/theckman/slackfn"
	"github.com/theckman/slackfn/internal/json"
)

var catalogSchema bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the function definitions",
	Long: `Print the definition of every function as JSON.

With --schema, print them as OpenAI-compatible tool schemas instead.

Examples:
  slackfn catalog
  slackfn catalog --schema`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeCatalog(os.Stdout, catalogSchema)
	},
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogSchema, "schema", false, "print function schemas instead of definitions")
	rootCmd.AddCommand(catalogCmd)
}

func writeCatalog(w io.Writer, schema bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if schema {
		return enc.Encode(slackfn.Schemas())
	}

	return enc.Encode(slackfn.Definitions())
}
