// Package main provides the schemakit binary entry point. It builds schema
// documents from YAML shorthand files and emits the materialized result.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	schemakit "github.com/schemakit/schemakit"
	"github.com/schemakit/schemakit/shorthand"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "schemakit",
		Short:         "Build JSON-Schema-like documents from YAML shorthand",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newBuildCmd())
	return root
}

func newBuildCmd() *cobra.Command {
	var (
		file   string
		out    string
		format string
		indent int
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a schema document from a shorthand file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			node, err := shorthand.Import(data)
			if err != nil {
				return err
			}
			doc := node.Materialize()

			var encoded []byte
			switch format {
			case "json":
				if indent > 0 {
					encoded, err = schemakit.EncodeJSONIndent(doc, strings.Repeat(" ", indent))
				} else {
					encoded, err = schemakit.EncodeJSON(doc)
				}
				if err == nil {
					encoded = append(encoded, '\n')
				}
			case "yaml":
				encoded, err = schemakit.EncodeYAML(doc)
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(encoded)
				return err
			}
			return os.WriteFile(out, encoded, 0o644)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "shorthand YAML file to build (required)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	cmd.Flags().IntVar(&indent, "indent", 2, "JSON indent width, 0 for compact")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
