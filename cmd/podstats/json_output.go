package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeJSONLines encodes each document on its own line, the layout chart
// tooling reads one episode at a time.
func writeJSONLines[T any](cmd *cobra.Command, docs []T) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// writeStructured writes v in the requested machine-readable format.
func writeStructured(cmd *cobra.Command, format string, v any) error {
	switch format {
	case "json":
		return writeJSON(cmd, v)
	case "yaml":
		return writeYAML(cmd, v)
	default:
		return fmt.Errorf("unsupported output format %q (use json or yaml)", format)
	}
}
