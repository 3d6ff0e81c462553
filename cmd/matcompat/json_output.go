package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// useJSON reports whether the command should emit JSON. The flag wins when
// set; otherwise the configured default output format decides.
func useJSON(cmd *cobra.Command, ctx *commandContext, jsonFlag bool) bool {
	if cmd.Flags().Changed("json") {
		return jsonFlag
	}
	if cfg, err := ctx.ensureConfig(); err == nil && cfg != nil {
		return cfg.Output.Format == "json"
	}
	return jsonFlag
}
