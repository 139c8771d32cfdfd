package cli

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/abscore/abscore/internal/adapters/outbound/rowwriter"
	"github.com/spf13/cobra"
)

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatForPath picks the output format for a file: an explicit --format
// wins, otherwise the extension decides, falling back to csv.
func formatForPath(path, format string, explicit bool) string {
	if explicit {
		return format
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, f := range rowwriter.Formats() {
		if f == ext && f != rowwriter.FormatTable {
			return f
		}
	}
	return rowwriter.FormatCSV
}
