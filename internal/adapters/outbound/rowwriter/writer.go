package rowwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/abscore/abscore/internal/domain"
)

// Output formats.
const (
	FormatCSV      = "csv"
	FormatJSON     = "json"
	FormatParquet  = "parquet"
	FormatMarkdown = "md"
	FormatHTML     = "html"
	FormatTable    = "table"
)

// Formats lists every format Write accepts.
func Formats() []string {
	return []string{FormatCSV, FormatJSON, FormatParquet, FormatMarkdown, FormatHTML, FormatTable}
}

// Write renders rows to w in the given format. Rows are written in the
// order given; callers rank them first when order matters.
func Write(w io.Writer, format string, rows []domain.ResultRow) error {
	switch strings.ToLower(format) {
	case FormatCSV:
		return writeCSV(w, rows)
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatParquet:
		return writeParquet(w, rows)
	case FormatMarkdown:
		_, err := io.WriteString(w, renderMarkdown(rows))
		return err
	case FormatHTML:
		return writeHTML(w, rows)
	case FormatTable:
		return writeTable(w, rows)
	default:
		return fmt.Errorf("unknown output format %q (want one of %s)", format, strings.Join(Formats(), ", "))
	}
}

// WriteFile writes rows to path, creating parent directories. The table
// format is terminal-only and is refused here.
func WriteFile(path, format string, rows []domain.ResultRow) error {
	if strings.EqualFold(format, FormatTable) {
		return fmt.Errorf("format %q cannot be written to a file", format)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, format, rows); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// writeCSV writes a header row followed by one record per row. Absent raw
// values become empty cells.
func writeCSV(w io.Writer, rows []domain.ResultRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(domain.Columns()); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, rows []domain.ResultRow) error {
	if rows == nil {
		rows = []domain.ResultRow{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}
