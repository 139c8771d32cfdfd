package rowwriter

import (
	"fmt"
	"io"

	"github.com/abscore/abscore/internal/domain"
	"github.com/parquet-go/parquet-go"
)

// writeParquet writes rows with the schema inferred from ResultRow's parquet
// tags. Absent raw values are stored as nulls.
func writeParquet(w io.Writer, rows []domain.ResultRow) error {
	writer := parquet.NewGenericWriter[domain.ResultRow](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	return writer.Close()
}
