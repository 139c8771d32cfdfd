package submission

import (
	"fmt"
	"os"

	"github.com/abscore/abscore/internal/domain"
	"github.com/abscore/abscore/internal/domain/identity"
)

// FASTAReader implements domain.SequenceReader from files on disk.
type FASTAReader struct{}

// NewFASTAReader creates a FASTAReader.
func NewFASTAReader() *FASTAReader { return &FASTAReader{} }

func (FASTAReader) ReadFASTA(path string) ([]domain.SequenceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := identity.ParseFASTA(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}
