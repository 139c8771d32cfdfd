package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_ports.go -package=mocks github.com/abscore/abscore/internal/domain ToolRunner,SequenceReader,MeasurementCache

// ConfigLoader loads the scoring configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// ToolInvocation is a fully expanded external tool call.
type ToolInvocation struct {
	Tool    string
	Command string
	Args    []string
	Dir     string
	Env     map[string]string
	Outputs map[string]string
	Timeout time.Duration
}

// ToolOutput is the raw capture of one tool invocation: combined stdout and
// stderr, plus the contents of any declared output files that exist.
type ToolOutput struct {
	Text     string
	Files    map[string]string
	ExitCode int
}

// File returns the content of a named output file and whether it was read.
func (o ToolOutput) File(name string) (string, bool) {
	v, ok := o.Files[name]
	return v, ok
}

// ToolRunner invokes external tools. A non-zero exit is reported in
// ToolOutput.ExitCode, not as an error, so the caller can still parse output.
type ToolRunner interface {
	Run(ctx context.Context, inv ToolInvocation) (ToolOutput, error)
	LookPath(command string) (string, error)
}

// ToolStatus reports whether a configured tool can be invoked.
type ToolStatus struct {
	Tool      string `json:"tool"`
	Command   string `json:"command"`
	Path      string `json:"path,omitempty"`
	Parser    string `json:"parser"`
	Required  bool   `json:"required"`
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

// SequenceReader loads the FASTA records of a design.
type SequenceReader interface {
	ReadFASTA(path string) ([]SequenceRecord, error)
}

// SequenceRecord is one FASTA entry.
type SequenceRecord struct {
	Header   string `json:"header"`
	Sequence string `json:"sequence"`
}

// SubmissionSource discovers the designs under a submissions root.
type SubmissionSource interface {
	Discover(root string) ([]DesignInput, error)
}

// RunHistory persists batch runs and their rows.
type RunHistory interface {
	Save(summary RunSummary, rows []ResultRow) (int64, error)
	List(limit int) ([]RunSummary, error)
	Rows(runID int64) ([]ResultRow, error)
}

// GitInfo reports version-control provenance for a directory.
type GitInfo interface {
	CommitHash(path string) (string, error)
}

// MeasurementCache keeps the raw metrics of designs whose inputs have not
// changed since they were measured. key identifies the tool configuration
// the metrics were produced with.
type MeasurementCache interface {
	Load(d DesignInput, key string) (*RawMetrics, error)
	Save(d DesignInput, key string, raw RawMetrics) error
}

// MetricsSource reads previously measured designs, e.g. a raw-metrics CSV.
type MetricsSource interface {
	ReadMetrics(path string) ([]MeasuredDesign, error)
}
