package output

import "time"

// Compile-time interface conformance checks.
var (
	_ ImpactReportWriter = (*ConsoleImpactWriter)(nil)
	_ ImpactReportWriter = (*JSONImpactWriter)(nil)
	_ ImpactReportWriter = (*CIImpactWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole OutputFormat = "console"
	FormatJSON    OutputFormat = "json"
	FormatCI      OutputFormat = "ci"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
}

// ImpactReport holds the result of a change-impact analysis run.
type ImpactReport struct {
	RepoRoot      string
	WorkspaceRoot string
	BaseRef       string
	ChangedFiles  []string // workspace-relative, after filtering
	Packages      []string // directly-changed package names, sorted
	TestAll       bool
	GeneratedAt   time.Time
}

// ImpactReportWriter writes impact analysis reports.
type ImpactReportWriter interface {
	Write(report *ImpactReport, options OutputOptions) error
}

// NewImpactReportWriter creates a report writer for the specified format.
func NewImpactReportWriter(format OutputFormat) ImpactReportWriter {
	switch format {
	case FormatJSON:
		return &JSONImpactWriter{}
	case FormatCI:
		return &CIImpactWriter{}
	default:
		return &ConsoleImpactWriter{}
	}
}
