package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONImpactWriter writes impact reports as JSON.
type JSONImpactWriter struct{}

// JSONImpactReport is the JSON output structure for an impact report.
type JSONImpactReport struct {
	RepoPath      string   `json:"repo"`
	WorkspacePath string   `json:"workspace"`
	BaseRef       string   `json:"baseRef"`
	GeneratedAt   string   `json:"generatedAt"`
	ChangedFiles  int      `json:"changedFiles"`
	TestAll       bool     `json:"testAll"`
	Packages      []string `json:"packages"`
}

// Write outputs the impact report as JSON.
func (w *JSONImpactWriter) Write(report *ImpactReport, options OutputOptions) error {
	packages := report.Packages
	if packages == nil {
		packages = []string{}
	}

	jsonReport := JSONImpactReport{
		RepoPath:      report.RepoRoot,
		WorkspacePath: report.WorkspaceRoot,
		BaseRef:       report.BaseRef,
		GeneratedAt:   report.GeneratedAt.Format(time.RFC3339),
		ChangedFiles:  len(report.ChangedFiles),
		TestAll:       report.TestAll,
		Packages:      packages,
	}

	encoder := json.NewEncoder(os.Stdout)
	if options.OutputPath != "" {
		file, err := os.Create(options.OutputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		encoder = json.NewEncoder(file)
	}

	encoder.SetIndent("", "  ")
	if err := encoder.Encode(jsonReport); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
