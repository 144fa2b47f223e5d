package output

// CIImpactWriter writes impact reports as NDJSON (one JSON object per line)
// for CI pipelines: a summary line followed by one line per package.
type CIImpactWriter struct{}

// CISummary is the first line of CI output.
type CISummary struct {
	Type         string `json:"type"`
	TestAll      bool   `json:"testAll"`
	PackageCount int    `json:"packageCount"`
	ChangedFiles int    `json:"changedFiles"`
}

// CIPackageEntry represents a single directly-changed package.
type CIPackageEntry struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// Write outputs the impact report as NDJSON.
func (w *CIImpactWriter) Write(report *ImpactReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	summary := CISummary{
		Type:         "summary",
		TestAll:      report.TestAll,
		PackageCount: len(report.Packages),
		ChangedFiles: len(report.ChangedFiles),
	}
	if err := writeNDJSONLine(out, summary); err != nil {
		return err
	}

	for _, name := range report.Packages {
		entry := CIPackageEntry{Type: "package", Name: name}
		if err := writeNDJSONLine(out, entry); err != nil {
			return err
		}
	}

	return nil
}
