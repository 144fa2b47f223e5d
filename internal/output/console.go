package output

import (
	"fmt"

	"github.com/fatih/color"
)

// ConsoleImpactWriter writes impact reports to the console.
type ConsoleImpactWriter struct{}

// Write outputs the impact report in human-readable form.
func (w *ConsoleImpactWriter) Write(report *ImpactReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	color.New(color.FgGreen).Fprintln(out, "Change Impact Analysis")
	fmt.Fprintf(out, "Repository: %s\n", report.RepoRoot)
	if report.WorkspaceRoot != report.RepoRoot {
		fmt.Fprintf(out, "Workspace:  %s\n", report.WorkspaceRoot)
	}
	fmt.Fprintf(out, "Base ref:   %s\n", report.BaseRef)
	fmt.Fprintf(out, "Changed files in workspace: %d\n\n", len(report.ChangedFiles))

	if report.TestAll {
		color.New(color.FgYellow).Fprintln(out, "Trigger matched: test all packages")
	}

	switch {
	case len(report.Packages) == 0 && !report.TestAll:
		fmt.Fprintln(out, "No packages affected")
	case len(report.Packages) > 0:
		fmt.Fprintf(out, "Directly changed packages (%d):\n", len(report.Packages))
		for _, name := range report.Packages {
			fmt.Fprintf(out, "  %s\n", name)
		}
	}

	return nil
}
