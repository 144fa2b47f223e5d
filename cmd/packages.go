package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"difftrace/internal/graph"
	"difftrace/internal/output"
)

// PackagesCmd creates the packages command: inspect the workspace registry.
func PackagesCmd() *cli.Command {
	return &cli.Command{
		Name:   "packages",
		Usage:  "List the packages in the workspace registry",
		Flags:  commonFlags(),
		Action: packagesAction,
	}
}

func packagesAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	backend := c.String("backend")
	if backend == "" {
		backend = cfg.Git.Backend
	}
	src, err := newSource(backend)
	if err != nil {
		return err
	}

	repoRoot, err := src.RepoRoot(c.Context, c.String("repo"))
	if err != nil {
		return err
	}

	workspaceRoot := resolveWorkspaceRoot(repoRoot, c.String("workspace"), cfg.Workspace.Root)
	packages, err := graph.Load(workspaceRoot)
	if err != nil {
		return fmt.Errorf("failed to load workspace packages: %w", err)
	}

	names := make([]string, 0, len(packages))
	for name := range packages {
		names = append(names, name)
	}
	sort.Strings(names)

	if getOutputFormat(c.String("format")) == output.FormatJSON {
		items := make([]graph.Package, 0, len(names))
		for _, name := range names {
			items = append(items, packages[name])
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(items)
	}

	color.Green("Workspace packages (%d)", len(packages))
	fmt.Printf("Workspace: %s\n\n", workspaceRoot)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Name\tSource path")
	for _, name := range names {
		fmt.Fprintf(tw, "%s\t%s\n", name, packages[name].SourcePath)
	}
	return tw.Flush()
}
