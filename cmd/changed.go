package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"difftrace/internal/graph"
	"difftrace/internal/impact"
	"difftrace/internal/output"
)

// ChangedCmd creates the changed command: the change-impact pipeline.
func ChangedCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:    "base",
			Aliases: []string{"b"},
			Usage:   "Base ref to diff against (default: from config, or origin/main)",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns of changed files to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns of changed files to exclude (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "root-trigger",
			Usage: "Workspace-root file name that triggers testing all packages (overrides config)",
		},
		&cli.StringSliceFlag{
			Name:  "dir-trigger",
			Usage: "Path prefix that triggers testing all packages (overrides config)",
		},
	)

	return &cli.Command{
		Name:   "changed",
		Usage:  "List workspace packages affected by changes since a base ref",
		Flags:  flags,
		Action: changedAction,
	}
}

func changedAction(c *cli.Context) error {
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

	ctx := c.Context

	repoRoot, err := src.RepoRoot(ctx, c.String("repo"))
	if err != nil {
		return err
	}
	log.Debug("resolved repository root", "path", repoRoot)

	baseRef := c.String("base")
	if baseRef == "" {
		baseRef = cfg.Git.DefaultBase
	}

	changedFiles, err := src.ChangedFiles(ctx, baseRef, repoRoot)
	if err != nil {
		return err
	}
	log.Debug("extracted changed files", "base", baseRef, "count", len(changedFiles))

	changedFiles = impact.Filter(changedFiles, cfg.Filters.Include, cfg.Filters.Exclude)

	workspaceRoot := resolveWorkspaceRoot(repoRoot, c.String("workspace"), cfg.Workspace.Root)
	workspaceFiles := impact.Relativize(changedFiles, repoRoot, workspaceRoot)
	log.Debug("relativized to workspace", "root", workspaceRoot, "count", len(workspaceFiles))

	packages, err := graph.Load(workspaceRoot)
	if err != nil {
		return fmt.Errorf("failed to load workspace packages: %w", err)
	}
	log.Debug("loaded workspace registry", "packages", len(packages))

	result := impact.MapImpact(workspaceFiles, packages, triggerOptions(c, cfg))

	report := &output.ImpactReport{
		RepoRoot:      repoRoot,
		WorkspaceRoot: workspaceRoot,
		BaseRef:       baseRef,
		ChangedFiles:  workspaceFiles,
		Packages:      result.PackageNames(),
		TestAll:       result.TestAll,
		GeneratedAt:   time.Now(),
	}

	format := getOutputFormat(c.String("format"))
	writer := output.NewImpactReportWriter(format)
	return writer.Write(report, output.OutputOptions{
		Format:     format,
		OutputPath: c.String("output"),
	})
}

// resolveWorkspaceRoot picks the workspace root: the flag wins over the
// config, and a relative value is anchored at the repository root.
func resolveWorkspaceRoot(repoRoot, flagValue, configValue string) string {
	ws := flagValue
	if ws == "" {
		ws = configValue
	}
	if ws == "" {
		return repoRoot
	}
	if filepath.IsAbs(ws) {
		return ws
	}
	return filepath.Join(repoRoot, ws)
}
