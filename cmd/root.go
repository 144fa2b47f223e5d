package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"difftrace/config"
	"difftrace/internal/git"
	"difftrace/internal/impact"
	"difftrace/internal/output"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "difftrace",
		Usage:   "Selective test execution for monorepos, driven by git changes",
		Version: "0.1.0",
		Commands: []*cli.Command{
			ChangedCmd(),
			PackagesCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.WarnLevel)
			}
			return nil
		},
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Directory inside the repository to analyze",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "workspace",
			Aliases: []string{"w"},
			Usage:   "Workspace root, relative to the repository root (default: from config, or the repo root)",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "Repository query backend (cli, gogit)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, ci)",
			Value:   "console",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	case "ci", "ndjson":
		return output.FormatCI
	default:
		return output.FormatConsole
	}
}

// newSource creates the repository query backend.
func newSource(backend string) (git.Source, error) {
	switch backend {
	case "", "cli":
		return git.NewCLISource(), nil
	case "gogit":
		return git.NewGoGitSource(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (expected cli or gogit)", backend)
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply filter overrides from CLI
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}

	return cfg, nil
}

// triggerOptions converts configured trigger lists into mapper options.
// CLI overrides replace the configured lists wholesale.
func triggerOptions(c *cli.Context, cfg *config.Config) impact.Options {
	rootFiles := cfg.Triggers.RootFiles
	if c.IsSet("root-trigger") {
		rootFiles = c.StringSlice("root-trigger")
	}
	dirPrefixes := cfg.Triggers.DirPrefixes
	if c.IsSet("dir-trigger") {
		dirPrefixes = c.StringSlice("dir-trigger")
	}

	opts := impact.Options{DirTriggers: dirPrefixes}
	if rootFiles != nil {
		opts.RootTriggers = make(map[string]struct{}, len(rootFiles))
		for _, name := range rootFiles {
			opts.RootTriggers[name] = struct{}{}
		}
	}
	return opts
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
