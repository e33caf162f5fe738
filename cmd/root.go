// Package cmd wires the conversion pipeline behind the command line
// interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dokugit/dokugit/config"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "dokugit",
		Usage:     "Convert a DokuWiki data directory into a git repository replaying its edit history",
		Version:   "1.0.0",
		ArgsUsage: "<dokuwiki data directory>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Target directory for the git repository (default: from config)",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print the replay plan and warnings without writing anything",
			},
		},
		Action: convertAction,
	}
}

// loadConfig loads configuration and applies CLI overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if out := c.String("output"); out != "" {
		cfg.Output.Directory = out
	}
	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
