package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dokugit/dokugit/config"
	"github.com/dokugit/dokugit/internal/attic"
	"github.com/dokugit/dokugit/internal/changelog"
	"github.com/dokugit/dokugit/internal/dokuwiki"
	"github.com/dokugit/dokugit/internal/gitrepo"
	"github.com/dokugit/dokugit/internal/replay"
	"github.com/dokugit/dokugit/internal/report"
)

func convertAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowAppHelp(c)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	return convert(cfg, c.Args().Get(0), c.Bool("dry-run"), os.Stdout)
}

// convert runs the whole pipeline: aggregate, order, reconcile, build.
// Each phase finishes before the next starts and owns its data until the
// hand-off.
func convert(cfg *config.Config, datadir string, dryRun bool, out io.Writer) error {
	store, err := dokuwiki.Open(datadir)
	if err != nil {
		return err
	}

	records, err := changelog.Load(store.MetaDir(), changelog.LoadOptions{
		Reserved: cfg.ReservedPages,
		Include:  cfg.Filters.Include,
		Exclude:  cfg.Filters.Exclude,
	})
	if err != nil {
		return err
	}
	log.Printf("aggregated %d changelog records from %s", len(records), store.MetaDir())

	changelog.Sort(records)

	reconciler := replay.NewReconciler(attic.NewTree(store.AtticDir()), cfg.Identity.PlaceholderAuthor)
	plan, warnings := reconciler.Reconcile(records)
	orphans, err := reconciler.FindOrphans(records)
	if err != nil {
		return fmt.Errorf("scanning attic: %w", err)
	}
	warnings = append(warnings, orphans...)

	if dryRun {
		replay.PrintPlan(out, plan)
		report.Print(out, summarize(records, countCommits(plan), warnings), warnings)
		return nil
	}

	backend := gitrepo.NewGitBackend(cfg.Output.Directory)
	builder := gitrepo.NewBuilder(cfg.Output.Directory, backend, gitrepo.ConverterIdentity{
		Name:         cfg.Identity.ConverterName,
		Email:        cfg.Identity.ConverterEmail,
		FinalMessage: cfg.Identity.FinalMessage,
	})
	commits, err := builder.Run(plan)
	if err != nil {
		return err
	}
	log.Printf("created repository in %s", cfg.Output.Directory)

	report.Print(out, summarize(records, commits, warnings), warnings)
	return nil
}

// countCommits tallies the commits a plan would make, not counting the
// bracketing init and closing commits the builder adds.
func countCommits(plan []replay.Instruction) int {
	n := 0
	for _, in := range plan {
		if in.Kind == replay.Commit {
			n++
		}
	}
	return n
}

func summarize(records []changelog.ChangeRecord, commits int, warnings []report.Warning) report.Summary {
	pages := map[string]bool{}
	for _, r := range records {
		pages[r.PageID] = true
	}
	return report.Summary{
		Pages:    len(pages),
		Records:  len(records),
		Commits:  commits,
		Warnings: len(warnings),
	}
}
