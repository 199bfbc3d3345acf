package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/KaramelBytes/tidyweek-cli/internal/prompt"
	"github.com/KaramelBytes/tidyweek-cli/internal/section"
	"github.com/KaramelBytes/tidyweek-cli/internal/utils"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const (
	yearQuestion = "What year was the Tidy dataset released? (e.g. 2025): "
	monthTitle   = "Which month was it released? (e.g. type 1 for January)"
	nameQuestion = "Give the section a name: "
)

var (
	newYear   string
	newMonth  int
	newName   string
	newDryRun bool
)

// sectionInput carries answers supplied up front; nil fields are prompted for.
type sectionInput struct {
	year   *string
	month  *int
	name   *string
	dryRun bool
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new section, prompting for anything not given as a flag",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := sectionInput{dryRun: newDryRun}
		f := cmd.Flags()
		if f.Changed("year") {
			in.year = &newYear
		}
		if f.Changed("month") {
			in.month = &newMonth
		}
		if f.Changed("name") {
			in.name = &newName
		}
		return runNewSection(cmd, in)
	},
}

// runNewSection collects year, month and name in that order, then scaffolds.
// An invalid month aborts before anything is written.
func runNewSection(cmd *cobra.Command, in sectionInput) error {
	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())

	var (
		year, name string
		month      int
		err        error
	)
	if in.year != nil {
		year = *in.year
	} else if year, err = p.Ask(yearQuestion); err != nil {
		return fmt.Errorf("read year: %w", err)
	}
	if in.month != nil {
		month = *in.month
	} else if month, err = p.Select(monthTitle, section.Months()); err != nil {
		return fmt.Errorf("read month: %w", err)
	}
	if _, err := section.MonthName(month); err != nil {
		return fmt.Errorf("read month: %w", err)
	}
	if in.name != nil {
		name = *in.name
	} else if name, err = p.Ask(nameQuestion); err != nil {
		return fmt.Errorf("read section name: %w", err)
	}

	sec, err := section.New(year, month, name)
	if err != nil {
		return err
	}
	s, err := newScaffolder()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if in.dryRun {
		l := s.Plan(sec)
		fmt.Fprintf(out, "Would create %s:\n", l.Dir)
		for _, d := range l.Subdirs {
			fmt.Fprintf(out, "  %s/\n", d)
		}
		fmt.Fprintf(out, "  %s\n", l.Readme)
		return nil
	}

	l, err := s.Scaffold(sec)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ Section scaffolded: %s\n", l.Dir)
	return nil
}

// projectsRoot resolves the configured projects root to a directory path.
// A relative root sits under the working directory unless search_parents
// is enabled.
func projectsRoot(fs afero.Fs) (string, error) {
	root, err := utils.ExpandHome(cfg.ProjectsRoot)
	if err != nil {
		return "", err
	}
	if cfg.SearchParents {
		return utils.FindProjectsRoot(fs, "", root)
	}
	return filepath.Abs(root)
}

func newScaffolder() (*section.Scaffolder, error) {
	fs := afero.NewOsFs()
	root, err := projectsRoot(fs)
	if err != nil {
		return nil, err
	}
	s := section.NewScaffolder(fs, root, logger)
	if len(cfg.Subdirs) > 0 {
		s.Subdirs = cfg.Subdirs
	}
	if cfg.ReadmeName != "" {
		s.ReadmeName = cfg.ReadmeName
	}
	return s, nil
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVar(&newYear, "year", "", "release year of the dataset (prompted if omitted)")
	newCmd.Flags().IntVar(&newMonth, "month", 0, "release month as 1-12 (prompted if omitted)")
	newCmd.Flags().StringVar(&newName, "name", "", "section name (prompted if omitted)")
	newCmd.Flags().BoolVar(&newDryRun, "dry-run", false, "print the layout without creating anything")
}
