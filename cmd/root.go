package cmd

import (
	"fmt"
	"log/slog"
	"os"

	cfgpkg "github.com/KaramelBytes/tidyweek-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile          string
	debug            bool
	flagProjectsRoot string

	// Loaded configuration
	cfg *cfgpkg.Global

	logger = newLogger(os.Stderr, "warn", "text")
)

var rootCmd = &cobra.Command{
	Use:   "tidyweek",
	Short: "Scaffold a section for a weekly Tidy dataset exercise",
	Long: `tidyweek prompts for the year and month a Tidy dataset was released and a
section name, then creates projects/<year>/<month>/<name>/ with r/, python/
and static/ directories plus an empty README.md.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNewSection(cmd, sectionInput{})
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)

	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.tidyweek/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagProjectsRoot, "projects-root", "", "directory holding year/month/section folders (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Defaults()
	}
	cfg = c

	// Apply CLI overrides if provided
	if rootCmd.PersistentFlags().Changed("projects-root") && flagProjectsRoot != "" {
		cfg.ProjectsRoot = flagProjectsRoot
	}
	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	logger = newLogger(os.Stderr, level, cfg.LogFormat)
	slog.SetDefault(logger)
	logger.Debug("config loaded", "projects_root", cfg.ProjectsRoot, "subdirs", cfg.Subdirs)
}
