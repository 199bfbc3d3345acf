package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/tidyweek-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set tidyweek configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "projects_root: %s\n", cfg.ProjectsRoot)
		fmt.Fprintf(out, "subdirs: %s\n", strings.Join(cfg.Subdirs, ","))
		fmt.Fprintf(out, "readme_name: %s\n", cfg.ReadmeName)
		fmt.Fprintf(out, "search_parents: %t\n", cfg.SearchParents)
		fmt.Fprintf(out, "log_level: %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "log_format: %s\n", cfg.LogFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		// Reload so values overridden by flags are not persisted.
		c, err := cfgpkg.Load(cfgFile)
		if err != nil {
			return err
		}
		switch key {
		case "projects_root":
			if val == "" {
				return fmt.Errorf("projects_root must not be empty")
			}
			c.ProjectsRoot = val
		case "subdirs":
			var dirs []string
			for _, d := range strings.Split(val, ",") {
				if d = strings.TrimSpace(d); d != "" {
					dirs = append(dirs, d)
				}
			}
			if len(dirs) == 0 {
				return fmt.Errorf("subdirs needs at least one directory name")
			}
			c.Subdirs = dirs
		case "readme_name":
			if val == "" {
				return fmt.Errorf("readme_name must not be empty")
			}
			c.ReadmeName = val
		case "search_parents":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for search_parents: %v", val)
			}
			c.SearchParents = b
		case "log_level":
			switch strings.ToLower(val) {
			case "debug", "info", "warn", "error":
				c.LogLevel = strings.ToLower(val)
			default:
				return fmt.Errorf("invalid log_level: %s (use debug, info, warn or error)", val)
			}
		case "log_format":
			switch strings.ToLower(val) {
			case "text", "json":
				c.LogFormat = strings.ToLower(val)
			default:
				return fmt.Errorf("invalid log_format: %s (use text or json)", val)
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		cfg = c
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
