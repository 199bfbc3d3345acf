package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List scaffolded sections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newScaffolder()
		if err != nil {
			return err
		}
		sections, err := s.List()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(sections) == 0 {
			fmt.Fprintln(out, "(no sections)")
			return nil
		}
		for _, sec := range sections {
			fmt.Fprintf(out, "- %s\n", sec)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
