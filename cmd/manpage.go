package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var manpageCmd = &cobra.Command{
	Use:     "manpage",
	Aliases: []string{"info"},
	Short:   "Print the manual page",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doc.GenMan(rootCmd, &doc.GenManHeader{
			Title:   "DECORECO",
			Section: "1",
			Source:  "decoreco " + version,
		}, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(manpageCmd)
}
