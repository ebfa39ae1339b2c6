package cli

import (
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [domain] [csv|json]",
	Short: "Export a domain as CSV or JSON",
	Long: `Export a domain into the archive as topics/<topic>-export.<format>.

JSON exports carry entities, relationships and sources. CSV exports hold one
row per entity and per relationship under a type,id,name,desc header;
relationship rows put the source, type and target in the last three columns.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportTopic(commandContext(cmd), newPrinter(cmd.OutOrStdout()), args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
