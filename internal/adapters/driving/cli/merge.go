package cli

import (
	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [domain] [domain...] [new-id]",
	Short: "Merge domains into a new topic",
	Long: `Merge two or more domains into a new topic and register it in the
domain index.

Entities are deduplicated by id, the first domain listed wins. Relationships,
sources and media are concatenated, so merging the same domains twice
duplicates them.

Example:
  cartographer merge 1 2 physical-chemistry`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		refs, newID := args[:len(args)-1], args[len(args)-1]
		return mergeTopics(commandContext(cmd), newPrinter(cmd.OutOrStdout()), refs, newID)
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
