package cli

import (
	"github.com/spf13/cobra"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [domain]",
	Short: "Show a domain's entities, relationships, clusters and sources",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return exploreTopic(commandContext(cmd), newPrinter(cmd.OutOrStdout()), args[0])
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [domain]",
	Short: "Report the most connected entity of a domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return analyzeTopic(commandContext(cmd), newPrinter(cmd.OutOrStdout()), args[0])
	},
}

var clustersCmd = &cobra.Command{
	Use:   "clusters [domain]",
	Short: "List entities targeted by more than one relationship",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showClusters(commandContext(cmd), newPrinter(cmd.OutOrStdout()), args[0])
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend [entity-id] [domain]",
	Short: "Recommend entities related to an entity",
	Long: `List the distinct neighbours of an entity, following relationships in
either direction, in the order they first appear.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return recommendFor(commandContext(cmd), newPrinter(cmd.OutOrStdout()), args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(clustersCmd)
	rootCmd.AddCommand(recommendCmd)
}
