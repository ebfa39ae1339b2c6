package cli

import (
	"github.com/spf13/cobra"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List the knowledge domains in the index",
	Long: `List the domains registered in the domain index, numbered from 1.

The numbers can be used in place of topic ids in every command that takes
a domain reference.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return showDomains(commandContext(cmd), newPrinter(cmd.OutOrStdout()))
	},
}

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List topic ids present in storage",
	Long: `List every topic id that has at least one record set in storage,
whether or not it is registered in the domain index.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return showTopics(commandContext(cmd), newPrinter(cmd.OutOrStdout()))
	},
}

func init() {
	rootCmd.AddCommand(domainsCmd)
	rootCmd.AddCommand(topicsCmd)
}
