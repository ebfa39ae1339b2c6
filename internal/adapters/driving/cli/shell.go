package cli

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// shellCommand is one entry of the interactive dispatch table.
type shellCommand struct {
	usage   string
	summary string
	minArgs int
	maxArgs int // -1 for unbounded
	run     func(ctx context.Context, p *printer, args []string) error
}

// shellOrder fixes the order commands are listed in the help text.
var shellOrder = []string{"domains", "topics", "explore", "analyze", "clusters", "recommend", "merge", "export", "help", "q"}

var shellCommands = map[string]shellCommand{
	"domains": {
		usage:   "domains",
		summary: "List knowledge domains",
		run: func(ctx context.Context, p *printer, _ []string) error {
			return showDomains(ctx, p)
		},
	},
	"topics": {
		usage:   "topics",
		summary: "List topic ids in storage",
		run: func(ctx context.Context, p *printer, _ []string) error {
			return showTopics(ctx, p)
		},
	},
	"explore": {
		usage:   "explore [num]",
		summary: "Explore a domain",
		minArgs: 1,
		maxArgs: 1,
		run: func(ctx context.Context, p *printer, args []string) error {
			return exploreTopic(ctx, p, args[0])
		},
	},
	"analyze": {
		usage:   "analyze [num]",
		summary: "Analyze domain",
		minArgs: 1,
		maxArgs: 1,
		run: func(ctx context.Context, p *printer, args []string) error {
			return analyzeTopic(ctx, p, args[0])
		},
	},
	"clusters": {
		usage:   "clusters [num]",
		summary: "List concept clusters",
		minArgs: 1,
		maxArgs: 1,
		run: func(ctx context.Context, p *printer, args []string) error {
			return showClusters(ctx, p, args[0])
		},
	},
	"recommend": {
		usage:   "recommend [id] [num]",
		summary: "Recommend for entity in domain",
		minArgs: 2,
		maxArgs: 2,
		run: func(ctx context.Context, p *printer, args []string) error {
			return recommendFor(ctx, p, args[0], args[1])
		},
	},
	"merge": {
		usage:   "merge [a] [b] [name]",
		summary: "Merge domains",
		minArgs: 3,
		maxArgs: -1,
		run: func(ctx context.Context, p *printer, args []string) error {
			return mergeTopics(ctx, p, args[:len(args)-1], args[len(args)-1])
		},
	},
	"export": {
		usage:   "export [num] [fmt]",
		summary: "Export domain (csv/json)",
		minArgs: 2,
		maxArgs: 2,
		run: func(ctx context.Context, p *printer, args []string) error {
			return exportTopic(ctx, p, args[0], args[1])
		},
	},
	"help": {
		usage:   "help",
		summary: "Show this list",
	},
	"q": {
		usage:   "q",
		summary: "Quit",
	},
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive explorer",
	Long: `Start an interactive session that lists the knowledge domains and reads
commands until q, quit, exit or end of input.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, _ []string) error {
	in := cmd.InOrStdin()
	return runShellLoop(commandContext(cmd), in, newPrinter(cmd.OutOrStdout()), isTerminal(in))
}

// runShellLoop reads one command per line and dispatches it. Command
// failures are printed and the loop continues.
func runShellLoop(ctx context.Context, in io.Reader, p *printer, prompt bool) error {
	p.header("Akashic Archives Explorer")
	if err := showDomains(ctx, p); err != nil {
		p.renderError(err)
	}
	printShellHelp(p)

	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			p.printf("\nEnter command: ")
		}
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		name, args := strings.ToLower(fields[0]), fields[1:]

		switch name {
		case "q", "quit", "exit":
			return nil
		case "help", "?":
			printShellHelp(p)
			continue
		}

		entry, ok := shellCommands[name]
		if !ok || entry.run == nil {
			p.println("Unknown command.")
			continue
		}
		if len(args) < entry.minArgs || (entry.maxArgs >= 0 && len(args) > entry.maxArgs) {
			p.println("Usage: " + entry.usage)
			continue
		}
		if err := entry.run(ctx, p, args); err != nil {
			p.renderError(err)
		}
	}
	return scanner.Err()
}

func printShellHelp(p *printer) {
	p.section("Commands")
	for _, name := range shellOrder {
		entry := shellCommands[name]
		p.printf("  %-22s - %s\n", entry.usage, p.styles.Help.Render(entry.summary))
	}
}
