package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/akashic-archives/cartographer/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persisted settings",
	Long: `View and change the settings stored in the config file.

Keys:
  archive.root     - archive root directory
  archive.backend  - record store backend (file, sqlite, memory)
  log.verbose      - enable debug logging (true/false)

Command-line flags and CARTOGRAPHER_* environment variables take precedence
over stored values.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show stored and effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Store a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset [key]",
	Short: "Remove a stored setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	stored, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Stored Settings")
	cmd.Println("===============")
	if path := settingsService.Path(); path != "" {
		cmd.Printf("  File:    %s\n", path)
	}
	cmd.Printf("  Root:    %s\n", stored.Root)
	cmd.Printf("  Backend: %s\n", stored.Backend.Description())
	cmd.Printf("  Verbose: %t\n", stored.Verbose)
	cmd.Println()

	if effective.Backend != "" {
		cmd.Println("[Effective]")
		cmd.Printf("  Root:    %s\n", effective.Root)
		cmd.Printf("  Backend: %s\n", effective.Backend.Description())
		cmd.Printf("  Verbose: %t\n", effective.Verbose)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	var err error
	switch key {
	case domain.KeyArchiveRoot:
		err = settingsService.SetRoot(value)
	case domain.KeyArchiveBackend:
		err = settingsService.SetBackend(domain.Backend(value))
	case domain.KeyLogVerbose:
		b, parseErr := strconv.ParseBool(value)
		if parseErr != nil {
			return fmt.Errorf("%s expects true or false: %w", key, domain.ErrInvalidInput)
		}
		err = settingsService.SetVerbose(b)
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Reset(args[0]); err != nil {
		return fmt.Errorf("failed to unset %s: %w", args[0], err)
	}
	cmd.Printf("Unset %s\n", args[0])
	return nil
}
