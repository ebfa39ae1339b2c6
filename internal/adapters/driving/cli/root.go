// Package cli provides the cobra command tree for cartographer.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/akashic-archives/cartographer/internal/config"
	"github.com/akashic-archives/cartographer/internal/core/domain"
	"github.com/akashic-archives/cartographer/internal/core/ports/driven"
	"github.com/akashic-archives/cartographer/internal/core/ports/driving"
	"github.com/akashic-archives/cartographer/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services bundles the ports the commands call.
type Services struct {
	Archive   driving.ArchiveService
	Analytics driving.AnalyticsService
	Merge     driving.MergeService
	Export    driving.ExportService
	Settings  driving.SettingsService

	// Watcher is nil for backends that cannot be watched.
	Watcher driven.ChangeWatcher

	// Effective is the resolved runtime configuration.
	Effective domain.Settings
}

// Initializer builds services from the command-line overrides. The returned
// cleanup func releases backend resources once the command finishes.
type Initializer func(ctx context.Context, o config.Overrides) (*Services, func() error, error)

var (
	archiveService   driving.ArchiveService
	analyticsService driving.AnalyticsService
	mergeService     driving.MergeService
	exportService    driving.ExportService
	settingsService  driving.SettingsService
	changeWatcher    driven.ChangeWatcher
	effective        domain.Settings

	initializer Initializer
	cleanup     func() error
)

// Persistent flags.
var (
	flagRoot    string
	flagBackend string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cartographer",
	Short: "Explore, merge and export knowledge graph topics",
	Long: `Cartographer explores an archive of knowledge graph topics.

Each topic is a set of entities, relationships, sources and media stored as
JSON documents under the archive root. Cartographer lists the domain index,
renders topics, runs simple graph analytics, merges topics into new ones and
exports them as JSON or CSV.

Run without arguments to start the interactive shell.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupServices,
	PersistentPostRunE: releaseServices,
	RunE:               runShell,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "archive root directory")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "record store backend (file, sqlite, memory)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// SetServices installs the ports used by every command.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	archiveService = s.Archive
	analyticsService = s.Analytics
	mergeService = s.Merge
	exportService = s.Export
	settingsService = s.Settings
	changeWatcher = s.Watcher
	effective = s.Effective
}

// SetInitializer registers the function that builds services before a
// command runs. Without one, services installed by SetServices are used.
func SetInitializer(fn Initializer) {
	initializer = fn
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
// Backend resources are released even when the command fails.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if relErr := releaseServices(nil, nil); relErr != nil && err == nil {
		err = relErr
	}
	return err
}

func overridesFromFlags(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("root") {
		o.Root = flagRoot
	}
	if flags.Changed("backend") {
		o.Backend = flagBackend
	}
	if flags.Changed("verbose") {
		v := flagVerbose
		o.Verbose = &v
	}
	return o
}

func setupServices(cmd *cobra.Command, _ []string) error {
	o := overridesFromFlags(cmd)
	if o.Verbose != nil {
		logger.SetVerbose(*o.Verbose)
	}
	if initializer == nil {
		return nil
	}

	svc, release, err := initializer(commandContext(cmd), o)
	if err != nil {
		return err
	}
	SetServices(svc)
	cleanup = release
	logger.SetVerbose(effective.Verbose)
	logger.Debug("archive root %s (%s backend)", effective.Root, effective.Backend)
	return nil
}

func releaseServices(_ *cobra.Command, _ []string) error {
	if cleanup == nil {
		return nil
	}
	release := cleanup
	cleanup = nil
	return release()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

var errArchiveNotConfigured = errors.New("archive service not configured")
