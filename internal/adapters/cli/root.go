package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trip",
		Short: "Trip - planet AI simulator",
		Long: `Trip runs a planet AI against scripted galaxy events.

A scenario script sends sunrays, asteroids and explorer requests to one planet
and prints every reply. Snapshots and diagnostics can be stored in a database.

Examples:
  trip run --scenario scenarios/defend.yaml
  trip run --scenario scenarios/explorers.yaml --ai passive --planet-id 3
  trip config show
  trip logs --planet 3 --level WARNING
  trip snapshots --planet 3 --limit 10
  trip ais`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", getDefaultConfigPath(),
		"Path to config file (default: search ./config.yaml, ./configs, /etc/trip)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log planet decisions at debug level")

	// Add command groups
	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewLogsCommand())
	rootCmd.AddCommand(NewSnapshotsCommand())
	rootCmd.AddCommand(NewAIsCommand())

	return rootCmd
}

// getDefaultConfigPath returns the default config path
func getDefaultConfigPath() string {
	return os.Getenv("TRIP_CONFIG")
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
