package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/trip-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect Trip configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (TRIP_* prefix)
2. Config file (config.yaml)
3. Default values

Examples:
  trip config show
  trip config show --yaml`,
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long: `Display the effective configuration settings.

Example:
  trip config show`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := loadConfig()
			if err != nil {
				fmt.Fprintf(out, "Warning: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.LoadConfigOrDefault(configPath)
			}

			if asYAML {
				return writeConfigYAML(out, cfg)
			}
			printConfig(out, cfg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print as YAML")

	return cmd
}

func printConfig(out io.Writer, cfg *config.Config) {
	// Display configuration
	fmt.Fprintln(out, "Trip Configuration")
	fmt.Fprintln(out, "==================")

	fmt.Fprintln(out, "Planet:")
	fmt.Fprintf(out, "  ID:               %d\n", cfg.Planet.ID)
	fmt.Fprintf(out, "  Type:             %s\n", cfg.Planet.Type)
	fmt.Fprintf(out, "  AI:               %s\n", cfg.Planet.AI)
	if cfg.Planet.CatalogPath != "" {
		fmt.Fprintf(out, "  Catalog:          %s\n", cfg.Planet.CatalogPath)
	} else {
		fmt.Fprintf(out, "  Catalog:          (built-in oxygen generator)\n")
	}

	fmt.Fprintln(out, "\nDatabase:")
	fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Database.Enabled)
	fmt.Fprintf(out, "  Type:             %s\n", cfg.Database.Type)
	switch {
	case cfg.Database.URL != "":
		fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
	case cfg.Database.Type == "sqlite":
		fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.Path)
	default:
		fmt.Fprintf(out, "  Host:             %s\n", cfg.Database.Host)
		fmt.Fprintf(out, "  Port:             %d\n", cfg.Database.Port)
		fmt.Fprintf(out, "  Database:         %s\n", cfg.Database.Name)
		fmt.Fprintf(out, "  User:             %s\n", cfg.Database.User)
	}

	fmt.Fprintln(out, "\nLogging:")
	fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)
	fmt.Fprintf(out, "  Output:           %s\n", cfg.Logging.Output)
	fmt.Fprintf(out, "  Persist:          %t\n", cfg.Logging.Persist)
	if cfg.Logging.Persist {
		fmt.Fprintf(out, "  Persist Level:    %s\n", cfg.Logging.PersistLevel)
		fmt.Fprintf(out, "  Dedup Window:     %s\n", cfg.Logging.DedupWindow)
	}

	fmt.Fprintln(out, "\nMetrics:")
	fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Metrics.Enabled)
	fmt.Fprintf(out, "  Endpoint:         %s:%d%s\n", cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)

	fmt.Fprintln(out, "\nSimulation:")
	fmt.Fprintf(out, "  Rate:             %g events/s (burst: %d)\n", cfg.Simulation.EventsPerSecond, cfg.Simulation.Burst)
	fmt.Fprintf(out, "  Reply Timeout:    %s\n", cfg.Simulation.ResponseTimeout)
}

// writeConfigYAML prints the configuration with secrets masked
func writeConfigYAML(out io.Writer, cfg *config.Config) error {
	masked := *cfg
	masked.Database.URL = maskPassword(cfg.Database.URL)
	if masked.Database.Password != "" {
		masked.Database.Password = "xxxxx"
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(masked); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}
