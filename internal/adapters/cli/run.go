package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/trip-go/internal/adapters/scenario"
	"github.com/andrescamacho/trip-go/internal/application/ai"
	"github.com/andrescamacho/trip-go/internal/application/planet"
	domainPlanet "github.com/andrescamacho/trip-go/internal/domain/planet"
	"github.com/andrescamacho/trip-go/internal/domain/resource"
	"github.com/andrescamacho/trip-go/internal/infrastructure/config"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	var (
		scenarioPath string
		catalogPath  string
		planetID     int
		planetType   string
		aiName       string
		noColor      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play a scenario script against one planet",
		Long: `Start a planet, play every step of a scenario script against it and print
each reply. Events are paced by simulation.events_per_second.

Flags override the planet section of the configuration.

Examples:
  trip run --scenario scenarios/defend.yaml
  trip run --scenario scenarios/explorers.yaml --type C --catalog catalogs/c.yaml
  trip run --scenario scenarios/defend.yaml --ai passive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("catalog") {
				cfg.Planet.CatalogPath = catalogPath
			}
			if flags.Changed("planet-id") {
				cfg.Planet.ID = planetID
			}
			if flags.Changed("type") {
				cfg.Planet.Type = planetType
			}
			if flags.Changed("ai") {
				cfg.Planet.AI = aiName
			}

			script, err := scenario.LoadScriptFile(scenarioPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runScenario(ctx, cfg, script, cmd.OutOrStdout(), cmd.ErrOrStderr(), !noColor)
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "Scenario script (YAML)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Recipe catalog (YAML)")
	cmd.Flags().IntVar(&planetID, "planet-id", 0, "Planet ID")
	cmd.Flags().StringVar(&planetType, "type", "", "Planet type: A, B, C or D")
	cmd.Flags().StringVar(&aiName, "ai", "", "Planet AI (see 'trip ais')")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

// blueprintFromConfig builds the planet blueprint from the planet section
func blueprintFromConfig(cfg config.PlanetConfig) (planet.Blueprint, error) {
	planetType, err := domainPlanet.ParsePlanetType(cfg.Type)
	if err != nil {
		return planet.Blueprint{}, err
	}

	bp := planet.Blueprint{
		ID:   cfg.ID,
		Type: planetType,
		AI:   cfg.AI,
	}

	if cfg.CatalogPath == "" {
		bp.Generator = resource.NewGenerator(resource.Oxygen)
		bp.Combinator = resource.NewCombinator()
		return bp, nil
	}

	bp.Generator, bp.Combinator, err = resource.LoadCatalogsFile(cfg.CatalogPath)
	if err != nil {
		return planet.Blueprint{}, err
	}
	return bp, nil
}

// runScenario assembles the configured planet, plays script against it and prints every exchange to out
func runScenario(ctx context.Context, cfg *config.Config, script *scenario.Script, out, errOut io.Writer, useColors bool) error {
	bp, err := blueprintFromConfig(cfg.Planet)
	if err != nil {
		return err
	}

	rt, err := newRuntime(cfg, uint32(bp.ID), errOut)
	if err != nil {
		return err
	}
	defer rt.Close()

	link := scenario.NewLink()
	p, err := planet.Assemble(bp, ai.DefaultRegistry(), link.PlanetChannels(), rt.dependencies(), rt.planetOptions())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	formatter := NewExchangeFormatter(useColors)
	fmt.Fprintf(out, "Planet %d (type %s, ai %s) playing %q\n", bp.ID, bp.Type, bp.AI, script.Name)

	driver := scenario.NewDriver(link, cfg.Simulation.EventsPerSecond, cfg.Simulation.Burst, cfg.Simulation.ResponseTimeout)
	exchanges, playErr := driver.Play(ctx, script, func(ex scenario.Exchange) {
		fmt.Fprintln(out, formatter.Format(ex))
	})

	cancel()
	runErr := <-done
	if playErr != nil {
		return playErr
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	fmt.Fprintf(out, "%d exchanges\n", len(exchanges))
	return nil
}
