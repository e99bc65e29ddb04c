package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/trip-go/internal/adapters/persistence"
	domainPlanet "github.com/andrescamacho/trip-go/internal/domain/planet"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
	"github.com/andrescamacho/trip-go/internal/infrastructure/database"
)

// NewSnapshotsCommand creates the snapshots command
func NewSnapshotsCommand() *cobra.Command {
	var (
		planetID int
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "Show stored planet state snapshots",
		Long: `Show the planet states stored by 'trip run', newest first.
A snapshot is stored each time a message changes the planet state.

Example:
  trip snapshots --planet 3 --limit 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			id, err := shared.NewPlanetID(planetID)
			if err != nil {
				return err
			}

			repo := persistence.NewGormPlanetSnapshotRepository(db, nil)
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			records, err := repo.List(ctx, id.Value(), limit)
			if err != nil {
				return fmt.Errorf("failed to list snapshots: %w", err)
			}

			printSnapshots(cmd.OutOrStdout(), records)
			return nil
		},
	}

	cmd.Flags().IntVar(&planetID, "planet", 0, "Planet ID")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum snapshots to show (0 for all)")
	_ = cmd.MarkFlagRequired("planet")

	return cmd
}

func printSnapshots(out io.Writer, records []domainPlanet.SnapshotRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No snapshots found")
		return
	}

	for _, r := range records {
		rocket := "-"
		if r.HasRocket {
			rocket = r.RocketID
		}
		fmt.Fprintf(out, "%s  type %s  %s  charged=%d  rocket=%s\n",
			r.TakenAt.Format(time.RFC3339), r.PlanetType, formatCells(r.EnergyCells, false), r.ChargedCellsCount, rocket)
	}
}
