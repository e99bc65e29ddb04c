package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/trip-go/internal/adapters/persistence"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
	"github.com/andrescamacho/trip-go/internal/infrastructure/database"
)

// NewLogsCommand creates the logs command
func NewLogsCommand() *cobra.Command {
	var (
		planetID int
		limit    int
		offset   int
		level    string
		since    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show persisted planet diagnostics",
		Long: `Show diagnostics persisted by 'trip run' when logging.persist is enabled.

Examples:
  trip logs --planet 3
  trip logs --planet 3 --level WARNING --since 1h
  trip logs --planet 3 --limit 20 --offset 20`,
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

			var levelFilter *string
			if level != "" {
				upper := strings.ToUpper(level)
				levelFilter = &upper
			}
			var sinceFilter *time.Time
			if since > 0 {
				t := time.Now().Add(-since)
				sinceFilter = &t
			}

			repo := persistence.NewGormPlanetLogRepository(db, nil, 0)
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			entries, err := repo.GetLogsWithOffset(ctx, id.Value(), limit, offset, levelFilter, sinceFilter)
			if err != nil {
				return fmt.Errorf("failed to get logs: %w", err)
			}

			printLogs(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().IntVar(&planetID, "planet", 0, "Planet ID")
	cmd.Flags().IntVar(&limit, "limit", 100, "Maximum entries to show")
	cmd.Flags().IntVar(&offset, "offset", 0, "Entries to skip")
	cmd.Flags().StringVar(&level, "level", "", "Only show this level (DEBUG, INFO, WARNING, ERROR)")
	cmd.Flags().DurationVar(&since, "since", 0, "Only show entries newer than this (e.g. 30m)")
	_ = cmd.MarkFlagRequired("planet")

	return cmd
}

func printLogs(out io.Writer, entries []persistence.PlanetLogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No logs found")
		return
	}

	for _, e := range entries {
		fmt.Fprintf(out, "%s  %-7s  %s%s\n", e.Timestamp.Format(time.RFC3339), e.Level, e.Message, formatMetadata(e.Metadata))
	}
}

// formatMetadata renders metadata as sorted key=value pairs
func formatMetadata(metadata map[string]interface{}) string {
	if len(metadata) == 0 {
		return ""
	}
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, metadata[k])
	}
	return b.String()
}
