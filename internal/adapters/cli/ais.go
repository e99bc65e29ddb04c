package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/trip-go/internal/application/ai"
)

// NewAIsCommand creates the ais command
func NewAIsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ais",
		Short: "List the planet AIs that can be selected with --ai",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range ai.DefaultRegistry().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
