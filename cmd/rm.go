package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quesolabs/queso/internal/config"
	"github.com/quesolabs/queso/internal/services/cheese"
)

var rmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a cheese from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}

		return withService(func(ctx context.Context, svc cheese.Service, _ *config.Config) error {
			if err := svc.Remove(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed %d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
