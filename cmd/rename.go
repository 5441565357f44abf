package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quesolabs/queso/internal/config"
	"github.com/quesolabs/queso/internal/services/cheese"
)

var renameCmd = &cobra.Command{
	Use:   "rename ID NAME",
	Short: "Rename a cheese",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}

		return withService(func(ctx context.Context, svc cheese.Service, _ *config.Config) error {
			if err := svc.Rename(ctx, id, args[1]); err != nil {
				return err
			}
			fmt.Printf("Renamed %d to %s\n", id, args[1])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
