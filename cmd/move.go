package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quesolabs/queso/internal/config"
	"github.com/quesolabs/queso/internal/services/cheese"
)

var moveCmd = &cobra.Command{
	Use:   "move ID up|down",
	Short: "Move a cheese one slot up or down",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}

		return withService(func(ctx context.Context, svc cheese.Service, _ *config.Config) error {
			switch args[1] {
			case "up":
				err = svc.MoveUp(ctx, id)
			case "down":
				err = svc.MoveDown(ctx, id)
			default:
				return fmt.Errorf("direction must be up or down, got %q", args[1])
			}
			if err != nil {
				return err
			}
			fmt.Printf("Moved %d %s\n", id, args[1])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
