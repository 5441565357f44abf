package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quesolabs/queso/internal/config"
	"github.com/quesolabs/queso/internal/services/cheese"
)

var addCmd = &cobra.Command{
	Use:   "add NAME...",
	Short: "Append cheeses to the end of the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc cheese.Service, _ *config.Config) error {
			for _, name := range args {
				c, err := svc.Add(ctx, name)
				if err != nil {
					return err
				}
				fmt.Printf("Added %d: %s\n", c.ID, c.Name)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
