package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quesolabs/queso/internal/config"
	"github.com/quesolabs/queso/internal/services/cheese"
)

var (
	listPage     int
	listPageSize int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc cheese.Service, cfg *config.Config) error {
			size := listPageSize
			if size <= 0 {
				size = cfg.PageSize
			}

			result, err := svc.Page(ctx, listPage, size)
			if err != nil {
				return err
			}

			for _, c := range result.Cheeses {
				fmt.Printf("%4d  %s\n", c.ID, c.Name)
			}
			fmt.Printf("\nPage %d/%d, %d cheeses\n",
				result.Page, result.TotalPages(), result.Total)
			return nil
		})
	},
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "page to print")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 0, "cheeses per page (default from config)")
	rootCmd.AddCommand(listCmd)
}
