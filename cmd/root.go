// Package cmd defines the command line interface.
package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/quesolabs/queso/internal/config"
	"github.com/quesolabs/queso/internal/database"
	"github.com/quesolabs/queso/internal/services/cheese"
	"github.com/quesolabs/queso/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "queso",
	Short: "Queso - a terminal cheese catalog",
	Long: `Queso keeps an ordered catalog of cheeses in a local SQLite database.

Running queso without arguments opens the interactive catalog. The
subcommands expose the same operations for scripting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc cheese.Service, cfg *config.Config) error {
			p := tea.NewProgram(tui.NewModel(svc, cfg), tea.WithAltScreen())
			_, err := p.Run()
			return err
		})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// withService opens the database and hands a ready service to fn,
// closing the database when fn returns.
func withService(fn func(ctx context.Context, svc cheese.Service, cfg *config.Config) error) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath, err := database.DefaultPath()
	if err != nil {
		return err
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	svc := cheese.NewService(database.NewRepository(db))
	return fn(ctx, svc, cfg)
}
