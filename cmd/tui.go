package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/JAX838/delight-vision-sounds/internal/shared"
	"github.com/JAX838/delight-vision-sounds/internal/ui"
)

// TUI launches the interactive terminal storefront.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	admin := cmd.Bool("admin")

	if r.catalog == nil {
		return fmt.Errorf("uninitialized catalog service")
	}

	store, closeStore, err := r.openCart()
	if err != nil {
		return err
	}
	defer closeStore()

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/dvs-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, r.shopEngine(store), admin)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
