package cli

import (
	"context"
	"errors"
	"fmt"
	"text/template"

	"github.com/iudanet/qrbox/internal/client/storage"
)

var historyUsage = "Usage: qrbox history <scans|generations|delete <id>|clear <scans|generations>>"

func (c *Cli) runHistory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. %s", historyUsage)
	}

	switch args[0] {
	case "scans":
		return c.runHistoryScans()
	case "generations":
		return c.runHistoryGenerations()
	case "delete":
		return c.runHistoryDelete(ctx, args[1:])
	case "clear":
		return c.runHistoryClear(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s. %s", args[0], historyUsage)
	}
}

func (c *Cli) runHistoryScans() error {
	tmpl := template.Must(template.New("scans").Parse(scanListTemplate))
	if err := tmpl.Execute(c.io, c.history.Scans()); err != nil {
		return fmt.Errorf("failed to render scan history: %w", err)
	}
	return nil
}

func (c *Cli) runHistoryGenerations() error {
	tmpl := template.Must(template.New("gens").Parse(genListTemplate))
	if err := tmpl.Execute(c.io, c.history.Generations()); err != nil {
		return fmt.Errorf("failed to render generator history: %w", err)
	}
	return nil
}

// runHistoryDelete удаляет запись по ID из любого из двух списков.
// Удаление необратимо, поэтому требует подтверждения, как и clear.
func (c *Cli) runHistoryDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing entry ID. %s", historyUsage)
	}

	id := args[0]

	confirm, err := c.io.ReadInput(fmt.Sprintf("Delete entry %s? (y/N): ", id))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if confirm != "y" && confirm != "Y" {
		c.io.Println("Cancelled.")
		return nil
	}

	err = c.history.RemoveScan(ctx, id)
	if errors.Is(err, storage.ErrEntryNotFound) {
		err = c.history.RemoveGeneration(ctx, id)
	}
	if errors.Is(err, storage.ErrEntryNotFound) {
		return fmt.Errorf("history entry not found: %s", id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}

	if err := c.history.Flush(ctx); err != nil {
		return fmt.Errorf("failed to persist history: %w", err)
	}

	c.flushNotifications()
	return nil
}

func (c *Cli) runHistoryClear(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing history list. %s", historyUsage)
	}

	confirm, err := c.io.ReadInput(fmt.Sprintf("Clear %s history? (y/N): ", args[0]))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if confirm != "y" && confirm != "Y" {
		c.io.Println("Cancelled.")
		return nil
	}

	switch args[0] {
	case "scans":
		if err := c.history.ClearScans(ctx); err != nil {
			return fmt.Errorf("failed to clear scan history: %w", err)
		}
		c.io.Println("✓ Scan history cleared")
	case "generations":
		if err := c.history.ClearGenerations(ctx); err != nil {
			return fmt.Errorf("failed to clear generator history: %w", err)
		}
		c.io.Println("✓ Generator history cleared")
	default:
		return fmt.Errorf("unknown history list: %s. %s", args[0], historyUsage)
	}

	return nil
}
