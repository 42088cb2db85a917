package cli

import (
	"context"
	"fmt"
	"text/template"

	"github.com/iudanet/qrbox/internal/capture"
	"github.com/iudanet/qrbox/internal/models"
	"github.com/iudanet/qrbox/internal/scan"
)

// Примерный размер символа терминала в пикселях: по нему ширина
// терминала приводится к breakpoint'у области захвата.
const (
	termCellWidthPx  = 8
	termCellHeightPx = 16

	fallbackDisplayWidth  = 640
	fallbackDisplayHeight = 480
)

func (c *Cli) runScan(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing frame directory. Usage: qrbox scan <dir>")
	}

	dir := args[0]

	source, err := capture.NewDirSource(dir, c.cfg.MaxFileSize)
	if err != nil {
		return fmt.Errorf("failed to open frame source: %w", err)
	}

	c.io.Println("=== Scanning ===")
	c.io.Println()
	c.io.Printf("Watching %s for frames (Ctrl+C to stop)...\n", dir)
	c.io.Println()

	found := make(chan string, 1)

	session := scan.NewSession(source, c.codec, scan.Config{
		TickInterval: c.cfg.TickInterval,
		SettleDelay:  c.cfg.SettleDelay,
		DisplaySize:  c.displaySize,
	}, c.logger, func(data string) {
		found <- data
	}, c.overlayPrinter())

	if err := session.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scan session: %w", err)
	}

	select {
	case <-ctx.Done():
		if err := session.Stop(); err != nil {
			c.logger.Warn("failed to stop scan session", "error", err)
		}
		return ctx.Err()
	case data := <-found:
		entry, added := c.history.AddScan(ctx, data)
		if !added {
			entry = models.NewScanEntry(data)
		}

		tmpl := template.Must(template.New("decode").Parse(decodeResultTemplate))
		if err := tmpl.Execute(c.io, entry); err != nil {
			return fmt.Errorf("failed to render result: %w", err)
		}

		if err := c.history.Flush(ctx); err != nil {
			return fmt.Errorf("failed to persist history: %w", err)
		}

		c.flushNotifications()
		return nil
	}
}

// displaySize отображаемый размер в пикселях, выведенный из размера
// терминала. Без терминала (pipe, тест) — фиксированный fallback.
func (c *Cli) displaySize() (int, int) {
	cols, rows, err := c.io.TermSize()
	if err != nil || cols <= 0 || rows <= 0 {
		return fallbackDisplayWidth, fallbackDisplayHeight
	}
	return cols * termCellWidthPx, rows * termCellHeightPx
}

// overlayPrinter печатает геометрию рамки захвата при ее изменении.
// Вызывается только из горутины tick цикла, поэтому last без блокировки.
func (c *Cli) overlayPrinter() func(scan.Overlay) {
	var last scan.Rect
	return func(o scan.Overlay) {
		if o.Window == last {
			return
		}
		last = o.Window
		c.io.Printf("capture window %.0fx%.0f at (%.0f,%.0f) in %.0fx%.0f viewport\n",
			o.Window.W, o.Window.H, o.Window.X, o.Window.Y, o.Viewport.W, o.Viewport.H)
	}
}
