package cli

import (
	"context"
	"errors"
	"fmt"
	"text/template"

	"github.com/iudanet/qrbox/internal/capture"
	"github.com/iudanet/qrbox/internal/models"
	"github.com/iudanet/qrbox/internal/qrapi"
)

func (c *Cli) runDecode(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing image path. Usage: qrbox decode <file>")
	}

	path := args[0]

	imageData, err := capture.ReadImageFile(path, c.cfg.MaxFileSize)
	if err != nil {
		if errors.Is(err, capture.ErrNotImage) {
			return fmt.Errorf("%s is not an image file", path)
		}
		if errors.Is(err, capture.ErrTooLarge) {
			return fmt.Errorf("%s exceeds the %d byte limit", path, c.cfg.MaxFileSize)
		}
		return fmt.Errorf("failed to read image: %w", err)
	}

	data, err := c.codec.Decode(ctx, imageData)
	if err != nil {
		if errors.Is(err, qrapi.ErrNoQRFound) {
			return fmt.Errorf("no QR code found in %s", path)
		}
		return fmt.Errorf("failed to decode image: %w", err)
	}

	entry, added := c.history.AddScan(ctx, data)
	if !added {
		// Дубликат в историю не попал, но результат все равно показываем
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
