package cli

import (
	"context"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/iudanet/qrbox/internal/client/history"
	"github.com/iudanet/qrbox/internal/client/iocli"
	"github.com/iudanet/qrbox/internal/config"
	"github.com/iudanet/qrbox/internal/notify"
	"github.com/iudanet/qrbox/internal/qrapi"
)

type Cli struct {
	io            iocli.IO
	codec         qrapi.Codec
	history       *history.Service
	notifications *notify.Queue
	cfg           *config.Config
	logger        *slog.Logger
}

func New(io iocli.IO, codec qrapi.Codec, historyService *history.Service, notifications *notify.Queue, cfg *config.Config, logger *slog.Logger) *Cli {
	return &Cli{
		io:            io,
		codec:         codec,
		history:       historyService,
		notifications: notifications,
		cfg:           cfg,
		logger:        logger,
	}
}

func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "decode":
		return c.runDecode(ctx, args)
	case "scan":
		return c.runScan(ctx, args)
	case "generate":
		return c.runGenerate(ctx, args)
	case "history":
		return c.runHistory(ctx, args)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage выводит справку по командам
func (c *Cli) PrintUsage() {
	tmpl := template.Must(template.New("usage").Parse(usageTemplate))
	_ = tmpl.Execute(c.io, nil)
}

// flushNotifications печатает накопленные события (сохранено, дубликат, удалено)
func (c *Cli) flushNotifications() {
	for _, n := range c.notifications.Drain() {
		switch n.Kind {
		case notify.KindWarning, notify.KindError:
			c.io.Printf("! %s\n", n.Message)
		default:
			c.io.Printf("✓ %s\n", n.Message)
		}
	}
}
