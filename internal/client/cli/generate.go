package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/iudanet/qrbox/internal/models"
	"github.com/iudanet/qrbox/internal/validation"
)

var generateUsage = "Usage: qrbox generate <link|text|email|wifi|data> [--size N] [--fg HEX] [--bg HEX] [--margin N] [--transparent] [--out FILE]"

func (c *Cli) runGenerate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing QR kind. %s", generateUsage)
	}

	kindArg := args[0]

	flags := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags.SetOutput(c.io)
	size := flags.Int("size", 270, "image size in pixels (square)")
	fg := flags.String("fg", "", "foreground color, hex")
	bg := flags.String("bg", "", "background color, hex")
	margin := flags.String("margin", "", "quiet zone margin in modules")
	transparent := flags.Bool("transparent", false, "transparent background")
	out := flags.String("out", "qr.png", "output file path")
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	sizeStr := strconv.Itoa(*size)
	if err := validation.ValidateSize(sizeStr); err != nil {
		return err
	}

	cust := models.DefaultCustomization()
	if *fg != "" {
		if err := validation.ValidateColor(*fg); err != nil {
			return fmt.Errorf("--fg: %w", err)
		}
		cust.ForegroundColor = *fg
	}
	if *bg != "" {
		if err := validation.ValidateColor(*bg); err != nil {
			return fmt.Errorf("--bg: %w", err)
		}
		cust.BackgroundColor = *bg
	}
	if *margin != "" {
		if err := validation.ValidateMargin(*margin); err != nil {
			return fmt.Errorf("--margin: %w", err)
		}
		cust.SetMargin(*margin)
	}
	cust.IsTransparent = *transparent

	var (
		kind    models.GenKind
		data    string
		details map[string]string
		err     error
	)

	switch kindArg {
	case "link":
		kind = models.KindLink
		data, err = c.promptLink()
	case "text":
		kind = models.KindText
		data, err = c.promptText()
	case "email":
		kind = models.KindEmail
		data, details, err = c.promptEmail()
	case "wifi":
		kind = models.KindWifi
		data, details, err = c.promptWifi()
	case "data":
		kind = models.KindData
		data, err = c.promptData()
	default:
		return fmt.Errorf("unknown QR kind: %s. %s", kindArg, generateUsage)
	}
	if err != nil {
		return err
	}

	qrURL := c.codec.BuildEncodeURL(data, sizeStr, cust)

	imageData, err := c.codec.Download(ctx, qrURL)
	if err != nil {
		return fmt.Errorf("failed to download QR image: %w", err)
	}

	if err := os.WriteFile(*out, imageData, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", *out, err)
	}

	entry := models.NewGenEntry(kind, data, sizeStr, qrURL, cust, details)
	if err := c.history.AddGeneration(ctx, entry); err != nil {
		return fmt.Errorf("failed to save generation history: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ QR code saved to %s (%d bytes)\n", *out, len(imageData))
	c.io.Printf("  Image URL: %s\n", qrURL)
	c.io.Println()

	c.flushNotifications()
	return nil
}

func (c *Cli) promptLink() (string, error) {
	c.io.Println("=== Generate Link QR ===")
	c.io.Println()

	link, err := c.io.ReadInput("URL: ")
	if err != nil {
		return "", fmt.Errorf("failed to read URL: %w", err)
	}
	return models.BuildTextPayload(link)
}

func (c *Cli) promptText() (string, error) {
	c.io.Println("=== Generate Text QR ===")
	c.io.Println()

	text, err := c.io.ReadInput("Text: ")
	if err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	return models.BuildTextPayload(text)
}

// promptData произвольный payload as-is: vCard, geo, чего форма не покрывает
func (c *Cli) promptData() (string, error) {
	c.io.Println("=== Generate Data QR ===")
	c.io.Println()

	data, err := c.io.ReadInput("Data: ")
	if err != nil {
		return "", fmt.Errorf("failed to read data: %w", err)
	}
	return models.BuildTextPayload(data)
}

func (c *Cli) promptEmail() (string, map[string]string, error) {
	c.io.Println("=== Generate Email QR ===")
	c.io.Println()

	to, err := c.io.ReadInput("Recipient: ")
	if err != nil {
		return "", nil, fmt.Errorf("failed to read recipient: %w", err)
	}

	subject, err := c.io.ReadInput("Subject (optional): ")
	if err != nil {
		return "", nil, fmt.Errorf("failed to read subject: %w", err)
	}

	body, err := c.io.ReadInput("Body (optional): ")
	if err != nil {
		return "", nil, fmt.Errorf("failed to read body: %w", err)
	}

	data, err := models.BuildEmailPayload(to, subject, body)
	if err != nil {
		return "", nil, err
	}

	details := map[string]string{"to": to}
	if subject != "" {
		details["subject"] = subject
	}
	if body != "" {
		details["body"] = body
	}
	return data, details, nil
}

func (c *Cli) promptWifi() (string, map[string]string, error) {
	c.io.Println("=== Generate WiFi QR ===")
	c.io.Println()

	ssid, err := c.io.ReadInput("Network name (SSID): ")
	if err != nil {
		return "", nil, fmt.Errorf("failed to read SSID: %w", err)
	}

	encryption, err := c.io.ReadInput("Security (WPA|WEP|nopass, default WPA): ")
	if err != nil {
		return "", nil, fmt.Errorf("failed to read security type: %w", err)
	}
	if encryption == "" {
		encryption = "WPA"
	}

	password := ""
	if encryption != "nopass" {
		password, err = c.io.ReadInput("Password (optional): ")
		if err != nil {
			return "", nil, fmt.Errorf("failed to read password: %w", err)
		}
	}

	data, err := models.BuildWifiPayload(ssid, password, encryption)
	if err != nil {
		return "", nil, err
	}

	details := map[string]string{"ssid": ssid, "encryption": encryption}
	return data, details, nil
}
