package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cnk-ceneka/cnk/internal/email"
	"github.com/cnk-ceneka/cnk/internal/gallery"
	"github.com/cnk-ceneka/cnk/internal/inquiry"
	"github.com/cnk-ceneka/cnk/internal/listing"
	"github.com/cnk-ceneka/cnk/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the website",
		Long:  "Start an HTTP server for the website and its JSON API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == 0 {
				port = settings.Port
			}
			return runServe(cmd.Context(), port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default from config, 8080)")

	return cmd
}

func runServe(ctx context.Context, port int) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	variant, err := listing.ParseVariant(settings.ListingVariant)
	if err != nil {
		return err
	}
	client, err := newCatalogClient()
	if err != nil {
		return err
	}

	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	var notifier inquiry.Notifier
	if settings.NotificationsEnabled() {
		smtpCfg := email.SMTPConfig{
			Host: settings.SMTP.Host,
			Port: settings.SMTP.Port,
			User: settings.SMTP.User,
			Pass: settings.SMTP.Pass,
			From: settings.SMTP.From,
		}
		notifier = email.NewNotifier(smtpCfg, settings.NotifyTo, settings.BaseURL)
		slog.Info("inquiry notifications enabled", "recipients", len(settings.NotifyTo))
	}

	listings := listing.NewFetcher(client, variant)
	srv, err := web.NewServer(web.Deps{
		Listings:  listings,
		Resolver:  listing.NewResolver(client, settings.DetailScanLimit),
		Gallery:   gallery.NewFetcher(client, settings.GalleryCacheTTL),
		Inquiries: inquiry.NewService(inquiry.NewRepository(database), notifier),
	}, web.Options{
		PageSize:         settings.PageSize,
		WhatsAppNumber:   settings.WhatsAppNumber,
		ContactRateLimit: settings.ContactRateLimit,
		CORSOrigins:      settings.CORSOrigins,
		GalleryWait:      settings.GalleryWait,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	slog.Info("catalog", "url", client.BaseURL(), "variant", listings.Variant())
	if err := srv.ListenAndServe(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
