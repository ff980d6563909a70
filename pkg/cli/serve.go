package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/pushrelay/pkg/cli/config"
	"github.com/m-mizutani/pushrelay/pkg/controller/server"
	"github.com/m-mizutani/pushrelay/pkg/infra"
	"github.com/m-mizutani/pushrelay/pkg/queue"
	"github.com/m-mizutani/pushrelay/pkg/usecase"
	"github.com/m-mizutani/pushrelay/pkg/utils/logging"
	"github.com/m-mizutani/pushrelay/pkg/utils/safe"
	"golang.org/x/sync/errgroup"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr          string
		sendInterval  time.Duration
		recentIDCache int

		discordCfg config.Discord
		webhook    config.Webhook
		sentry     config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:5000",
			Sources:     cli.EnvVars("PUSHRELAY_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "send-interval",
			Usage:       "Pause between consecutive channel posts",
			Value:       100 * time.Millisecond,
			Sources:     cli.EnvVars("PUSHRELAY_SEND_INTERVAL"),
			Destination: &sendInterval,
		},
		&cli.IntFlag{
			Name:        "recent-delivery-cache",
			Usage:       "Number of recent delivery IDs remembered for redelivery suppression (0 disables)",
			Value:       256,
			Sources:     cli.EnvVars("PUSHRELAY_RECENT_DELIVERY_CACHE"),
			Destination: &recentIDCache,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			discordCfg.Flags(),
			webhook.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("SendInterval", sendInterval),
				slog.Any("RecentDeliveryCache", recentIDCache),
				slog.Any("Discord", discordCfg),
				slog.Any("Webhook", webhook),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			dc, err := discordCfg.New()
			if err != nil {
				return err
			}

			var queueOptions []queue.Option
			if recentIDCache > 0 {
				queueOptions = append(queueOptions, queue.WithRecentIDCap(recentIDCache))
			}

			clients := infra.New(
				infra.WithChat(dc),
				infra.WithQueue(queue.New(queueOptions...)),
			)

			uc := usecase.New(clients,
				usecase.WithChannelID(discordCfg.ChannelID()),
				usecase.WithSendInterval(sendInterval),
				usecase.WithSimulatedRepo(webhook.RepoOwner(), webhook.RepoName()),
			)
			s := server.New(uc, server.WithWebhookSecret(webhook.Secret()))

			dc.BindCommands(uc)
			if err := dc.Open(); err != nil {
				return err
			}
			defer safe.Close(dc)

			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			eg, ctx := errgroup.WithContext(ctx)

			eg.Go(func() error {
				logging.Default().Info("starting http server",
					"addr", addr,
					"signature_required", webhook.Secret().IsConfigured(),
				)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					return goerr.Wrap(err, "failed to listen and serve")
				}
				return nil
			})

			eg.Go(func() error {
				return uc.RunDeliveryWorker(ctx)
			})

			eg.Go(func() error {
				<-ctx.Done()
				logging.Default().Info("shutting down server")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
				return nil
			})

			if err := eg.Wait(); err != nil {
				return err
			}

			return nil
		},
	}
}
