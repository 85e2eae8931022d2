package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"storefront/pkg/app/config"
	cartservice "storefront/pkg/cart/domain/service"
	catalogservice "storefront/pkg/catalog/domain/service"
	checkoutservice "storefront/pkg/checkout/domain/service"
	"storefront/pkg/infrastructure/auth"
	"storefront/pkg/infrastructure/event"
	"storefront/pkg/infrastructure/memory"
	orderservice "storefront/pkg/order/domain/service"
	"storefront/pkg/transport"
	userservice "storefront/pkg/user/domain/service"
)

func main() {
	app := &cli.App{
		Name:  "storefront",
		Usage: "catalog, cart and order service",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP API",
				Action: serve,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("storefront failed")
	}
}

func serve(_ *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.LogJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}

	dispatcher := event.NewLogDispatcher()

	catalog := catalogservice.NewCatalogService(memory.NewProductStore(), dispatcher)
	cartStore := memory.NewCartStore()
	carts := cartservice.NewCartService(cartStore, catalog, dispatcher)
	ledger := orderservice.NewLedgerService(memory.NewOrderStore())
	checkout := checkoutservice.NewCheckoutService(cartStore, ledger, catalog, dispatcher)
	users := userservice.NewUserService(memory.NewUserStore(), auth.NewBcryptPasswordManager(), dispatcher)

	if cfg.SeedData {
		if err := seed(catalog, users); err != nil {
			return err
		}
	}

	handler := transport.NewHandler(catalog, carts, ledger, checkout, users,
		auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL))

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: transport.Router(handler)}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", cfg.HTTPAddr).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
