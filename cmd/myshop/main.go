package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"myshop/internal/catalog"
	"myshop/internal/config"
	"myshop/internal/handler"
	"myshop/internal/notification"
	"myshop/internal/orders"
	"myshop/internal/server"
	"myshop/internal/session"
	"myshop/internal/storage"
)

func main() {
	os.Exit(start())
}

func start() int {
	logger, err := zap.NewProduction()
	if err != nil {
		return 1
	}
	zap.ReplaceGlobals(logger)

	defer zap.L().Sync()

	config, err := config.NewConfig()
	if err != nil {
		zap.L().Info("error create config", zap.Error(err))
		return 1
	}

	var snapshotStorage storage.Storage

	if config.UseMemStorage {
		snapshotStorage = storage.NewMemStorage()
	} else {
		db, err := sqlx.Connect("postgres", config.DatabaseURI)
		if err != nil {
			zap.L().Info("error failed to connect to db: %w", zap.Error(err))
			return 1
		}

		defer db.Close()

		snapshotStorage, err = storage.NewPostgresStorage(db)
		if err != nil {
			zap.L().Info("error failed to create postgres storage: %w", zap.Error(err))
			return 1
		}
	}

	shopCatalog := catalog.NewCatalog(snapshotStorage)
	if err := shopCatalog.Load(context.Background()); err != nil {
		zap.L().Info("error failed to load catalog: %w", zap.Error(err))
		return 1
	}

	var notifier notification.Notifier = notification.NopNotifier{}
	if config.WebhookURL != "" {
		notifier = notification.NewWebhookNotifier(config.WebhookURL)
	}

	engine := orders.NewEngine(snapshotStorage, shopCatalog, notifier)
	if err := engine.Load(context.Background()); err != nil {
		zap.L().Info("error failed to load orders: %w", zap.Error(err))
		return 1
	}

	sessions := session.NewManager(snapshotStorage, config.Password)

	server := server.NewServer(config, sessions)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := server.Start(handler.NewHandler(engine, shopCatalog, sessions, config.TokenSecret)); err != nil {
			zap.L().Info("error starting server", zap.Error(err))
			return err
		}

		return nil
	})

	<-ctx.Done()

	eg.Go(func() error {
		if err := server.Stop(); err != nil {
			zap.L().Info("error stopping server", zap.Error(err))
			return err
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return 1
	}

	return 0
}
