package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/ougirez/elections/internal/api"
	"github.com/ougirez/elections/internal/config"
	"github.com/ougirez/elections/internal/pkg/constants"
	"github.com/ougirez/elections/internal/pkg/logger"
	"github.com/ougirez/elections/internal/pkg/store"
	"github.com/ougirez/elections/internal/pkg/store/xpgx"
)

func main() {
	configPath := flag.String("config", os.Getenv("ELECTIONS_CONFIG"), "path to a YAML config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.Load(*configPath); err != nil {
		logger.Fatal(ctx, err)
	}
	if err := logger.Init(viper.GetString(constants.ViperLogLevelKey), viper.GetBool(constants.ViperLogDevelopmentKey)); err != nil {
		logger.Fatal(ctx, err)
	}
	defer logger.Sync()

	pool, err := xpgx.Connect(ctx, xpgx.Config{
		DSN:            viper.GetString(constants.ViperDatabaseDSNKey),
		MaxConns:       viper.GetInt32(constants.ViperDatabaseMaxConnsKey),
		ConnectRetries: viper.GetUint64(constants.ViperDatabaseConnectRetriesKey),
	})
	if err != nil {
		logger.Fatal(ctx, "connect to database: ", err)
	}
	defer pool.Close()

	svc, err := api.NewAPIService(store.NewStore(pool))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	addr := viper.GetString(constants.ViperServerAddrKey)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.Infof(egCtx, "listening on %s", addr)
		return svc.Serve(addr)
	})
	eg.Go(func() error {
		<-egCtx.Done()
		logger.Infof(context.Background(), "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), viper.GetDuration(constants.ViperServerShutdownTimeoutKey))
		defer cancel()
		return svc.Shutdown(shutdownCtx)
	})

	if err = eg.Wait(); err != nil {
		logger.Errorf(context.Background(), "server stopped: %s", err.Error())
	}
}
