package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"pocketledger/internal/backend"
	"pocketledger/internal/cli"
	"pocketledger/internal/ledger"
	applog "pocketledger/internal/log"
	"pocketledger/internal/shell"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		return err
	}

	logger, logCloser, err := cli.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	sessionID := uuid.NewString()
	logger = logger.With(applog.FieldSessionID, sessionID)

	ctx, stop := cli.SignalContext(context.Background())
	defer stop()

	backendCfg, err := backend.FromAppConfig(cfg, sessionID)
	if err != nil {
		return err
	}
	res, err := backend.NewFactory(logger).Create(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize store", applog.FieldError, err.Error(), applog.FieldBackend, cfg.DataBackend)
		return err
	}
	defer func() {
		if err := res.Cleanup(); err != nil {
			logger.Error("Store cleanup failed", applog.FieldError, err.Error())
		}
	}()

	l := ledger.New(res.Store, logger)
	sh := shell.New(l, os.Stdin, os.Stdout, shell.Options{
		Places: int32(cfg.CurrencyDecimals),
		Logger: logger,
	})

	logger.Info("Session started", applog.FieldOperation, applog.OpStartup, applog.FieldBackend, cfg.DataBackend)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// The session ending on its own releases the watcher below.
		defer stop()
		return sh.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Session stopping", applog.FieldOperation, applog.OpShutdown)
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err = <-done:
	case <-waitThenTimeout(ctx, cfg.ShutdownTimeout):
		logger.Warn("Shutdown timeout reached")
		err = nil
	}
	if err != nil {
		logger.Error("Session failed", applog.FieldError, err.Error())
		return err
	}
	logger.Info("Session ended")
	return nil
}

// waitThenTimeout fires timeout after ctx is cancelled.
func waitThenTimeout(ctx context.Context, timeout time.Duration) <-chan struct{} {
	ch := make(chan struct{})
	go func() {
		<-ctx.Done()
		time.Sleep(timeout)
		close(ch)
	}()
	return ch
}
