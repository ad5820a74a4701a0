package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matst80/slask-storefront/pkg/common"
	"github.com/matst80/slask-storefront/pkg/messaging"
	"github.com/matst80/slask-storefront/pkg/server"
	"github.com/matst80/slask-storefront/pkg/tracking"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var saveInterval time.Duration

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the product api",
	Long: `Serves the product api on LISTEN_ADDRESS and health, metrics and profiling on
DEBUG_ADDRESS. Product changes are consumed from RabbitMQ when RABBIT_URL is set and
responses are cached in redis when REDIS_URL is set.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().DurationVar(&saveInterval, "save-interval", time.Minute, "how often changed products are written back to storage")
}

func connectAmqp(url string) (*amqp.Connection, error) {
	conn, err := amqp.DialConfig(url, amqp.Config{
		Properties: amqp.NewConnectionProperties(),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}
	return conn, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	cfg := a.cfg

	ws := server.NewWebServer(a.shop, a.catalog.Grid, logger)
	ws.CacheDuration = cfg.CacheDuration

	if cfg.RedisUrl != "" {
		cache := server.NewCache(cfg.RedisUrl, cfg.RedisPassword, 0)
		defer cache.Close()
		if err := cache.Ping(ctx); err != nil {
			logger.Warn("redis not reachable, responses will be computed", zap.Error(err))
		}
		ws.Cache = cache
	}

	if cfg.RabbitUrl != "" {
		conn, err := connectAmqp(cfg.RabbitUrl)
		if err != nil {
			return err
		}
		defer conn.Close()
		listener := &messaging.ProductListener{Prefix: cfg.Country, Handler: a, Logger: logger}
		if err := listener.Listen(conn); err != nil {
			return err
		}
		trk, err := tracking.NewRabbitTracking(conn, cfg.Country, logger)
		if err != nil {
			logger.Warn("failed to start tracking", zap.Error(err))
		} else {
			defer trk.Close()
			ws.Tracking = trk
		}
	}

	timeouts := common.LoadTimeoutConfig(common.DefaultTimeouts())
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		srv := common.NewServer(cfg.ListenAddress, ws.ClientHandler(), timeouts)
		return common.ListenAndServeUntilDone(gctx, srv, logger, timeouts, a.save)
	})
	g.Go(func() error {
		srv := common.NewServer(cfg.DebugAddress, server.DebugHandler(cfg.Profiling), timeouts)
		return common.ListenAndServeUntilDone(gctx, srv, logger, timeouts)
	})
	g.Go(func() error {
		a.saveLoop(gctx, saveInterval)
		return nil
	})
	return g.Wait()
}

func (a *app) saveLoop(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.save(ctx); err != nil {
				logger.Error("periodic save failed", zap.Error(err))
			}
		}
	}
}
