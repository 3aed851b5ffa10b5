package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/fitsync/internal/middleware"
	"github.com/2beens/fitsync/internal/server"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local server UIs read engine state from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		return withEngine(ctx, func(e *engine) error {
			var rateLimiter middleware.RequestRateLimiter
			if e.redisClient != nil {
				rateLimiter = redis_rate.NewLimiter(e.redisClient)
			} else {
				log.Warnln("no redis configured, login requests will not be rate limited")
			}

			srv := server.NewServer(server.NewServerParams{
				Catalog:        e.catalog,
				Courses:        e.courses,
				Session:        e.session,
				Bus:            e.bus,
				RateLimiter:    rateLimiter,
				LoginPerMin:    e.cfg.LoginRateLimitAllowedPerMin,
				AllowedOrigins: e.cfg.AllowedOrigins,
				MetricsManager: e.metricsManager,
				PromRegistry:   e.promRegistry,
			})

			go e.session.MonitorExpiry(ctx, e.cfg.TokenCheckInterval)

			srv.Serve(e.cfg.Host, e.cfg.Port)

			chOsInterrupt := make(chan os.Signal, 1)
			signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

			receivedSig := <-chOsInterrupt
			log.Warnf("signal [%s] received ...", receivedSig)

			cancel()
			srv.GracefulShutdown()
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
