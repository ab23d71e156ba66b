package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/logging"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/server"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/store"
)

type serveOptions struct {
	addr          string
	mongoURI      string
	mongoDB       string
	redisURI      string
	cacheTTL      time.Duration
	renderTimeout time.Duration
}

func (a *App) newServeCmd() *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the report API over HTTP",
		Long: `Serve the report API.

Without --mongo-uri the stored-survey routes answer 503; without --redis-uri
rendered images are not cached.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.addr, "addr", ":"+envOr("PORT", "8080"), "Listen address")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", envOr("MONGO_URI", ""), "MongoDB URI for stored tallies")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", envOr("MONGO_DB", "surveys"), "MongoDB database name")
	cmd.Flags().StringVar(&opts.redisURI, "redis-uri", envOr("REDIS_URI", ""), "Redis address or redis:// URL for the image cache")
	cmd.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", store.DefaultImageTTL, "How long rendered images stay cached")
	cmd.Flags().DurationVar(&opts.renderTimeout, "render-timeout", server.DefaultRenderTimeout, "Per-request render timeout")
	return cmd
}

func (a *App) runServe(ctx context.Context, opts *serveOptions) error {
	c := &server.Container{RenderTimeout: opts.renderTimeout, Version: Version}

	if opts.mongoURI != "" {
		repo, disconnect, err := connectTallies(ctx, opts.mongoURI, opts.mongoDB)
		if err != nil {
			return err
		}
		defer disconnect()
		c.Tallies = repo
	} else {
		logging.Warnf("MONGO_URI not set, stored survey routes disabled")
	}

	if opts.redisURI != "" {
		ropts, err := redisOptions(opts.redisURI)
		if err != nil {
			return err
		}
		rdb := redis.NewClient(ropts)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("ping Redis: %w", err)
		}
		c.Images = store.NewImageCache(rdb, opts.cacheTTL)
		logging.Infof("connected to Redis at %s", ropts.Addr)
	} else {
		logging.Warnf("REDIS_URI not set, image cache disabled")
	}

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           server.NewRouter(c),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logging.Info().Add(logging.Str("addr", opts.addr)).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	logging.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// redisOptions accepts a bare host:port or a redis:// URL.
func redisOptions(uri string) (*redis.Options, error) {
	if strings.HasPrefix(uri, "redis://") || strings.HasPrefix(uri, "rediss://") {
		o, err := redis.ParseURL(uri)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_URI: %w", err)
		}
		return o, nil
	}
	return &redis.Options{Addr: uri}, nil
}
