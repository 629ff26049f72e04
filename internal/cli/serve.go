package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aryaneelshivam/deadpanda/internal/config"
	"github.com/aryaneelshivam/deadpanda/internal/server"
	"github.com/aryaneelshivam/deadpanda/pkg/cache"
)

// newServeCmd creates the serve command, which runs the HTTP API until the
// process receives an interrupt.
func newServeCmd() *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the deadlock-analyzer HTTP API",
		Long: `Serve the analysis API over HTTP.

Configuration is read from an optional TOML file (--config), overridden by
DEADPANDA_* environment variables, overridden by flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			store, err := newCache(cmd, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			srv := server.New(logger, server.Options{
				CORSOrigin: cfg.CORSOrigin,
				Cache:      store,
				CacheTTL:   cfg.CacheTTL(),
				Version:    Version(),
			})
			return srv.Run(ctx, cfg.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config, default :8000)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")

	return cmd
}

// newCache builds the response cache selected by the configuration.
func newCache(cmd *cobra.Command, cfg config.Config) (cache.Cache, error) {
	logger := loggerFromContext(cmd.Context())

	switch cfg.Cache.Backend {
	case "none":
		return cache.NewNullCache(), nil
	case "memory":
		return cache.NewMemoryCache(), nil
	case "redis":
		logger.Debug("connecting to redis", "addr", cfg.Cache.Redis.Addr)
		store, err := cache.NewRedisCache(cmd.Context(), cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("connect redis %s: %w", cfg.Cache.Redis.Addr, err)
		}
		return store, nil
	default:
		// config.Load already validated the backend name.
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
