package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpack/internal/api"
	"github.com/matzehuels/gridpack/pkg/buildinfo"
	"github.com/matzehuels/gridpack/pkg/cache"
	"github.com/matzehuels/gridpack/pkg/observability"
	"github.com/matzehuels/gridpack/pkg/pipeline"
)

const defaultAddr = "127.0.0.1:8080"

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
		redis   cache.RedisConfig
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout engine over HTTP",
		Long: `Serve the layout engine over HTTP.

Endpoints: POST /v1/compact, /v1/bounds, /v1/move, /v1/resize, /v1/resolve
and GET /healthz. Engine settings and breakpoints come from the config file.

Results are cached in the local cache directory, or in Redis when
--redis-addr is set so that several instances share one cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			var runner *pipeline.Runner
			if redis.Addr != "" && !noCache {
				rc, err := cache.NewRedisCache(ctx, redis)
				if err != nil {
					return fmt.Errorf("connect to redis: %w", err)
				}
				logger.Info("using redis cache", "addr", redis.Addr, "db", redis.DB)
				// Instances running different builds must not share results.
				keyer := cache.NewScopedKeyer(nil, buildinfo.Version+":")
				runner = pipeline.NewRunner(rc, keyer, logger)
			} else {
				runner, err = c.newRunner(noCache)
				if err != nil {
					return fmt.Errorf("initialize runner: %w", err)
				}
			}
			defer runner.Close()

			observability.NewLogHooks(logger).Register()
			defer observability.Reset()

			return api.New(runner, cfg, logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&redis.Addr, "redis-addr", "", "Redis address (host:port); empty uses the local file cache")
	cmd.Flags().StringVar(&redis.Username, "redis-username", "", "Redis ACL username")
	cmd.Flags().StringVar(&redis.Password, "redis-password", "", "Redis password")
	cmd.Flags().IntVar(&redis.DB, "redis-db", 0, "Redis database number")
	cmd.Flags().StringVar(&redis.Prefix, "redis-prefix", cache.DefaultRedisPrefix, "key prefix for Redis entries")
	cmd.Flags().DurationVar(&redis.DialTimeout, "redis-timeout", 5*time.Second, "Redis dial timeout")

	return cmd
}
