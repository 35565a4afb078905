package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/build-roller/internal/config"
	"github.com/KirkDiggler/build-roller/internal/errors"
	"github.com/KirkDiggler/build-roller/internal/redis"
	catalogrepo "github.com/KirkDiggler/build-roller/internal/repositories/catalog"
)

var purgeCorrupt bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the shared Redis catalog cache",
}

var cacheCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Find cached catalogs that no longer decode",
	Long: `Scan every catalog stored in Redis and report entries that fail to decode
or validate. With --purge those entries are deleted so the next run reparses
the source file.`,
	Args: cobra.NoArgs,
	RunE: runCacheCheck,
}

func init() {
	cacheCheckCmd.Flags().BoolVar(&purgeCorrupt, "purge", false, "delete corrupt entries")
	cacheCmd.AddCommand(cacheCheckCmd)
}

func runCacheCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	setupLogging(cfg)

	if !cfg.Redis.Enabled() {
		return errors.FailedPrecondition("redis.addr is not configured, there is no shared cache to check")
	}

	ctx := contextOf(cmd)
	client, err := redis.NewClient(cfg.Redis.Addr, &redis.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if err := redis.Ping(ctx, client); err != nil {
		return err
	}

	return checkCache(ctx, client, purgeCorrupt, cmd.OutOrStdout())
}

func checkCache(ctx context.Context, client redis.Client, purge bool, out io.Writer) error {
	result, err := catalogrepo.CheckRedis(ctx, client)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Checked %d cached catalogs, %d corrupt\n", result.Checked, len(result.Corrupt))
	for _, key := range result.Corrupt {
		fmt.Fprintf(out, "  - %s\n", key)
	}
	if !purge || len(result.Corrupt) == 0 {
		return nil
	}

	n, err := catalogrepo.DeleteRedisKeys(ctx, client, result.Corrupt)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted %d entries\n", n)
	return nil
}
