package main

import (
	"fmt"

	"github.com/aretw0/dfasim"
	"github.com/aretw0/dfasim/internal/cli"
	"github.com/aretw0/dfasim/pkg/adapters/bolt"
	"github.com/aretw0/dfasim/pkg/adapters/redis"
	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish [source] --to <target>",
	Short: "Store a validated definition in a registry",
	Long: `Loads and validates the definition, then stores it so other processes
can load it by name:

  --to redis://host:port/name   redis registry (revision bumped under a lock)
  --to redis:///name            same, address from DFASIM_REDIS_ADDR
  --to bolt://catalog.db#name   local bolt catalog (created if missing)`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("source") && len(args) > 0 {
			opts.Source = args[0]
		}
		to, _ := cmd.Flags().GetString("to")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		target, err := cli.ResolveSource(to, opts.Config.Redis)
		if err != nil {
			return fmt.Errorf("invalid target: %w", err)
		}

		logger, err := cli.CreateLogger(opts.Config, opts.Debug)
		if err != nil {
			return err
		}
		engine, err := cli.CreateEngine(cmd.Context(), opts, logger)
		if err != nil {
			return err
		}
		def := engine.Definition()
		out := cmd.OutOrStdout()

		switch target.Scheme {
		case dfasim.SchemeRedis:
			catalog := redis.New(target.Path, target.Password, target.DB,
				redis.WithPrefix(opts.Config.Redis.Prefix),
				redis.WithTTL(ttl),
			)
			defer catalog.Close()

			rev, err := catalog.Publish(cmd.Context(), target.Name, &def)
			if err != nil {
				return fmt.Errorf("publish failed: %w", err)
			}
			fmt.Fprintf(out, "Published %s to %s (revision %d)\n", engine.Name, target, rev)

		case dfasim.SchemeBolt:
			catalog, err := bolt.Open(target.Path)
			if err != nil {
				return err
			}
			defer catalog.Close()

			if err := catalog.Save(cmd.Context(), target.Name, &def); err != nil {
				return fmt.Errorf("publish failed: %w", err)
			}
			fmt.Fprintf(out, "Published %s to %s\n", engine.Name, target)

		default:
			return fmt.Errorf("publish target must be redis:// or bolt://, got %q", to)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
	publishCmd.Flags().String("to", "", "Target registry (redis://host:port/name or bolt://path#name)")
	publishCmd.Flags().Duration("ttl", 0, "Expire the redis entry after this duration (0 keeps it)")
	_ = publishCmd.MarkFlagRequired("to")
}
