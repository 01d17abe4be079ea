package main

import (
	"context"
	"os"

	"log/slog"

	"github.com/spf13/cobra"
	_ "github.com/zoneup/zoneup/adapters/drivers/dns/azuredns"
	_ "github.com/zoneup/zoneup/adapters/drivers/dns/route53"
	"github.com/zoneup/zoneup/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "zoneup",
		Short:   "Zoneup dynamic DNS record updater",
		Long:    "Zoneup dynamic DNS record updater",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultConfig := os.Getenv("ZONEUP_CONFIG")
	if defaultConfig == "" {
		defaultConfig = "zoneup.yml"
	}
	cmd.PersistentFlags().String("config", defaultConfig, "Config file path (env ZONEUP_CONFIG)")
	cmd.PersistentFlags().String("driver", "", "DNS driver (route53|azuredns) (default: provider.driver in config, or route53)")
	cmd.PersistentFlags().String("journal-url", "", "Change journal database URL (sqlite:/path/to.db) (default: journal.url in config)")
	cmd.PersistentFlags().String("log-format", "human", "Log format (human|text|json) (env ZONEUP_LOG_FORMAT)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		format, _ := c.Flags().GetString("log-format")
		if env := os.Getenv("ZONEUP_LOG_FORMAT"); env != "" { // env overrides flag
			format = env
		}
		l, err := logging.New(format, slog.LevelInfo)
		if err != nil {
			return err
		}
		ctx := logging.WithLogger(c.Context(), l)
		c.SetContext(ctx)
		return nil
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdUpdate())
	cmd.AddCommand(newCmdHistory())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		os.Exit(1)
	}
}
