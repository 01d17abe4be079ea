package main

import (
	"github.com/spf13/cobra"
	"github.com/zoneup/zoneup/internal/logging"
	"github.com/zoneup/zoneup/usecase/record"
)

func newCmdHistory() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:                "history",
		Short:              "List journaled record changes, most recent first",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, _, err := buildRecordUseCase(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := logging.FromContext(ctx)

			out, err := uc.History(ctx, &record.HistoryInput{Limit: limit})
			if err != nil {
				return err
			}
			if len(out.Entries) == 0 {
				logger.Info(ctx, "no journal entries")
				return nil
			}
			for _, e := range out.Entries {
				logger.Info(ctx, "journal entry",
					"id", e.ID, "created_at", e.CreatedAt, "zone", e.ZoneName,
					"action", e.Action, "name", e.RecordName, "type", e.RecordType, "ttl", e.TTL,
					"values", e.Values, "change_id", e.ChangeID, "status", e.Status)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries to list (0 = all)")

	return cmd
}
