package main

import (
	"github.com/spf13/cobra"
	"github.com/zoneup/zoneup/domain/model"
	"github.com/zoneup/zoneup/internal/logging"
	"github.com/zoneup/zoneup/usecase/record"
)

func newCmdUpdate() *cobra.Command {
	var (
		zoneID       string
		zoneName     string
		zoneType     string
		recordName   string
		recordType   string
		values       []string
		valueFrom    string
		valueFromURL string
		addressType  string
		ttl          int64
		comment      string
		wait         bool
		clear        bool
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:                "update",
		Short:              "Update a DNS record in its authoritative zone",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, cfg, err := buildRecordUseCase(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := logging.FromContext(ctx)

			visibility, err := model.ParseZoneVisibility(zoneType)
			if err != nil {
				return err
			}
			source, err := model.ParseValueSource(valueFrom)
			if err != nil {
				return err
			}
			kind, err := model.ParseAddressKind(addressType)
			if err != nil {
				return err
			}

			var defaultTTL int64
			if cfg != nil {
				// The configured TTL is a fallback, not an override: it only
				// applies when no existing record supplies one.
				defaultTTL = cfg.Defaults.TTL
				if zoneType == "" && cfg.Defaults.ZoneType != "" {
					visibility, err = model.ParseZoneVisibility(cfg.Defaults.ZoneType)
					if err != nil {
						return err
					}
				}
				if comment == "" {
					comment = cfg.Defaults.Comment
				}
			}

			logger.Info(ctx, "record update start",
				"record", recordName, "type", recordType, "wait", wait, "clear", clear, "dry_run", dryRun)

			out, err := uc.Update(ctx, &record.UpdateInput{
				ZoneID:         zoneID,
				ZoneName:       zoneName,
				ZoneVisibility: visibility,
				RecordName:     recordName,
				RecordType:     model.RecordType(recordType),
				Values:         values,
				ValueFrom:      source,
				ValueFromURL:   valueFromURL,
				AddressKind:    kind,
				TTL:            ttl,
				DefaultTTL:     defaultTTL,
				Comment:        comment,
				Wait:           wait,
				Clear:          clear,
				DryRun:         dryRun,
			})
			if err != nil {
				return err
			}

			for _, d := range out.Deleted {
				if out.DryRun {
					logger.Info(ctx, "would delete record", "name", d.Name, "type", d.Type, "values", d.Values)
				} else {
					logger.Info(ctx, "deleted record", "name", d.Name, "type", d.Type, "values", d.Values)
				}
			}
			if out.DryRun {
				logger.Info(ctx, "would upsert record",
					"zone", out.Zone.Name, "name", out.Record.Name, "type", out.Record.Type,
					"ttl", out.Record.TTL, "values", out.Record.Values)
				return nil
			}
			logger.Info(ctx, "record update complete",
				"zone", out.Zone.Name, "name", out.Record.Name, "type", out.Record.Type,
				"ttl", out.Record.TTL, "values", out.Record.Values,
				"change_id", out.Change.ID, "status", out.Change.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&zoneID, "zone-id", "", "Hosted zone ID (skips zone discovery)")
	cmd.Flags().StringVar(&zoneName, "zone-name", "", "Hosted zone name (anchors zone discovery)")
	cmd.Flags().StringVar(&zoneType, "zone-type", "", "Zone visibility filter (prefer-public|public|private)")
	cmd.Flags().StringVarP(&recordName, "record-name", "r", "", "Record name to update (required)")
	cmd.Flags().StringVar(&recordType, "record-type", "", "Record type (A|AAAA|CNAME|TXT) (default: detected from values)")
	cmd.Flags().StringArrayVarP(&values, "value", "v", nil, "Record value (repeatable)")
	cmd.Flags().StringVar(&valueFrom, "value-from", "", "Probe a metadata service for the value (auto|ec2-metadata|ecs-metadata)")
	cmd.Flags().StringVar(&valueFromURL, "value-from-url", "", "Fetch the record value from a URL")
	cmd.Flags().StringVar(&addressType, "address-type", "", "Address kind for metadata probes (public|private)")
	cmd.Flags().Int64Var(&ttl, "ttl", 0, "Record TTL in seconds (default: copy existing record, or 300)")
	cmd.Flags().StringVar(&comment, "comment", "", "Change batch comment")
	cmd.Flags().BoolVar(&wait, "wait", false, "Wait until the change has propagated")
	cmd.Flags().BoolVar(&clear, "clear", false, "Delete conflicting A/AAAA/CNAME records first")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be changed without applying")
	_ = cmd.MarkFlagRequired("record-name")

	return cmd
}
