package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	dnsdrv "github.com/zoneup/zoneup/adapters/drivers/dns"
	"github.com/zoneup/zoneup/adapters/metadata"
	"github.com/zoneup/zoneup/adapters/store/rdb"
	"github.com/zoneup/zoneup/config/zoneupcfg"
	"github.com/zoneup/zoneup/domain"
	"github.com/zoneup/zoneup/usecase/record"
)

// findFlag recursively searches parents for a flag.
func findFlag(cmd *cobra.Command, name string) *pflag.Flag {
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.Flags().Lookup(name); f != nil {
			return f
		}
		if f := c.PersistentFlags().Lookup(name); f != nil {
			return f
		}
	}
	return nil
}

// flagValue returns the string value of a flag defined on cmd or any parent.
func flagValue(cmd *cobra.Command, name string) string {
	if f := findFlag(cmd, name); f != nil {
		return f.Value.String()
	}
	return ""
}

// loadConfig reads the config file named by the --config flag. When the
// flag is left at its default and the file does not exist, a nil config
// is returned; an explicitly given path must exist.
func loadConfig(cmd *cobra.Command) (*zoneupcfg.Root, error) {
	f := findFlag(cmd, "config")
	if f == nil {
		return nil, nil
	}
	cfg, err := zoneupcfg.Load(f.Value.String())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !f.Changed {
			return nil, nil
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", f.Value.String(), err)
	}
	return cfg, nil
}

// buildRecordUseCase wires the record use case: DNS driver, value
// source adapter, and optional change journal. Flags override config.
func buildRecordUseCase(cmd *cobra.Command) (*record.UseCase, *zoneupcfg.Root, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	driverName := flagValue(cmd, "driver")
	if driverName == "" && cfg != nil {
		driverName = cfg.Provider.Driver
	}
	if driverName == "" {
		driverName = "route53"
	}
	factory, ok := dnsdrv.GetDriverFactory(driverName)
	if !ok {
		return nil, nil, fmt.Errorf("unknown DNS driver: %s", driverName)
	}
	var settings map[string]string
	if cfg != nil {
		settings = cfg.Provider.Settings
	}
	driver, err := factory(settings)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize %s driver: %w", driverName, err)
	}

	journalURL := flagValue(cmd, "journal-url")
	if journalURL == "" && cfg != nil {
		journalURL = cfg.Journal.URL
	}
	var journal domain.JournalRepository
	if journalURL != "" {
		db, err := rdb.OpenFromURL(journalURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open journal database: %w", err)
		}
		if err := rdb.AutoMigrate(db); err != nil {
			return nil, nil, fmt.Errorf("migrate journal database: %w", err)
		}
		journal = rdb.NewJournalRepository(db)
	}

	return &record.UseCase{
		Port:    driver,
		Source:  metadata.New(),
		Journal: journal,
	}, cfg, nil
}
