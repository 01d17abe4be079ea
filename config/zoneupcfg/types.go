// Package zoneupcfg defines the configuration schema (structs) for zoneup.yml.
// This package is intended for YAML -> struct deserialization.
// Loading helpers and validations are implemented separately.
package zoneupcfg

// Root is the root structure of zoneup.yml.
type Root struct {
	Version  string   `yaml:"version"`
	Provider Provider `yaml:"provider"`
	Defaults Defaults `yaml:"defaults"`
	Journal  Journal  `yaml:"journal"`
}

// Provider represents DNS control-plane provider configuration.
type Provider struct {
	Name     string            `yaml:"name"`     // provider name
	Driver   string            `yaml:"driver"`   // e.g., "route53", "azuredns"
	Settings map[string]string `yaml:"settings"` // driver-specific settings
}

// Defaults represents fallback values for update operations.
type Defaults struct {
	TTL      int64  `yaml:"ttl"`      // default TTL in seconds when no existing record matches
	ZoneType string `yaml:"zoneType"` // zone visibility filter: prefer-public, public, private
	Comment  string `yaml:"comment"`  // default change batch comment
}

// Journal represents change journal persistence settings.
type Journal struct {
	URL string `yaml:"url"` // db-url, e.g., sqlite:./zoneup.db
}
