package zoneupcfg

import (
	"fmt"

	"github.com/zoneup/zoneup/domain/model"
)

// Validate performs semantic validation on the configuration tree.
func (r *Root) Validate() error {
	if err := r.Defaults.validate(); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	return nil
}

func (d *Defaults) validate() error {
	if d.TTL < 0 {
		return fmt.Errorf("ttl: must not be negative, got %d", d.TTL)
	}
	if _, err := model.ParseZoneVisibility(d.ZoneType); err != nil {
		return fmt.Errorf("zoneType: %w", err)
	}
	return nil
}
