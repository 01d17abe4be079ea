// Package dnsdrv hosts control-plane drivers implementing model.DNSPort.
// Implementations live under adapters/drivers/dns/<name> and register
// themselves via Register from their init() function.
package dnsdrv

import "github.com/zoneup/zoneup/domain/model"

// Driver abstracts a DNS control plane (identifier plus the DNS port).
type Driver interface {
	// ID returns the driver identifier (e.g., "route53").
	ID() string

	model.DNSPort
}

// driverFactory is a constructor function for a control-plane driver.
type driverFactory func(settings map[string]string) (Driver, error)

// registry holds registered drivers by name.
var registry = map[string]driverFactory{}

// Register makes a driver available by the given name. Drivers should
// call this from their init() function.
func Register(name string, factory driverFactory) {
	registry[name] = factory
}

// GetDriverFactory returns the driver factory function for the given name.
func GetDriverFactory(name string) (driverFactory, bool) {
	factory, exists := registry[name]
	return factory, exists
}
