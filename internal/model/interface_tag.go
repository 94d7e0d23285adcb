package model

import "time"

// InterfaceTag asserts that a contract's function surface matches a known
// standard. At most one row exists per (address, interface); rewriting only
// refreshes DetectedAt.
type InterfaceTag struct {
	Network    Network
	Address    string
	Interface  string
	DetectedAt time.Time
}
