// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock provides the current time. Period resolution and trend bucketing
// read "now" only through this interface.
type Clock interface {
	Now() time.Time
}
