package event

import "time"

// Base is the underlying event across all actions that occur for the backtester,
// such as a tick processed, or a signal to buy. Events are constructed once and
// treated as immutable outside of the reason trail
type Base struct {
	Offset  int64     `json:"offset"`
	Time    time.Time `json:"timestamp"`
	Reasons []string  `json:"reasons"`
}
