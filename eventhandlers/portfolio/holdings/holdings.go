package holdings

import (
	"time"

	"github.com/shopspring/decimal"
)

// Create marks cash and open positions to market for one bar
func Create(offset int64, timestamp time.Time, cash, positionsValue decimal.Decimal) Snapshot {
	return Snapshot{
		Offset:         offset,
		Timestamp:      timestamp,
		Cash:           cash,
		PositionsValue: positionsValue,
		TotalEquity:    cash.Add(positionsValue),
	}
}
