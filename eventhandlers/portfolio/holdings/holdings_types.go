package holdings

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot captures the portfolio value at one bar, one snapshot is appended
// to the equity curve per market event
type Snapshot struct {
	Offset         int64           `json:"offset"`
	Timestamp      time.Time       `json:"timestamp"`
	Cash           decimal.Decimal `json:"cash"`
	PositionsValue decimal.Decimal `json:"positions-value"`
	TotalEquity    decimal.Decimal `json:"total-equity"`
}
