package event

import (
	"fmt"
	"strings"
	"time"
)

// GetOffset returns the offset
func (b *Base) GetOffset() int64 {
	return b.Offset
}

// SetOffset sets the offset
func (b *Base) SetOffset(o int64) {
	b.Offset = o
}

// GetTime returns the time
func (b *Base) GetTime() time.Time {
	return b.Time
}

// GetReason returns the concatenated reasons
func (b *Base) GetReason() string {
	return strings.Join(b.Reasons, ". ")
}

// AppendReason adds reasoning for a decision being made
func (b *Base) AppendReason(y string) {
	b.Reasons = append(b.Reasons, y)
}

// AppendReasonf adds formatted reasoning for a decision being made
func (b *Base) AppendReasonf(format string, v ...any) {
	b.Reasons = append(b.Reasons, fmt.Sprintf(format, v...))
}
