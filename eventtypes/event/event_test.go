package event

import (
	"testing"
	"time"
)

func TestEvent(t *testing.T) {
	t.Parallel()
	tt := time.Now()
	b := &Base{Offset: 1, Time: tt}
	if b.GetOffset() != 1 {
		t.Error("expected 1")
	}
	b.SetOffset(2)
	if b.GetOffset() != 2 {
		t.Error("expected 2")
	}
	if !b.GetTime().Equal(tt) {
		t.Errorf("received '%v' expected '%v'", b.GetTime(), tt)
	}
}

func TestReason(t *testing.T) {
	t.Parallel()
	b := &Base{}
	if b.GetReason() != "" {
		t.Error("expected empty reason")
	}
	b.AppendReason("test")
	b.AppendReasonf("%v %v", "z-score", 1.5)
	if b.GetReason() != "test. z-score 1.5" {
		t.Errorf("received '%v'", b.GetReason())
	}
}
