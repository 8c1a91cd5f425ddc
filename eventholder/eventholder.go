package eventholder

import "github.com/webclinic017/algorithmic-trading-7/common"

// Reset returns the event holder to its default state
func (h *Holder) Reset() {
	if h == nil {
		return
	}
	h.queue = nil
}

// AppendEvent appends an event to the tail of the queue
func (h *Holder) AppendEvent(e common.Event) {
	h.queue = append(h.queue, e)
}

// NextEvent removes and returns the head of the queue. A nil return means the
// queue has drained for this tick, which is expected control flow rather than
// a failure
func (h *Holder) NextEvent() common.Event {
	if len(h.queue) == 0 {
		return nil
	}
	e := h.queue[0]
	h.queue = h.queue[1:]
	return e
}

// Count returns the number of pending events
func (h *Holder) Count() int64 {
	return int64(len(h.queue))
}
