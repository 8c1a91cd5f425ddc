package tick

// IsTick helps distinguish a market tick from other events that otherwise
// implement the same base interface
func (t *Tick) IsTick() bool {
	return true
}
