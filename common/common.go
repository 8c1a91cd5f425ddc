package common

// IsEntry returns whether the direction opens exposure
func (d Direction) IsEntry() bool {
	return d == Long || d == Short
}

// IsValid checks the direction against the known sides
func (d Direction) IsValid() bool {
	switch d {
	case Long, Short, Exit:
		return true
	default:
		return false
	}
}
