package randomart

// BitSetInPos returns the bit of num at position pos, where position 0 is
// the least significant bit.
func BitSetInPos(num uint, pos uint) uint {
	return (num >> pos) & 1
}

// BitsSetInRange returns bits [start, end) of num as an unsigned integer.
func BitsSetInRange(num uint, start, end uint) uint {
	mask := uint(1)<<(end-start) - 1
	return (num >> start) & mask
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
