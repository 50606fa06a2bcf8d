package solver

import "math/bits"

// mask is a fixed 128-bit set, word 0 holding bits 0..63. Boards go up to
// domain.MaxSize columns, which never fits a single machine word.
type mask [2]uint64

func allOnes(n int) mask {
	switch {
	case n >= 128:
		return mask{^uint64(0), ^uint64(0)}
	case n >= 64:
		return mask{^uint64(0), 1<<(uint(n)-64) - 1}
	default:
		return mask{1<<uint(n) - 1, 0}
	}
}

func oneBit(i int) mask {
	var m mask
	m[i>>6] = 1 << (uint(i) & 63)
	return m
}

func (m mask) or(o mask) mask     { return mask{m[0] | o[0], m[1] | o[1]} }
func (m mask) andNot(o mask) mask { return mask{m[0] &^ o[0], m[1] &^ o[1]} }
func (m mask) isZero() bool       { return m[0] == 0 && m[1] == 0 }

func (m mask) test(i int) bool {
	return m[i>>6]&(1<<(uint(i)&63)) != 0
}

// shl1 shifts the whole set one column left, carrying bit 63 into word 1.
func (m mask) shl1() mask {
	return mask{m[0] << 1, m[1]<<1 | m[0]>>63}
}

// shr1 shifts one column right, carrying bit 64 down into word 0.
func (m mask) shr1() mask {
	return mask{m[0]>>1 | m[1]<<63, m[1] >> 1}
}

// lowBit isolates the least significant set bit.
func (m mask) lowBit() mask {
	if m[0] != 0 {
		return mask{m[0] & -m[0], 0}
	}
	return mask{0, m[1] & -m[1]}
}

// index returns the position of the lowest set bit; the set must be non-empty.
func (m mask) index() int {
	if m[0] != 0 {
		return bits.TrailingZeros64(m[0])
	}
	return 64 + bits.TrailingZeros64(m[1])
}
