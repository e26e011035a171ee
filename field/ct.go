package field

// Mask turns a bit (0 or 1) into an all-zero or all-one word.
func Mask(bit uint64) uint64 {
	return -bit
}

// Select returns a if mask is all ones and b if mask is zero, without
// branching on mask.
func Select(mask, a, b uint64) uint64 {
	return b ^ (mask & (a ^ b))
}

// fpCondSwap swaps x and y when mask is all ones.
func (f *Field) fpCondSwap(x, y *Fp, mask uint64) {
	for i := 0; i < f.words; i++ {
		xi, yi := x[i], y[i]
		x[i] = Select(mask, yi, xi)
		y[i] = Select(mask, xi, yi)
	}
}

// CondSwap swaps x and y when bit is 1 and leaves them when bit is 0.
//
// The same memory accesses happen in both cases.
func (f *Field) CondSwap(x, y *Fp2, bit uint8) {
	f.trace(OpSwap)
	mask := Mask(uint64(bit & 1))
	f.fpCondSwap(&x.A, &y.A, mask)
	f.fpCondSwap(&x.B, &y.B, mask)
}
