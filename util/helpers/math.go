package helpers

import "golang.org/x/exp/constraints"

func Min[T constraints.Ordered](numbers ...T) T {
	var min T = numbers[0]
	for _, n := range numbers {
		if n < min {
			min = n
		}
	}
	return min
}

// Align rounds n up to the nearest multiple of boundary.
// boundary must be a power of two.
func Align[T constraints.Integer](n, boundary T) T {
	return (n + boundary - 1) & ^(boundary - 1)
}

func GetBit(b uint8, bit uint8) bool {
	return b&(1<<bit) != 0
}

func SetBit(b *uint8, bit uint8, val bool) {
	if val {
		*b |= 1 << bit
	} else {
		*b &= ^(uint8(1) << bit)
	}
}
