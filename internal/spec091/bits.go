package spec091

// packBits packs up to 8 booleans into a single octet, least-significant
// bit first, matching AMQP 0-9-1's bit-field argument packing.
func packBits(bits ...bool) byte {
	var b byte
	for i, v := range bits {
		if v {
			b |= 1 << uint(i)
		}
	}
	return b
}

func unpackBits(b byte, n int) []bool {
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i] = b&(1<<uint(i)) != 0
	}
	return out
}

func unpackBits2(b byte) (a, c bool) {
	bits := unpackBits(b, 2)
	return bits[0], bits[1]
}

func unpackBits5(b byte) (a, c, d, e, f bool) {
	bits := unpackBits(b, 5)
	return bits[0], bits[1], bits[2], bits[3], bits[4]
}
