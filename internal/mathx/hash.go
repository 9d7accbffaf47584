package mathx

// Hash32 mixes a 32-bit input into a well-distributed 32-bit output
// using murmur-finalizer style avalanching. It is stable across
// versions and platforms; never replace it with math/rand.
func Hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// Hash2 returns a stable hash for a 2D integer lattice point combined
// with a seed. Large odd constants decorrelate the axes.
func Hash2(seed uint32, x, y int32) uint32 {
	h := seed
	h ^= uint32(x) * 0x9e3779b1
	h ^= uint32(y) * 0x85ebca6b
	return Hash32(h)
}
