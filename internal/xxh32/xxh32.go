// Package xxh32 implements the 32-bit xxHash algorithm with an explicit seed.
//
// The LZ4Block stream framing stores an XXH32 checksum of each block's
// decompressed content, computed with a fixed non-zero seed, which rules out
// the common 64-bit xxHash modules.
package xxh32

import "encoding/binary"

const (
	prime1 uint32 = 0x9E3779B1
	prime2 uint32 = 0x85EBCA77
	prime3 uint32 = 0xC2B2AE3D
	prime4 uint32 = 0x27D4EB2F
	prime5 uint32 = 0x165667B1
)

func rotl(x uint32, r uint32) uint32 {
	return (x << r) | (x >> (32 - r))
}

func round(acc, lane uint32) uint32 {
	acc += lane * prime2
	acc = rotl(acc, 13)

	return acc * prime1
}

// Sum computes the seeded XXH32 digest of data in one shot.
func Sum(data []byte, seed uint32) uint32 {
	n := len(data)
	p := 0

	var h uint32
	if n >= 16 {
		v1 := seed + prime1 + prime2
		v2 := seed + prime2
		v3 := seed
		v4 := seed - prime1
		for ; p <= n-16; p += 16 {
			v1 = round(v1, binary.LittleEndian.Uint32(data[p:]))
			v2 = round(v2, binary.LittleEndian.Uint32(data[p+4:]))
			v3 = round(v3, binary.LittleEndian.Uint32(data[p+8:]))
			v4 = round(v4, binary.LittleEndian.Uint32(data[p+12:]))
		}
		h = rotl(v1, 1) + rotl(v2, 7) + rotl(v3, 12) + rotl(v4, 18)
	} else {
		h = seed + prime5
	}

	h += uint32(n)

	for ; p <= n-4; p += 4 {
		h += binary.LittleEndian.Uint32(data[p:]) * prime3
		h = rotl(h, 17) * prime4
	}
	for ; p < n; p++ {
		h += uint32(data[p]) * prime5
		h = rotl(h, 11) * prime1
	}

	h ^= h >> 15
	h *= prime2
	h ^= h >> 13
	h *= prime3
	h ^= h >> 16

	return h
}
