package hash

import "hash/crc32"

// crc32cTable is pre-computed for the CRC32-Castagnoli polynomial.
// Computing this once avoids repeated MakeTable calls.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// TokenHash computes the CRC32-Castagnoli checksum of a token's bytes.
// Uses hardware acceleration when available (SSE4.2, ARM CRC).
//
// The checksum is used for shard routing in the pheromone store, so the
// only requirements are speed and a reasonably uniform distribution over
// short UTF-8 strings.
func TokenHash(token string) uint32 {
	return crc32.Checksum([]byte(token), crc32cTable)
}
