// Package hash provides the hashing used to route tokens to store shards.
//
// All routing uses CRC32-Castagnoli (CRC32C) which provides:
//
//   - Hardware acceleration on x86 (SSE4.2) and ARM (CRC extension)
//   - 10-20 GB/s throughput on modern CPUs
//   - Good distribution over short keys
//
// The crc32cTable is pre-computed at package init time, avoiding repeated
// table generation. Go's crc32 package automatically uses hardware
// instructions when available.
package hash
