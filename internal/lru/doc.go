// Package lru implements a fixed-capacity key–value cache with
// least-recently-used eviction.
//
// Goals for this package:
//   - Make the core data structures explicit (key index + arena-backed recency list)
//   - Provide O(1) Put/Get/Delete via map lookup + predecessor/successor links
//   - Keep recency order solely in the explicit links; map iteration order is never used
//   - Recycle arena slots through a free list so long put/delete cycles don't grow memory
//
// The cache is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
package lru
