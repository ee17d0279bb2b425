package zone

// haswellChunkWidth emulates the 32-byte-per-instruction granularity of
// AVX2 (the "haswell" target in original_source/zone.c's targets[] table).
const haswellChunkWidth = 32

// indexHaswell is the AVX2-tier variant; see indexer_fallback.go.
func indexHaswell(data []byte, from, to int, st *scanState, t *tape) {
	indexInChunks(data, from, to, st, t, haswellChunkWidth)
}
