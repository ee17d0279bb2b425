package zone

// westmereChunkWidth emulates the 16-byte-per-instruction granularity of
// SSE4.2 (the "westmere" target in original_source/zone.c's targets[]
// table).
const westmereChunkWidth = 16

// indexWestmere is the SSE4.2-tier variant. See indexer_fallback.go's
// indexInChunks doc comment: the wider grouping changes nothing observable
// about the tape, only the (simulated) vector width, which is the
// distinction spec §4.2 draws between targets.
func indexWestmere(data []byte, from, to int, st *scanState, t *tape) {
	indexInChunks(data, from, to, st, t, westmereChunkWidth)
}
