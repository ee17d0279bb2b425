package zone

// tapeCode classifies a structural index the way original_source/zone.c's
// zone_index_t pairs an offset with a byte code (spec §2.2, §4.2).
type tapeCode int

const (
	tapeFieldStart tapeCode = iota + 1
	tapeQuoteStart
	tapeQuoteEnd
	tapeParenOpen
	tapeParenClose
	tapeCommentStart
	tapeNewline
	tapeWindowEnd
)

// tapeEntry is one structural index: a byte offset (relative to the window
// currently being scanned) plus its code.
type tapeEntry struct {
	offset int
	code   tapeCode
}

// tape is the ordered list of structural indices the indexer produces for
// one window's worth of data (spec §2.2 "Tape"). head is the next unread
// entry. The tape is reset and rebuilt after the window compacts, and is
// appended to (after its stale tapeWindowEnd entry is dropped) when the
// window is extended in place mid-token — unlike the C source's two-slot
// ring, Go's slice append gives us this for free without sacrificing the
// "never advance past the tail" invariant (spec §3).
type tape struct {
	entries []tapeEntry
	head    int
}

func (t *tape) reset() {
	t.entries = t.entries[:0]
	t.head = 0
}

func (t *tape) push(offset int, code tapeCode) {
	t.entries = append(t.entries, tapeEntry{offset: offset, code: code})
}

func (t *tape) next() (tapeEntry, bool) {
	if t.head >= len(t.entries) {
		return tapeEntry{}, false
	}
	e := t.entries[t.head]
	t.head++
	return e, true
}

func (t *tape) peek() (tapeEntry, bool) {
	if t.head >= len(t.entries) {
		return tapeEntry{}, false
	}
	return t.entries[t.head], true
}
