package zone

import "io"

// windowSize is the compile-time sliding window size spec §4.1 calls
// "typical 4 KiB". It is a multiple of every indexer chunk width (32, 16
// and 8 bytes, §4.2).
const windowSize = 4096

// window is the Input Window (spec §4.1): a fixed-size buffer backing the
// current file, refilled by memmove'ing unconsumed tail bytes to the front
// and topping up from the source. For string sources it holds a copy of the
// whole string and is never refilled.
type window struct {
	data   []byte
	length int // bytes of data actually in data[:length]
	index  int // read cursor into data[:length]

	source io.Reader // nil for string sources
	atEOF  bool       // true once source returned 0 bytes (or never existed)
}

func newFileWindow(r io.Reader) *window {
	return &window{
		data:   make([]byte, windowSize+1),
		source: r,
	}
}

func newStringWindow(s string) *window {
	// the buffer is a copy of s; refill is a no-op forever.
	b := make([]byte, len(s)+1) // +1 sentinel, matching the file-backed window
	copy(b, s)
	return &window{
		data:   b,
		length: len(s),
		atEOF:  true,
	}
}

// remaining returns the unconsumed bytes of the window.
func (w *window) remaining() []byte {
	return w.data[w.index:w.length]
}

func (w *window) advance(n int) {
	w.index += n
	if w.index > w.length {
		w.index = w.length
	}
}

// exhausted reports whether there is no more data to read, from the window
// or the source.
func (w *window) exhausted() bool {
	return w.index >= w.length && w.atEOF
}

// refill moves unconsumed tail bytes (data[index:length]) to the front of
// the buffer and reads more from the source to fill the remainder, per spec
// §4.1. It is a no-op for string sources (atEOF is always true for them).
// Returns the number of bytes shifted out of the front of the buffer, so a
// caller tracking offsets into the old layout (e.g. the lexer's line-start
// column anchor) can rebase them.
func (w *window) refill() (shifted int, err error) {
	if w.source == nil || w.atEOF {
		return 0, nil
	}

	shifted = w.index
	tail := w.length - w.index
	if tail > 0 {
		copy(w.data, w.data[w.index:w.length])
	}
	w.length = tail
	w.index = 0

	n, rerr := io.ReadFull(w.source, w.data[w.length:len(w.data)-1])
	if n > 0 {
		w.length += n
	}
	switch rerr {
	case nil:
		return shifted, nil
	case io.ErrUnexpectedEOF, io.EOF:
		w.atEOF = true
		return shifted, nil
	default:
		return shifted, Error{Code: ErrIO, Message: rerr.Error()}
	}
}

// grow doubles the buffer capacity, preserving every byte already in
// data[:length] at the same offset. Used when a single token (typically an
// escape-laden or quoted field) does not fit in one window's worth of data.
// This implements spec §9's resolution of the open question about tokens
// exceeding the window: support via refill/regrow, not rejection.
func (w *window) grow() {
	bigger := make([]byte, len(w.data)*2)
	copy(bigger, w.data[:w.length])
	w.data = bigger
}

// extendInPlace appends more source bytes after data[:length] WITHOUT
// shifting existing bytes, so offsets already handed out (e.g. a
// tapeQuoteStart or tapeFieldStart position mid-construction) stay valid.
// It grows the buffer first if there isn't room. A no-op once atEOF. This
// is the non-destructive counterpart to refill, used whenever the lexer is
// mid-token (inside a quote, comment, escape sequence, or unquoted field,
// see Lexer.more and Lexer.scanField) and cannot afford
// to lose the bytes scanned so far.
func (w *window) extendInPlace() (bool, error) {
	if w.source == nil || w.atEOF {
		return false, nil
	}
	if len(w.data)-w.length < windowSize/2 {
		w.grow()
	}
	n, err := io.ReadFull(w.source, w.data[w.length:len(w.data)-1])
	if n > 0 {
		w.length += n
	}
	switch err {
	case nil:
		return n > 0, nil
	case io.ErrUnexpectedEOF, io.EOF:
		w.atEOF = true
		return n > 0, nil
	default:
		return false, Error{Code: ErrIO, Message: err.Error()}
	}
}
