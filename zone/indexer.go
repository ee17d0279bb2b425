package zone

// scanState carries the running quote/comment/escape state across chunk
// boundaries within one window, and across refills of the same window
// (spec §4.10 "Quote/paren state": normal, in-quote, in-comment — paren depth
// is tracked separately by the Lexer (Lexer.parenDepth), §4.3, since it is a
// lexer-level concept, not a byte-classification one).
type scanState struct {
	inQuote      bool
	inComment    bool
	escapeSingle bool // next byte is escaped via a lone backslash
	escapeDigits int   // remaining decimal-escape digits to swallow (\DDD)
	atFieldStart bool  // true at window/record start and after whitespace
}

// indexKernel is the contract all three tape-construction variants share
// (spec §4.2 "Three implementations exist behind a common interface").
// Each call classifies data[from:to] and appends structural entries to t,
// carrying *st* across calls so quotes/comments/escapes may span window
// refills. from is normally 0 (a full rebuild after the window compacts)
// but is non-zero when the lexer grows the window in place mid-token (see
// window.extendInPlace): only the newly appended bytes need classifying,
// since earlier offsets and their tape entries are still valid.
type indexKernel func(data []byte, from, to int, st *scanState, t *tape)

// classifyByte is the single source of truth for what a byte means; every
// variant below calls it for every byte it processes, which is what makes
// the "bit-identical across variants" property (spec §8) trivially true:
// the variants differ only in how many bytes they process per outer loop
// iteration (32, 16 and 8 bytes for haswell, westmere and fallback), never
// in the classification itself.
func classifyByte(b byte) (whitespace, newline, quote, parenOpen, parenClose, semicolon, backslash bool) {
	switch b {
	case ' ', '\t', '\r':
		return true, false, false, false, false, false, false
	case '\n':
		return true, true, false, false, false, false, false
	case '"':
		return false, false, true, false, false, false, false
	case '(':
		return false, false, false, true, false, false, false
	case ')':
		return false, false, false, false, true, false, false
	case ';':
		return false, false, false, false, false, true, false
	case '\\':
		return false, false, false, false, false, false, true
	default:
		return false, false, false, false, false, false, false
	}
}

// indexChunk runs classifyByte over data[:width] (or less, at window end)
// and appends tape entries, advancing st. This is the scalar core every
// variant below drives with a different width, per spec §4.2's per-chunk
// description.
func indexChunk(data []byte, width int, st *scanState, t *tape, base int) {
	for i := 0; i < width; i++ {
		b := data[i]
		offset := base + i

		if st.escapeDigits > 0 {
			if b >= '0' && b <= '9' {
				st.escapeDigits--
				continue
			}
			// a non-digit ends a short (already out-of-spec) decimal escape;
			// the lexer re-validates digit count and value range when it
			// materializes the token, so the indexer just stops swallowing.
			st.escapeDigits = 0
		}
		if st.escapeSingle {
			st.escapeSingle = false
			continue
		}

		ws, nl, quote, popen, pclose, semi, bslash := classifyByte(b)

		if bslash {
			if !st.inComment {
				if st.atFieldStart && !st.inQuote {
					t.push(offset, tapeFieldStart)
				}
				if isDecimalDigit(peekByte(data, i+1)) {
					st.escapeDigits = 3
				} else {
					st.escapeSingle = true
				}
			}
			st.atFieldStart = false
			continue
		}

		if st.inComment {
			if nl {
				st.inComment = false
				t.push(offset, tapeNewline)
				st.atFieldStart = true
			}
			continue
		}

		if st.inQuote {
			if nl {
				// newlines inside quotes are a syntax error (spec §4.2), but
				// the indexer only locates structure; it still records the
				// newline so line/column bookkeeping stays correct, and
				// leaves the error decision to the lexer, which sees a
				// tapeNewline between a tapeQuoteStart and its tapeQuoteEnd.
				t.push(offset, tapeNewline)
				continue
			}
			if quote {
				st.inQuote = false
				t.push(offset, tapeQuoteEnd)
				st.atFieldStart = false
			}
			continue
		}

		switch {
		case quote:
			st.inQuote = true
			t.push(offset, tapeQuoteStart)
			st.atFieldStart = false
		case semi:
			st.inComment = true
			t.push(offset, tapeCommentStart)
			st.atFieldStart = false
		case popen:
			t.push(offset, tapeParenOpen)
			st.atFieldStart = false
		case pclose:
			t.push(offset, tapeParenClose)
			st.atFieldStart = false
		case nl:
			t.push(offset, tapeNewline)
			st.atFieldStart = true
		case ws:
			st.atFieldStart = true
		default:
			if st.atFieldStart {
				t.push(offset, tapeFieldStart)
			}
			st.atFieldStart = false
		}
	}
}

func peekByte(data []byte, i int) byte {
	if i < 0 || i >= len(data) {
		return 0
	}
	return data[i]
}

func isDecimalDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
