package zone

// Lexer is the Token Materializer (spec §4.3): it walks the tape the
// selected indexKernel produces, grouping tape entries into Tokens and
// resolving escapes, the way sqlparser.Scanner walks runes of SQL text
// producing sqlparser.Token values (_examples/vippsas-sqlcode/sqlparser/
// scanner.go). Unlike the scanner it's modeled on, a Lexer's input is not
// held entirely in memory: window refills and tape rebuilds are threaded
// through every method below.
type Lexer struct {
	file FileRef
	win  *window
	tp   tape
	st   scanState

	kernel indexKernel

	parenDepth int // spec §4.3 "a run of physical lines joined by ( ... )"

	line      int // current 1-based line number
	lineStart int // offset (window-local) of the first byte of the current line
}

func newLexer(file FileRef, win *window, kernel indexKernel) (*Lexer, error) {
	lx := &Lexer{
		file:   file,
		win:    win,
		kernel: kernel,
		line:   1,
		st:     scanState{atFieldStart: true},
	}
	lx.kernel(lx.win.data, 0, lx.win.length, &lx.st, &lx.tp)
	return lx, nil
}

func (lx *Lexer) posAt(offset int) Pos {
	return Pos{File: lx.file, Line: lx.line, Col: offset - lx.lineStart + 1}
}

// more grows the available tape, either by compacting the window (when the
// lexer is idle between tokens) or by extending it in place (when it is
// mid-quote, mid-comment, or mid-escape and cannot afford to lose bytes
// already scanned). It is called whenever a caller peeks a tapeWindowEnd
// entry and the window is not yet at EOF.
func (lx *Lexer) more() error {
	// drop the stale window-end marker; a fresh one is appended below.
	if n := len(lx.tp.entries); n > 0 && lx.tp.entries[n-1].code == tapeWindowEnd {
		lx.tp.entries = lx.tp.entries[:n-1]
	}

	midConstruct := lx.st.inQuote || lx.st.inComment || lx.st.escapeSingle || lx.st.escapeDigits > 0
	if midConstruct {
		oldLen := lx.win.length
		if _, err := lx.win.extendInPlace(); err != nil {
			return err
		}
		lx.kernel(lx.win.data, oldLen, lx.win.length, &lx.st, &lx.tp)
		return nil
	}

	lx.win.index = lx.win.length
	shifted, err := lx.win.refill()
	if err != nil {
		return err
	}
	lx.lineStart -= shifted
	if lx.lineStart < 0 {
		lx.lineStart = 0
	}
	lx.tp.reset()
	lx.kernel(lx.win.data, 0, lx.win.length, &lx.st, &lx.tp)
	return nil
}

// NextToken returns the next Token, consuming as much of the tape as
// needed. It never returns (Token{}, nil); on failure it returns a non-nil
// error (a zone.Error) and the caller must stop.
func (lx *Lexer) NextToken() (Token, error) {
	for {
		e, ok := lx.tp.peek()
		if !ok {
			if lx.win.atEOF {
				// the final window-end entry was already consumed.
				pos := lx.posAt(lx.win.length)
				return Token{Type: EndOfFileToken, Start: pos, Stop: pos}, nil
			}
			if err := lx.more(); err != nil {
				return Token{}, err
			}
			continue
		}

		switch e.code {
		case tapeWindowEnd:
			if lx.win.atEOF {
				lx.tp.next()
				if lx.parenDepth > 0 {
					return Token{}, syntaxErrorf(lx.posAt(e.offset), "unbalanced parentheses at end of file")
				}
				pos := lx.posAt(e.offset)
				return Token{Type: EndOfFileToken, Start: pos, Stop: pos}, nil
			}
			if err := lx.more(); err != nil {
				return Token{}, err
			}

		case tapeNewline:
			lx.tp.next()
			pos := lx.posAt(e.offset)
			lx.line++
			lx.lineStart = e.offset + 1
			if lx.parenDepth > 0 {
				continue // spec §4.3: newlines are swallowed inside ( ... )
			}
			return Token{Type: EndOfLineToken, Start: pos, Stop: pos}, nil

		case tapeParenOpen:
			lx.tp.next()
			lx.parenDepth++

		case tapeParenClose:
			lx.tp.next()
			if lx.parenDepth == 0 {
				return Token{}, syntaxErrorf(lx.posAt(e.offset), "stray ')'")
			}
			lx.parenDepth--

		case tapeCommentStart:
			lx.tp.next() // comment body is transparent; the matching
			// tapeNewline (or EOF) that ends it is handled by the cases above.

		case tapeQuoteStart:
			lx.tp.next()
			return lx.scanQuoted(e.offset)

		case tapeFieldStart:
			lx.tp.next()
			return lx.scanField(e.offset)

		default:
			lx.tp.next()
		}
	}
}

// scanQuoted materializes a quoted field (spec §4.3 "a quoted field ...
// spans an arbitrary number of tape entries if it is long or contains
// escapes"), consuming tape entries up to and including the matching
// tapeQuoteEnd.
func (lx *Lexer) scanQuoted(startOffset int) (Token, error) {
	pos := lx.posAt(startOffset)
	newlineAt := -1

	for {
		e, ok := lx.tp.peek()
		if !ok {
			if err := lx.more(); err != nil {
				return Token{}, err
			}
			continue
		}

		switch e.code {
		case tapeNewline:
			lx.tp.next()
			if newlineAt < 0 {
				newlineAt = e.offset
			}
			lx.line++
			lx.lineStart = e.offset + 1

		case tapeQuoteEnd:
			lx.tp.next()
			if newlineAt >= 0 {
				return Token{}, syntaxErrorf(lx.posAt(newlineAt), "newline inside quoted string")
			}
			raw := lx.win.data[startOffset+1 : e.offset]
			val, err := resolveEscapes(raw, pos)
			if err != nil {
				return Token{}, err
			}
			return Token{Type: QuotedFieldToken, Value: val, Start: pos, Stop: lx.posAt(e.offset + 1)}, nil

		case tapeWindowEnd:
			if lx.win.atEOF {
				return Token{}, syntaxErrorf(pos, "unterminated quoted string")
			}
			if err := lx.more(); err != nil {
				return Token{}, err
			}

		default:
			// classifyByte never emits anything else while inQuote.
			lx.tp.next()
		}
	}
}

// scanField materializes an unquoted field: it re-walks the raw bytes from
// startOffset, honoring escapes itself (the indexer only marked where the
// field begins), stopping at the first unescaped delimiter. This mirrors
// the split of labor spec §4.2/§4.3 draws between "find structure fast"
// and "resolve content precisely".
func (lx *Lexer) scanField(startOffset int) (Token, error) {
	pos := lx.posAt(startOffset)
	cur := startOffset

	for {
		for cur < lx.win.length {
			b := lx.win.data[cur]
			if b == '\\' {
				if cur+1 >= lx.win.length {
					// escape unit spans the buffer edge; let the outer loop
					// pull more data before deciding its width.
					break
				}
				if isDecimalDigit(lx.win.data[cur+1]) {
					cur += 2
					// swallow up to two more digits if present; a short
					// decimal escape is a content-level error, raised when
					// resolveEscapes decodes it, not here.
					for n := 0; n < 2 && cur < lx.win.length && isDecimalDigit(lx.win.data[cur]); n++ {
						cur++
					}
				} else {
					cur += 2
				}
				continue
			}
			if isFieldDelimiter(b) {
				goto done
			}
			cur++
		}
		if lx.win.atEOF {
			break
		}
		// mid-field: extend in place so startOffset stays valid, rather
		// than letting more() compact the bytes already scanned away.
		if n := len(lx.tp.entries); n > 0 && lx.tp.entries[n-1].code == tapeWindowEnd {
			lx.tp.entries = lx.tp.entries[:n-1]
		}
		oldLen := lx.win.length
		if _, err := lx.win.extendInPlace(); err != nil {
			return Token{}, err
		}
		lx.kernel(lx.win.data, oldLen, lx.win.length, &lx.st, &lx.tp)
	}

done:
	raw := lx.win.data[startOffset:cur]
	val, err := resolveEscapes(raw, pos)
	if err != nil {
		return Token{}, err
	}
	return Token{Type: FieldToken, Value: val, Start: pos, Stop: lx.posAt(cur)}, nil
}

func isFieldDelimiter(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '"', '(', ')', ';':
		return true
	default:
		return false
	}
}
