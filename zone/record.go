package zone

import "strings"

// decoderFunc is the tokens-to-wire contract spec §4.5 describes: consume
// the remaining tokens on the record (via fr) and append octets to rd.
type decoderFunc func(fr *fieldReader, rd *rdataBuilder, origin Name) error

var decoders = map[Type]decoderFunc{
	TypeA:     decodeA,
	TypeAAAA:  decodeAAAA,
	TypeNS:    decodeNameValued,
	TypeCNAME: decodeNameValued,
	TypePTR:   decodeNameValued,
	TypeSOA:   decodeSOA,
	TypeMX:    decodeMX,
	TypeTXT:   decodeTXT,
}

// fieldReader hands a decoder one token at a time from the file's Lexer,
// stopping at end-of-line. It is the thin adapter spec §4.5's "consume a
// known number of tokens" language implies every decoder needs; record.go
// owns the single instance per record.
type fieldReader struct {
	lx   *Lexer
	done bool // saw EndOfLineToken or EndOfFileToken
	last Token
}

// next returns the next field token, or ok=false at end-of-line/EOF.
func (fr *fieldReader) next() (Token, bool, error) {
	if fr.done {
		return Token{}, false, nil
	}
	tok, err := fr.lx.NextToken()
	if err != nil {
		return Token{}, false, err
	}
	if tok.Type == EndOfLineToken || tok.Type == EndOfFileToken {
		fr.done = true
		fr.last = tok
		return Token{}, false, nil
	}
	return tok, true, nil
}

// requireField is next() with the "ran out of tokens" case turned into a
// syntax error, for decoders with a fixed token count (spec §4.5 SOA/MX/A).
func (fr *fieldReader) requireField(what string) (Token, error) {
	tok, ok, err := fr.next()
	if err != nil {
		return Token{}, err
	}
	if !ok {
		return Token{}, syntaxErrorf(fr.endPos(), "missing %s", what)
	}
	return tok, nil
}

func (fr *fieldReader) endPos() Pos {
	return fr.last.Start
}

// drainEndOfLine consumes and discards tokens until end-of-line (or end of
// file). It runs after a dedicated RDATA decoder and after a directive's
// arguments, so extra tokens left on the line are dropped, not reported.
// Decoders that read "until end-of-line" (TXT, generic) call next()
// themselves until ok is false.
func (fr *fieldReader) drainEndOfLine() error {
	for {
		_, ok, err := fr.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// looksLikeTTL applies spec §4.4's disambiguation shape test: either all
// decimal digits, or a sequence of digit-groups each followed by a
// BIND-style unit letter.
func looksLikeTTL(text string) bool {
	if text == "" {
		return false
	}
	if isAllDigits(text) {
		return true
	}
	i := 0
	sawUnit := false
	for i < len(text) {
		start := i
		for i < len(text) && isDecimalDigit(text[i]) {
			i++
		}
		if i == start {
			return false
		}
		if i >= len(text) {
			return false
		}
		switch text[i] {
		case 's', 'S', 'm', 'M', 'h', 'H', 'd', 'D', 'w', 'W':
			sawUnit = true
			i++
		default:
			return false
		}
	}
	return sawUnit
}

// parseRecord reads and assembles one logical record from f, per spec
// §4.4/§4.10's grammar and state machine. It returns (nil-RR, nil-err) for
// a blank line, io.EOF-equivalent sentinel errEndOfFile at end of file, or
// a populated rr ready for the sink.
type assembledRR struct {
	owner Name
	typ   Type
	class Class
	ttl   uint32
	rdata []byte
}

var errEndOfFile = &Error{Code: Success, Message: "end of file"}

func (p *Parser) parseRecord(f *File, rdataBuf []byte) (*assembledRR, error) {
	tok, err := f.lexer.NextToken()
	if err != nil {
		return nil, err
	}

	if tok.Type == EndOfFileToken {
		return nil, errEndOfFile
	}
	if tok.Type == EndOfLineToken {
		return nil, nil // blank record, spec §8 scenario 6
	}

	if directiveName, ok := matchDirective(tok.Value); ok {
		if err := p.handleDirective(f, directiveName, tok.Start); err != nil {
			return nil, err
		}
		return nil, nil
	}

	fr := &fieldReader{lx: f.lexer, last: tok}

	var owner Name
	atLineStart := tok.Start.Col == 1
	if atLineStart {
		owner, err = compileName(tok.Value, f.origin, tok.Start)
		if err != nil {
			return nil, err
		}
		f.lastOwner = owner
		f.haveOwner = true
		var ok bool
		tok, ok, err = fr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, semanticErrorf(fr.endPos(), "record has an owner but no type")
		}
	} else {
		if !f.haveOwner {
			return nil, semanticErrorf(tok.Start, "no owner established for this record")
		}
		owner = f.lastOwner
	}

	ttl := f.lastTTL
	class := f.lastClass
	haveTTL := false
	haveClass := false
	var typ Type
	haveType := false

	for !haveType {
		if tok.Type != FieldToken && tok.Type != QuotedFieldToken {
			return nil, syntaxErrorf(tok.Start, "expected class, TTL, or type")
		}
		text := tok.Value

		if !haveClass {
			if c, ok := lookupClass(text); ok {
				class = c
				haveClass = true
				if tok, ok, err = fr.next(); err != nil {
					return nil, err
				} else if !ok {
					return nil, semanticErrorf(fr.endPos(), "record missing a type")
				}
				continue
			}
		}
		if !haveTTL && looksLikeTTL(text) {
			t, terr := parseTTL(text, tok.Start)
			if terr != nil {
				return nil, terr
			}
			ttl = t
			haveTTL = true
			var ok bool
			if tok, ok, err = fr.next(); err != nil {
				return nil, err
			} else if !ok {
				return nil, semanticErrorf(fr.endPos(), "record missing a type")
			}
			continue
		}

		t, ok := lookupType(text)
		if !ok {
			return nil, semanticErrorf(tok.Start, "unrecognized type %q", text)
		}
		typ = t
		haveType = true
	}

	f.lastTTL = ttl
	f.lastClass = class
	f.lastType = typ
	f.haveType = true

	rd := &rdataBuilder{buf: rdataBuf[:0], pos: tok.Start}

	if typeNeedsGenericEncoding(typ) {
		if err := decodeGeneric(fr, rd); err != nil {
			return nil, err
		}
	} else {
		decode := decoders[typ]
		if err := decode(fr, rd, f.origin); err != nil {
			return nil, err
		}
		if err := fr.drainEndOfLine(); err != nil {
			return nil, err
		}
	}

	return &assembledRR{owner: owner, typ: typ, class: class, ttl: ttl, rdata: rd.buf}, nil
}

// matchDirective reports whether text names one of the three master-file
// control directives (spec §4.7), case-insensitively per BIND convention
// (directives are conventionally written upper-case, but BIND itself
// accepts any casing, so this engine upper-cases before comparing rather
// than requiring the canonical spelling).
func matchDirective(text string) (string, bool) {
	if !strings.HasPrefix(text, "$") {
		return "", false
	}
	switch strings.ToUpper(text) {
	case "$ORIGIN", "$TTL", "$INCLUDE":
		return strings.ToUpper(text), true
	default:
		return "", false
	}
}
