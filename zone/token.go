package zone

// Token is one lexical unit handed from the Token Materializer to the
// Record Assembler (spec §2.3, §4.3): a field, a quoted field, an
// end-of-line marker, or end-of-file. Value is always an owned copy —
// Go's string(...) conversion from a byte slice copies, so there is no
// lifetime hazard from the window buffer being compacted or grown after
// the token is returned (see DESIGN.md on the zero-copy token tradeoff).
type Token struct {
	Type  TokenType
	Value string
	Start Pos
	Stop  Pos
}

func (t Token) String() string {
	if t.Type == FieldToken || t.Type == QuotedFieldToken {
		return t.Type.String() + "(" + t.Value + ")"
	}
	return t.Type.String()
}
