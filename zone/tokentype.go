package zone

// TokenType is the code carried by every Token (spec §3 "Token"): it
// distinguishes field shapes the way the teacher's sqlparser.TokenType
// distinguishes SQL lexemes.
type TokenType int

// Unlike the teacher's sqlparser, which has error TokenTypes the scanner
// returns inline, this engine reports failures as a real `error` (spec §7
// "report once, do not recover"): a malformed quote or a stray paren comes
// back from NextToken as a non-nil zone.Error, never as a Token of some
// error kind. So there are only four TokenType values.
const (
	FieldToken TokenType = iota + 1 // contiguous, unquoted field
	QuotedFieldToken
	EndOfLineToken
	EndOfFileToken
)

func (tt TokenType) String() string {
	return tokenToDescription[tt]
}

func init() {
	for tt := FieldToken; tt <= EndOfFileToken; tt++ {
		if tokenToDescription[tt] == "" {
			panic("zone: tokenToDescription missing an entry")
		}
	}
}

var tokenToDescription = map[TokenType]string{
	FieldToken:       "FieldToken",
	QuotedFieldToken: "QuotedFieldToken",
	EndOfLineToken:   "EndOfLineToken",
	EndOfFileToken:   "EndOfFileToken",
}
