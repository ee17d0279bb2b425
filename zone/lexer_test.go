package zone

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, input string) []Token {
	t.Helper()
	lx, err := newLexer(stringSourceName, newStringWindow(input), indexFallback)
	require.NoError(t, err)

	var toks []Token
	for {
		tok, err := lx.NextToken()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Type == EndOfFileToken {
			return toks
		}
	}
}

func TestLexerFields(t *testing.T) {
	toks := lexAll(t, "a bb ccc\n")
	require.Len(t, toks, 5)
	assert.Equal(t, FieldToken, toks[0].Type)
	assert.Equal(t, "a", toks[0].Value)
	assert.Equal(t, FieldToken, toks[1].Type)
	assert.Equal(t, "bb", toks[1].Value)
	assert.Equal(t, FieldToken, toks[2].Type)
	assert.Equal(t, "ccc", toks[2].Value)
	assert.Equal(t, EndOfLineToken, toks[3].Type)
	assert.Equal(t, EndOfFileToken, toks[4].Type)
}

func TestLexerQuotedField(t *testing.T) {
	toks := lexAll(t, `"hello world"` + "\n")
	require.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, QuotedFieldToken, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Value)
}

func TestLexerEscapes(t *testing.T) {
	toks := lexAll(t, `a\.b \065\066\067` + "\n")
	require.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, "a.b", toks[0].Value)
	assert.Equal(t, "ABC", toks[1].Value)
}

func TestLexerParenContinuation(t *testing.T) {
	toks := lexAll(t, "a (\nb\nc )\n")
	var types []TokenType
	var values []string
	for _, tok := range toks {
		types = append(types, tok.Type)
		if tok.Type == FieldToken {
			values = append(values, tok.Value)
		}
	}
	assert.Equal(t, []string{"a", "b", "c"}, values)
	assert.Equal(t, EndOfLineToken, types[len(types)-2])
	assert.Equal(t, EndOfFileToken, types[len(types)-1])
}

func TestLexerStrayParen(t *testing.T) {
	lx, err := newLexer(stringSourceName, newStringWindow(")\n"), indexFallback)
	require.NoError(t, err)
	_, err = lx.NextToken()
	require.Error(t, err)
	var zerr Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, ErrSyntax, zerr.Code)
}

func TestLexerUnterminatedQuote(t *testing.T) {
	lx, err := newLexer(stringSourceName, newStringWindow(`"hello`), indexFallback)
	require.NoError(t, err)
	_, err = lx.NextToken()
	require.Error(t, err)
}

func TestLexerCommentTransparent(t *testing.T) {
	toks := lexAll(t, "a ; a comment\nb\n")
	var values []string
	for _, tok := range toks {
		if tok.Type == FieldToken {
			values = append(values, tok.Value)
		}
	}
	assert.Equal(t, []string{"a", "b"}, values)
}

func TestLexerComment(t *testing.T) {
	// a comment with no terminating newline simply runs to EOF.
	toks := lexAll(t, "a ; trailing")
	assert.Equal(t, FieldToken, toks[0].Type)
	assert.Equal(t, EndOfFileToken, toks[len(toks)-1].Type)
}

// TestLexerLongField checks a field much longer than windowSize still
// materializes intact even though scanField's extend path is only
// exercised by file-backed windows (see indexer_test.go for that case).
func TestLexerLongField(t *testing.T) {
	long := strings.Repeat("x", windowSize*3)
	lx, err := newLexer(stringSourceName, newStringWindow(long+"\n"), indexFallback)
	require.NoError(t, err)
	tok, err := lx.NextToken()
	require.NoError(t, err)
	assert.Equal(t, long, tok.Value)
}
