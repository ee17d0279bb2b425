package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileNameAbsolute(t *testing.T) {
	n, err := compileName("example.com.", nil, Pos{})
	require.NoError(t, err)
	assert.Equal(t, Name("\x07example\x03com\x00"), n)
}

func TestCompileNameRelativeToOrigin(t *testing.T) {
	origin, err := compileName("example.com.", nil, Pos{})
	require.NoError(t, err)

	n, err := compileName("www", origin, Pos{})
	require.NoError(t, err)
	assert.Equal(t, Name("\x03www\x07example\x03com\x00"), n)
}

func TestCompileNameAtLiteral(t *testing.T) {
	origin, err := compileName("example.com.", nil, Pos{})
	require.NoError(t, err)

	n, err := compileName("@", origin, Pos{})
	require.NoError(t, err)
	assert.Equal(t, origin, n)

	_, err = compileName("@", nil, Pos{})
	require.Error(t, err)
}

func TestCompileNameRoot(t *testing.T) {
	n, err := compileName(".", nil, Pos{})
	require.NoError(t, err)
	assert.Equal(t, Name("\x00"), n)
}

func TestCompileNameRejectsUnqualifiedWithoutOrigin(t *testing.T) {
	_, err := compileName("www", nil, Pos{})
	require.Error(t, err)
	var zerr Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, ErrSemantic, zerr.Code)
}

func TestCompileNameRejectsEmptyLabel(t *testing.T) {
	_, err := compileName("a..b.", nil, Pos{})
	require.Error(t, err)
}

func TestCompileNameRejectsOversizedLabel(t *testing.T) {
	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}
	_, err := compileName(string(long)+".", nil, Pos{})
	require.Error(t, err)
	var zerr Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, ErrSemantic, zerr.Code)
}

func TestCompileNameRejectsOversizedName(t *testing.T) {
	label := make([]byte, 63)
	for i := range label {
		label[i] = 'a'
	}
	var text string
	for i := 0; i < 5; i++ {
		text += string(label) + "."
	}
	_, err := compileName(text, nil, Pos{})
	require.Error(t, err)
}

func TestDecompileNameRoundTrip(t *testing.T) {
	n, err := compileName("example.com.", nil, Pos{})
	require.NoError(t, err)
	assert.Equal(t, "example.com.", decompileName(n))
}

func TestLooksLikeHostname(t *testing.T) {
	n, err := compileName("www-1.example.com.", nil, Pos{})
	require.NoError(t, err)
	assert.True(t, n.LooksLikeHostname())

	n, err = compileName("a!b.example.com.", nil, Pos{})
	require.NoError(t, err)
	assert.False(t, n.LooksLikeHostname())
}
