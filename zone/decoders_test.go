package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIPv4(t *testing.T) {
	cases := []struct {
		in   string
		want [4]byte
		ok   bool
	}{
		{"192.0.2.1", [4]byte{192, 0, 2, 1}, true},
		{"0.0.0.0", [4]byte{0, 0, 0, 0}, true},
		{"255.255.255.255", [4]byte{255, 255, 255, 255}, true},
		{"256.0.0.1", [4]byte{}, false},
		{"1.2.3", [4]byte{}, false},
		{"1.2.3.4.5", [4]byte{}, false},
		{"a.b.c.d", [4]byte{}, false},
	}
	for _, c := range cases {
		got, ok := parseIPv4(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		if c.ok {
			assert.Equal(t, c.want, got, c.in)
		}
	}
}

func TestParseIPv6(t *testing.T) {
	cases := []struct {
		in   string
		want string // hex-joined words for readable assertion failures
	}{
		{"::1", "0:0:0:0:0:0:0:1"},
		{"::", "0:0:0:0:0:0:0:0"},
		{"2001:db8::1", "2001:db8:0:0:0:0:0:1"},
		{"::ffff:192.0.2.1", "0:0:0:0:0:ffff:c000:201"},
		{"1:2:3:4:5:6:7:8", "1:2:3:4:5:6:7:8"},
	}
	for _, c := range cases {
		got, ok := parseIPv6(c.in)
		require.True(t, ok, c.in)
		assert.Equal(t, c.want, wordsOf(got), c.in)
	}

	_, ok := parseIPv6("not-an-address")
	assert.False(t, ok)
	_, ok = parseIPv6("1:2:3:4:5:6:7:8:9")
	assert.False(t, ok)
}

func wordsOf(b [16]byte) string {
	out := ""
	for i := 0; i < 16; i += 2 {
		if i > 0 {
			out += ":"
		}
		w := uint16(b[i])<<8 | uint16(b[i+1])
		out += uintToHex(w)
	}
	return out
}

func uintToHex(w uint16) string {
	const hexDigits = "0123456789abcdef"
	if w == 0 {
		return "0"
	}
	var buf [4]byte
	n := 0
	for w > 0 {
		buf[n] = hexDigits[w&0xF]
		w >>= 4
		n++
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = buf[n-1-i]
	}
	return string(out)
}

func TestLookupClassAndType(t *testing.T) {
	c, ok := lookupClass("in")
	assert.True(t, ok)
	assert.Equal(t, ClassIN, c)

	_, ok = lookupClass("3600")
	assert.False(t, ok)

	ty, ok := lookupType("aaaa")
	assert.True(t, ok)
	assert.Equal(t, TypeAAAA, ty)

	ty, ok = lookupType("TYPE999")
	assert.True(t, ok)
	assert.Equal(t, Type(999), ty)

	_, ok = lookupType("TYPEbad")
	assert.False(t, ok)

	_, ok = lookupType("BOGUS")
	assert.False(t, ok)
}

func TestTypeNeedsGenericEncoding(t *testing.T) {
	assert.False(t, typeNeedsGenericEncoding(TypeA))
	assert.False(t, typeNeedsGenericEncoding(TypeMX))
	assert.True(t, typeNeedsGenericEncoding(TypeSRV))
	assert.True(t, typeNeedsGenericEncoding(Type(999)))
}

func TestParseTTL(t *testing.T) {
	v, err := parseTTL("3600", Pos{})
	require.NoError(t, err)
	assert.Equal(t, uint32(3600), v)

	v, err = parseTTL("1h30m", Pos{})
	require.NoError(t, err)
	assert.Equal(t, uint32(5400), v)

	v, err = parseTTL("1w", Pos{})
	require.NoError(t, err)
	assert.Equal(t, uint32(604800), v)

	_, err = parseTTL("bogus", Pos{})
	require.Error(t, err)

	_, err = parseTTL("1x", Pos{})
	require.Error(t, err)

	_, err = parseTTL("", Pos{})
	require.Error(t, err)
}
