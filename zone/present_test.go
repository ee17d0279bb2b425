package zone

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPresentRoundTrip covers spec §8's "Round-trip law": serializing an
// accepted RR with Present and re-parsing the result must reproduce the
// same wire tuple (owner, type, class, TTL, rdata), across the scenarios
// record_test.go's TestParseScenarioN* functions exercise, plus SOA and NS.
func TestPresentRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		origin string
		text   string
	}{
		{"A", "example.com.", "example.com. 3600 IN A 192.0.2.1\n"},
		{"AAAA", "example.com.", "@ 3600 IN AAAA ::1\n"},
		{"TXT", "example.com.", `example.com. 3600 IN TXT "hello world"` + "\n"},
		{"MX", "example.com.", "$ORIGIN example.com.\nmail 3600 IN MX 10 smtp.example.com.\n"},
		{"generic", "example.com.", "example.com. 3600 IN TYPE999 \\# 4 DEADBEEF\n"},
		{"SOA", "example.com.", "example.com. 3600 IN SOA ns1.example.com. hostmaster.example.com. 2024010100 3600 900 604800 86400\n"},
		{"NS", "example.com.", "example.com. 3600 IN NS ns1.example.com.\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rrs, err := parseZone(t, tc.origin, tc.text, nil)
			require.NoError(t, err)
			require.Len(t, rrs, 1)
			rr := rrs[0]

			presented, err := Present(rr.owner, rr.typ, rr.class, rr.ttl, rr.rdata)
			require.NoError(t, err)

			replayed, err := parseZone(t, tc.origin, presented, nil)
			require.NoError(t, err)
			require.Len(t, replayed, 1)
			got := replayed[0]

			assert.Equal(t, rr.owner, got.owner, "owner survives round trip")
			assert.Equal(t, rr.typ, got.typ, "type survives round trip")
			assert.Equal(t, rr.class, got.class, "class survives round trip")
			assert.Equal(t, rr.ttl, got.ttl, "ttl survives round trip")
			assert.Equal(t, rr.rdata, got.rdata, "rdata survives round trip")
		})
	}
}

// TestPresentIdempotent covers spec §8's "Idempotence": re-parsing a zone
// made entirely of Present's own canonical output is a fixed point — a
// second pass through Present/parse produces byte-identical text.
func TestPresentIdempotent(t *testing.T) {
	rrs, err := parseZone(t, "example.com.", "example.com. 3600 IN A 192.0.2.1\nwww 3600 IN CNAME example.com.\n", nil)
	require.NoError(t, err)
	require.Len(t, rrs, 2)

	var zone1 string
	for _, rr := range rrs {
		text, err := Present(rr.owner, rr.typ, rr.class, rr.ttl, rr.rdata)
		require.NoError(t, err)
		zone1 += text
	}

	replayed, err := parseZone(t, "example.com.", zone1, nil)
	require.NoError(t, err)
	require.Len(t, replayed, 2)

	var zone2 string
	for _, rr := range replayed {
		text, err := Present(rr.owner, rr.typ, rr.class, rr.ttl, rr.rdata)
		require.NoError(t, err)
		zone2 += text
	}

	assert.Equal(t, zone1, zone2, fmt.Sprintf("Present output must be a fixed point, got:\n%s\nthen:\n%s", zone1, zone2))
}
