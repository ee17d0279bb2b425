package zonetest

import (
	"testing"

	"github.com/dnszone/zonecode/zone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureParseString(t *testing.T) {
	f := NewFixture("example.com.")
	err := f.ParseString("www 3600 IN A 192.0.2.1\n")
	require.NoError(t, err)
	require.Len(t, f.Records, 1)
	assert.Equal(t, zone.TypeA, f.Records[0].Type)
	assert.Equal(t, "www.example.com.", f.Records[0].Owner.String())
}

func TestFixtureResetsBetweenParses(t *testing.T) {
	f := NewFixture("example.com.")
	require.NoError(t, f.ParseString("a 10 IN A 192.0.2.1\n"))
	require.Len(t, f.Records, 1)

	require.NoError(t, f.ParseString("b 10 IN A 192.0.2.2\nc 10 IN A 192.0.2.3\n"))
	require.Len(t, f.Records, 2)
}

func TestFixtureSurfacesParseErrors(t *testing.T) {
	f := NewFixture("example.com.")
	err := f.ParseString("a IN A not-an-address\n")
	require.Error(t, err)
	var zerr zone.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zone.ErrSemantic, zerr.Code)
}
