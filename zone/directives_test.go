package zone

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseFile is parseZone's file-backed counterpart, needed for $INCLUDE
// coverage since ParseString has no notion of "current file's directory".
func parseFile(t *testing.T, origin, path string, opt func(*Options)) ([]acceptedRR, error) {
	t.Helper()

	const slots = 16
	cache := &Cache{Owners: make([][]byte, slots), RDATAs: make([][]byte, slots)}
	for i := range cache.Owners {
		cache.Owners[i] = make([]byte, maxNameLength)
		cache.RDATAs[i] = make([]byte, maxRDATALength)
	}

	var got []acceptedRR
	o := Options{
		Origin:       origin,
		DefaultTTL:   3600,
		DefaultClass: ClassIN,
		Cache:        cache,
		Accept: func(owner Name, typ Type, class Class, ttl uint32, rdata []byte, user any) (int, error) {
			ownerCopy := make(Name, len(owner))
			copy(ownerCopy, owner)
			rdataCopy := make([]byte, len(rdata))
			copy(rdataCopy, rdata)
			got = append(got, acceptedRR{owner: ownerCopy, typ: typ, class: class, ttl: ttl, rdata: rdataCopy})
			return (len(got) - 1 + 1) % slots, nil
		},
	}
	if opt != nil {
		opt(&o)
	}

	err := Parse(path, o)
	return got, err
}

// TestDirectiveTTL covers spec §4.7: $TTL sets the file's inherited TTL for
// every subsequent record that doesn't give its own.
func TestDirectiveTTL(t *testing.T) {
	rrs, err := parseZone(t, "example.com.", "$TTL 600\nexample.com. IN A 192.0.2.1\n", nil)
	require.NoError(t, err)
	require.Len(t, rrs, 1)
	assert.Equal(t, uint32(600), rrs[0].ttl)
}

// TestDirectiveIncludeMergesRecords covers spec §4.7/§9: $INCLUDE opens a
// nested file (relative to the including file's directory) and its records
// are accepted into the same parse.
func TestDirectiveIncludeMergesRecords(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "child.zone"), []byte("www 3600 IN A 192.0.2.2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "parent.zone"), []byte(
		"example.com. 3600 IN A 192.0.2.1\n$INCLUDE child.zone\nmail 3600 IN A 192.0.2.3\n",
	), 0o644))

	rrs, err := parseFile(t, "example.com.", filepath.Join(dir, "parent.zone"), nil)
	require.NoError(t, err)
	require.Len(t, rrs, 3)

	owner1, err := compileName("example.com.", nil, Pos{})
	require.NoError(t, err)
	ownerWWW, err := compileName("www.example.com.", nil, Pos{})
	require.NoError(t, err)
	ownerMail, err := compileName("mail.example.com.", nil, Pos{})
	require.NoError(t, err)

	assert.Equal(t, owner1, rrs[0].owner)
	assert.Equal(t, ownerWWW, rrs[1].owner)
	assert.Equal(t, ownerMail, rrs[2].owner)
}

// TestDirectiveIncludeOriginDoesNotEscape covers the $INCLUDE origin-pop
// semantics DESIGN.md resolves explicitly: a nested file's own $ORIGIN is
// local to that file and does not affect the including file's origin once
// popInclude restores it.
func TestDirectiveIncludeOriginDoesNotEscape(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "child.zone"), []byte(
		"$ORIGIN other.example.\nwww 3600 IN A 192.0.2.2\n",
	), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "parent.zone"), []byte(
		"$INCLUDE child.zone\nmail 3600 IN A 192.0.2.3\n",
	), 0o644))

	rrs, err := parseFile(t, "example.com.", filepath.Join(dir, "parent.zone"), nil)
	require.NoError(t, err)
	require.Len(t, rrs, 2)

	ownerWWW, err := compileName("www.other.example.", nil, Pos{})
	require.NoError(t, err)
	ownerMail, err := compileName("mail.example.com.", nil, Pos{})
	require.NoError(t, err)

	assert.Equal(t, ownerWWW, rrs[0].owner, "child's own $ORIGIN applies inside the child")
	assert.Equal(t, ownerMail, rrs[1].owner, "parent's origin is restored once the $INCLUDE pops")
}

// TestDirectiveIncludeCycleDetected covers spec §4.7/§9's cycle detection:
// a file that (transitively) $INCLUDEs itself is a semantic error, not an
// infinite loop.
func TestDirectiveIncludeCycleDetected(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.zone"), []byte("$INCLUDE b.zone\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.zone"), []byte("$INCLUDE a.zone\n"), 0o644))

	_, err := parseFile(t, "example.com.", filepath.Join(dir, "a.zone"), nil)
	require.Error(t, err)
	var zerr Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, ErrSemantic, zerr.Code)
}

// TestDirectiveIncludeMissingFile covers spec §4.7's $INCLUDE I/O failure
// path: a nonexistent target surfaces as ErrIO, not a silent skip.
func TestDirectiveIncludeMissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "parent.zone"), []byte("$INCLUDE does-not-exist.zone\n"), 0o644))

	_, err := parseFile(t, "example.com.", filepath.Join(dir, "parent.zone"), nil)
	require.Error(t, err)
	var zerr Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, ErrIO, zerr.Code)
}
