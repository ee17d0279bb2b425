// Package zonetest provides in-memory fixtures for exercising the zone
// engine without a database or real files, the way sqltest/fixture.go
// wires up a disposable database per test — here the disposable resource is
// just a Cache and an Accept callback.
package zonetest

import (
	"fmt"

	"github.com/dnszone/zonecode/zone"
)

// Record is a copy of one accepted resource record, safe to keep around
// after the parse returns (the cache slot backing the original owner/rdata
// slices is recycled the moment Accept returns).
type Record struct {
	Owner zone.Name
	Type  zone.Type
	Class zone.Class
	TTL   uint32
	RData []byte
}

// Fixture accumulates every RR a parse accepts, the in-memory analogue of
// sqltest.Fixture's disposable per-test database: NewFixture panics on setup
// failure (it is a test-harness concern, not something under test), exactly
// like NewFixture's env-var checks in the teacher.
type Fixture struct {
	Origin       string
	DefaultTTL   uint32
	DefaultClass zone.Class
	Slots        int

	Records []Record
}

// NewFixture builds a Fixture with sensible defaults (3600s default TTL, IN
// default class, 64 cache slots), ready to Parse immediately.
func NewFixture(origin string) *Fixture {
	if origin == "" {
		panic("zonetest.NewFixture: origin is required")
	}
	return &Fixture{
		Origin:       origin,
		DefaultTTL:   3600,
		DefaultClass: zone.ClassIN,
		Slots:        64,
	}
}

// Options builds a fresh zone.Options wired to record every accepted RR into
// f.Records. Call it once per Parse/ParseString call (a Parser consumes its
// Cache destructively as it cycles slots).
func (f *Fixture) Options() zone.Options {
	if f.Slots <= 0 {
		panic("zonetest.Fixture: Slots must be positive")
	}
	cache := &zone.Cache{
		Owners: make([][]byte, f.Slots),
		RDATAs: make([][]byte, f.Slots),
	}
	for i := range cache.Owners {
		cache.Owners[i] = make([]byte, 255)
		cache.RDATAs[i] = make([]byte, 65535)
	}

	return zone.Options{
		Origin:       f.Origin,
		DefaultTTL:   f.DefaultTTL,
		DefaultClass: f.DefaultClass,
		Cache:        cache,
		Accept: func(owner zone.Name, typ zone.Type, class zone.Class, ttl uint32, rdata []byte, user any) (int, error) {
			ownerCopy := make(zone.Name, len(owner))
			copy(ownerCopy, owner)
			rdataCopy := make([]byte, len(rdata))
			copy(rdataCopy, rdata)
			f.Records = append(f.Records, Record{Owner: ownerCopy, Type: typ, Class: class, TTL: ttl, RData: rdataCopy})
			return (len(f.Records) - 1 + 1) % f.Slots, nil
		},
	}
}

// ParseString parses s into f.Records, resetting any records from a
// previous call on this Fixture.
func (f *Fixture) ParseString(s string) error {
	f.Records = nil
	return zone.ParseString(s, f.Options())
}

// Parse parses the file at path into f.Records.
func (f *Fixture) Parse(path string) error {
	f.Records = nil
	return zone.Parse(path, f.Options())
}

func (r Record) String() string {
	return fmt.Sprintf("%s %d %s TYPE%d %x", r.Owner, r.TTL, classString(r.Class), r.Type, r.RData)
}

func classString(c zone.Class) string {
	switch c {
	case zone.ClassIN:
		return "IN"
	case zone.ClassCS:
		return "CS"
	case zone.ClassCH:
		return "CH"
	case zone.ClassHS:
		return "HS"
	default:
		return fmt.Sprintf("CLASS%d", c)
	}
}
