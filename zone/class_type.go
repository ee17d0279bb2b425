package zone

import (
	"strconv"
	"strings"
)

// Class is the DNS class field (spec §4.4 "IN, CS, CH, HS").
type Class uint16

const (
	ClassIN Class = 1
	ClassCS Class = 2
	ClassCH Class = 3
	ClassHS Class = 4
)

var textToClass = map[string]Class{
	"IN": ClassIN,
	"CS": ClassCS,
	"CH": ClassCH,
	"HS": ClassHS,
}

// lookupClass reports whether text (case-insensitive) names a recognized
// class. Unknown tokens are not an error here — the assembler tries class,
// then TTL, then type, per spec §4.4's disambiguation order.
func lookupClass(text string) (Class, bool) {
	c, ok := textToClass[strings.ToUpper(text)]
	return c, ok
}

// Type is the DNS RR type field. Named constants cover the representative
// decoders spec §4.5 specifies; any other value is carried as a raw
// TYPEnnn and must use the RFC 3597 generic encoding on input.
type Type uint16

const (
	TypeA     Type = 1
	TypeNS    Type = 2
	TypeCNAME Type = 5
	TypeSOA   Type = 6
	TypePTR   Type = 12
	TypeMX    Type = 15
	TypeTXT   Type = 16
	TypeAAAA  Type = 28
	TypeSRV   Type = 33
)

var textToType = map[string]Type{
	"A":     TypeA,
	"NS":    TypeNS,
	"CNAME": TypeCNAME,
	"SOA":   TypeSOA,
	"PTR":   TypePTR,
	"MX":    TypeMX,
	"TXT":   TypeTXT,
	"AAAA":  TypeAAAA,
	"SRV":   TypeSRV,
}

// lookupType resolves a type token by mnemonic or by the generic TYPEnnn
// form (spec §4.4). ok is false for malformed TYPEnnn syntax and for an
// unrecognized mnemonic that isn't TYPEnnn, since at that point the assembler has already tried class and TTL and
// must treat the token as a hard type-resolution failure.
func lookupType(text string) (Type, bool) {
	if t, found := textToType[strings.ToUpper(text)]; found {
		return t, true
	}
	upper := strings.ToUpper(text)
	if strings.HasPrefix(upper, "TYPE") {
		n, err := strconv.ParseUint(upper[4:], 10, 16)
		if err != nil {
			return 0, false
		}
		return Type(n), true
	}
	return 0, false
}

// typeNeedsGenericEncoding reports whether t is a type this engine
// does not have a dedicated decoder for, meaning the record's RDATA must
// use the RFC 3597 `\# length hex...` form (spec §4.4). SRV is a recognized
// mnemonic (so it resolves to a Type rather than falling through to
// TYPEnnn) but has no dedicated field-shape decoder here, so it takes the
// generic path like any other undecoded type.
func typeNeedsGenericEncoding(t Type) bool {
	switch t {
	case TypeA, TypeNS, TypeCNAME, TypeSOA, TypePTR, TypeMX, TypeTXT, TypeAAAA:
		return false
	default:
		return true
	}
}
