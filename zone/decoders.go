package zone

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// decodeA implements spec §4.5's IPv4 case: one dotted-quad token, four
// big-endian octets.
func decodeA(fr *fieldReader, rd *rdataBuilder, origin Name) error {
	tok, err := fr.requireField("A address")
	if err != nil {
		return err
	}
	octets, ok := parseIPv4(tok.Value)
	if !ok {
		return semanticErrorf(tok.Start, "invalid IPv4 address %q", tok.Value)
	}
	return rd.append(octets[:]...)
}

func parseIPv4(s string) ([4]byte, bool) {
	var out [4]byte
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return out, false
	}
	for i, p := range parts {
		if p == "" || len(p) > 3 {
			return out, false
		}
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil || n > 255 {
			return out, false
		}
		out[i] = byte(n)
	}
	return out, true
}

// decodeAAAA implements spec §4.5's IPv6 case, grounded on
// original_source/src/generic/ip6.h's algorithm: split on "::" at most
// once, parse each side's colon-separated hex groups (16 bits each),
// supporting an embedded trailing IPv4 dotted-quad tail.
func decodeAAAA(fr *fieldReader, rd *rdataBuilder, origin Name) error {
	tok, err := fr.requireField("AAAA address")
	if err != nil {
		return err
	}
	addr, ok := parseIPv6(tok.Value)
	if !ok {
		return semanticErrorf(tok.Start, "invalid IPv6 address %q", tok.Value)
	}
	return rd.append(addr[:]...)
}

func parseIPv6(s string) ([16]byte, bool) {
	var out [16]byte
	if s == "" {
		return out, false
	}

	halves := strings.SplitN(s, "::", 2)
	var headGroups, tailGroups []string
	hasCompression := len(halves) == 2

	if hasCompression {
		if halves[0] != "" {
			headGroups = strings.Split(halves[0], ":")
		}
		if halves[1] != "" {
			tailGroups = strings.Split(halves[1], ":")
		}
	} else {
		headGroups = strings.Split(s, ":")
	}

	// an embedded IPv4 tail replaces the last group with two 16-bit groups.
	expand := func(groups []string) ([]uint16, bool) {
		var words []uint16
		for i, g := range groups {
			if i == len(groups)-1 && strings.Contains(g, ".") {
				v4, ok := parseIPv4(g)
				if !ok {
					return nil, false
				}
				words = append(words, uint16(v4[0])<<8|uint16(v4[1]))
				words = append(words, uint16(v4[2])<<8|uint16(v4[3]))
				continue
			}
			n, err := strconv.ParseUint(g, 16, 32)
			if err != nil || n > 0xFFFF {
				return nil, false
			}
			words = append(words, uint16(n))
		}
		return words, true
	}

	head, ok := expand(headGroups)
	if !ok {
		return out, false
	}
	tail, ok := expand(tailGroups)
	if !ok {
		return out, false
	}

	total := len(head) + len(tail)
	if hasCompression {
		if total > 8 {
			return out, false
		}
	} else if total != 8 {
		return out, false
	}

	words := make([]uint16, 8)
	for i, w := range head {
		words[i] = w
	}
	for i, w := range tail {
		words[8-len(tail)+i] = w
	}
	for i, w := range words {
		out[i*2] = byte(w >> 8)
		out[i*2+1] = byte(w)
	}
	return out, true
}

// decodeNameValued implements spec §4.5's "one domain-name token" family
// (NS, CNAME, PTR).
func decodeNameValued(fr *fieldReader, rd *rdataBuilder, origin Name) error {
	tok, err := fr.requireField("name")
	if err != nil {
		return err
	}
	name, err := compileName(tok.Value, origin, tok.Start)
	if err != nil {
		return err
	}
	return rd.appendName(name)
}

// decodeSOA implements spec §4.5: two names then five 32-bit timer fields,
// each accepting TTL-style duration syntax.
func decodeSOA(fr *fieldReader, rd *rdataBuilder, origin Name) error {
	mnameTok, err := fr.requireField("SOA mname")
	if err != nil {
		return err
	}
	mname, err := compileName(mnameTok.Value, origin, mnameTok.Start)
	if err != nil {
		return err
	}
	if err := rd.appendName(mname); err != nil {
		return err
	}

	rnameTok, err := fr.requireField("SOA rname")
	if err != nil {
		return err
	}
	rname, err := compileName(rnameTok.Value, origin, rnameTok.Start)
	if err != nil {
		return err
	}
	if err := rd.appendName(rname); err != nil {
		return err
	}

	for _, field := range []string{"serial", "refresh", "retry", "expire", "minimum"} {
		tok, err := fr.requireField("SOA " + field)
		if err != nil {
			return err
		}
		v, err := parseTTL(tok.Value, tok.Start)
		if err != nil {
			return err
		}
		if err := rd.appendUint32(v); err != nil {
			return err
		}
	}
	return nil
}

// decodeMX implements spec §4.5: a 16-bit preference then one name.
func decodeMX(fr *fieldReader, rd *rdataBuilder, origin Name) error {
	prefTok, err := fr.requireField("MX preference")
	if err != nil {
		return err
	}
	n, perr := strconv.ParseUint(prefTok.Value, 10, 16)
	if perr != nil {
		return semanticErrorf(prefTok.Start, "invalid MX preference %q", prefTok.Value)
	}
	if err := rd.appendUint16(uint16(n)); err != nil {
		return err
	}

	nameTok, err := fr.requireField("MX exchange")
	if err != nil {
		return err
	}
	name, err := compileName(nameTok.Value, origin, nameTok.Start)
	if err != nil {
		return err
	}
	return rd.appendName(name)
}

// decodeTXT implements spec §4.5: one or more character-strings, each
// length-prefixed, each at most 255 octets.
func decodeTXT(fr *fieldReader, rd *rdataBuilder, origin Name) error {
	wrote := false
	for {
		tok, ok, err := fr.next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if len(tok.Value) > 255 {
			return semanticErrorf(tok.Start, "TXT character-string exceeds 255 octets")
		}
		if err := rd.append(byte(len(tok.Value))); err != nil {
			return err
		}
		if err := rd.append([]byte(tok.Value)...); err != nil {
			return err
		}
		wrote = true
	}
	if !wrote {
		return semanticErrorf(rd.pos, "TXT requires at least one character-string")
	}
	return nil
}

// decodeGeneric implements spec §4.5's RFC 3597 fallback for any type
// without a dedicated decoder: literal "\#", an unsigned length, then that
// many octets as an even-length hex stream, possibly spanning tokens.
func decodeGeneric(fr *fieldReader, rd *rdataBuilder) error {
	marker, err := fr.requireField("generic rdata marker")
	if err != nil {
		return err
	}
	// the lexer already resolved the marker's backslash escape (\# -> "#")
	// before this decoder ever sees it, per spec §4.3's escape rules.
	if marker.Value != "#" {
		return semanticErrorf(marker.Start, `expected "\#" for an unrecognized type`)
	}

	lengthTok, err := fr.requireField("generic rdata length")
	if err != nil {
		return err
	}
	length, lerr := strconv.ParseUint(lengthTok.Value, 10, 32)
	if lerr != nil {
		return semanticErrorf(lengthTok.Start, "invalid generic rdata length %q", lengthTok.Value)
	}

	var hexStream strings.Builder
	for {
		tok, ok, err := fr.next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		hexStream.WriteString(tok.Value)
	}

	raw, herr := hex.DecodeString(hexStream.String())
	if herr != nil {
		return semanticErrorf(lengthTok.Start, "malformed generic rdata hex stream")
	}
	if uint64(len(raw)) != length {
		return semanticErrorf(lengthTok.Start, "generic rdata length %d does not match %d decoded octets", length, len(raw))
	}
	return rd.append(raw...)
}
