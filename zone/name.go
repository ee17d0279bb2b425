package zone

import "github.com/smasher164/xid"

// maxLabelLength and maxNameLength are the RFC 1035 §3.1 wire-format limits
// (spec §3 "Invariants", §4.6).
const (
	maxLabelLength = 63
	maxNameLength  = 255
)

// Name is a canonical length-prefixed label sequence: a run of
// {length-octet, label bytes} pairs terminated by a zero-length root
// label. It is always absolute once compiled.
type Name []byte

// compileName converts a text token (already escape-resolved by the lexer)
// into a canonical Name, applying origin for unqualified input (spec §4.6).
// origin must itself already be a compiled, absolute Name.
func compileName(text string, origin Name, pos Pos) (Name, error) {
	if text == "@" {
		if origin == nil {
			return nil, semanticErrorf(pos, "'@' used before an origin is set")
		}
		return origin, nil
	}

	var out []byte
	labelStart := len(out)
	out = append(out, 0) // placeholder length byte for the first label
	labelLen := 0
	absolute := false

	// text is the lexer's already escape-resolved token Value (spec §4.3's
	// \c / \DDD rules were applied there). A '.' that arrived via a \056 or
	// \. escape is therefore byte-identical to a literal label separator
	// by the time it reaches here; this parser treats every '.' in text as
	// a separator, which is the documented limitation recorded in
	// DESIGN.md (escaping a literal dot inside one label is not
	// distinguishable from ending the label early).
	runes := []byte(text)
	for i := 0; i < len(runes); i++ {
		b := runes[i]
		if b == '.' {
			if i == len(runes)-1 {
				absolute = true
				break
			}
			if labelLen == 0 {
				return nil, syntaxErrorf(pos, "empty label in name %q", text)
			}
			if labelLen > maxLabelLength {
				return nil, semanticErrorf(pos, "label exceeds %d octets in name %q", maxLabelLength, text)
			}
			out[labelStart] = byte(labelLen)
			labelStart = len(out)
			out = append(out, 0)
			labelLen = 0
			continue
		}
		out = append(out, b)
		labelLen++
	}

	if labelLen > 0 {
		if labelLen > maxLabelLength {
			return nil, semanticErrorf(pos, "label exceeds %d octets in name %q", maxLabelLength, text)
		}
		out[labelStart] = byte(labelLen)
	} else if len(out) > labelStart+1 {
		// trailing empty label from "a..b." style input.
		return nil, syntaxErrorf(pos, "empty label in name %q", text)
	} else {
		// no final label was opened (text ended right after a '.'), drop
		// the dangling placeholder.
		out = out[:labelStart]
	}

	out = append(out, 0) // root label

	if !absolute {
		if origin == nil {
			return nil, semanticErrorf(pos, "unqualified name %q used before an origin is set", text)
		}
		out = out[:len(out)-1] // drop our own root label, origin supplies one
		out = append(out, origin...)
	}

	if len(out) > maxNameLength {
		return nil, semanticErrorf(pos, "name %q exceeds %d octets", text, maxNameLength)
	}
	return Name(out), nil
}

// isLabelByte reports whether r is a hostname-style label character (an
// xid identifier rune, '-' or '_'). Parsing accepts any byte in a label;
// xid's identifier classification is reused (rather than hand-rolling a
// second ASCII table) to flag non-hostname-safe bytes for diagnostics, not
// to reject them outright — DNS names are binary safe.
func isLabelByte(r rune) bool {
	return xid.Start(r) || xid.Continue(r) || r == '-' || r == '_'
}

// LooksLikeHostname reports whether every label in n is made up only of
// bytes isLabelByte accepts. It never affects parsing (spec §4.6 names are
// binary safe); it exists for tooling like `zonescan parse`'s lint output
// to flag an owner name a human probably didn't mean to make binary.
func (n Name) LooksLikeHostname() bool {
	for i := 0; i < len(n); {
		ll := int(n[i])
		i++
		if ll == 0 {
			break
		}
		if i+ll > len(n) {
			return false
		}
		for _, b := range n[i : i+ll] {
			if !isLabelByte(rune(b)) {
				return false
			}
		}
		i += ll
	}
	return true
}
