package zone

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// String renders a Name in dotted text form (spec §8's presentation form
// for names), mainly for diagnostics and logging.
func (n Name) String() string {
	return decompileName(n)
}

// decompileName renders a canonical Name back to dotted text. Label bytes
// that would end or alter an unquoted field (whitespace, control and
// non-ASCII bytes, `"`, `(`, `)`, `;`, `\`) are written as \DDD escapes so
// the text survives a re-parse (the Round-trip Law in spec §8), without
// byte-matching the original source text. A `.` inside a label is written
// as is, and compileName reads it back as a label separator.
func decompileName(n Name) string {
	var sb strings.Builder
	i := 0
	for i < len(n) {
		l := int(n[i])
		i++
		if l == 0 {
			break
		}
		if sb.Len() > 0 {
			sb.WriteByte('.')
		}
		for _, c := range n[i : i+l] {
			if c <= ' ' || c >= 0x7f || c == '"' || c == '(' || c == ')' || c == ';' || c == '\\' {
				fmt.Fprintf(&sb, "\\%03d", c)
			} else {
				sb.WriteByte(c)
			}
		}
		i += l
	}
	sb.WriteByte('.')
	return sb.String()
}

func classString(c Class) string {
	for text, v := range textToClass {
		if v == c {
			return text
		}
	}
	return fmt.Sprintf("CLASS%d", c)
}

func typeString(t Type) string {
	for text, v := range textToType {
		if v == t {
			return text
		}
	}
	return fmt.Sprintf("TYPE%d", t)
}

// Present serializes an accepted RR back to canonical master-file text
// (spec §8 "Round-trip law"), one line, newline-terminated.
func Present(owner Name, typ Type, class Class, ttl uint32, rdata []byte) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d %s %s ", decompileName(owner), ttl, classString(class), typeString(typ))

	if typeNeedsGenericEncoding(typ) {
		fmt.Fprintf(&sb, "\\# %d %s", len(rdata), strings.ToUpper(hex.EncodeToString(rdata)))
		sb.WriteByte('\n')
		return sb.String(), nil
	}

	body, err := presentRDATA(typ, rdata)
	if err != nil {
		return "", err
	}
	sb.WriteString(body)
	sb.WriteByte('\n')
	return sb.String(), nil
}

func presentRDATA(typ Type, rdata []byte) (string, error) {
	switch typ {
	case TypeA:
		if len(rdata) != 4 {
			return "", semanticErrorf(Pos{}, "malformed A rdata")
		}
		return fmt.Sprintf("%d.%d.%d.%d", rdata[0], rdata[1], rdata[2], rdata[3]), nil

	case TypeAAAA:
		if len(rdata) != 16 {
			return "", semanticErrorf(Pos{}, "malformed AAAA rdata")
		}
		return presentIPv6(rdata), nil

	case TypeNS, TypeCNAME, TypePTR:
		name, _, err := readName(rdata, 0)
		if err != nil {
			return "", err
		}
		return decompileName(name), nil

	case TypeSOA:
		mname, off, err := readName(rdata, 0)
		if err != nil {
			return "", err
		}
		rname, off, err := readName(rdata, off)
		if err != nil {
			return "", err
		}
		if len(rdata)-off != 20 {
			return "", semanticErrorf(Pos{}, "malformed SOA rdata")
		}
		serial := readUint32(rdata, off)
		refresh := readUint32(rdata, off+4)
		retry := readUint32(rdata, off+8)
		expire := readUint32(rdata, off+12)
		minimum := readUint32(rdata, off+16)
		return fmt.Sprintf("%s %s %d %d %d %d %d", decompileName(mname), decompileName(rname), serial, refresh, retry, expire, minimum), nil

	case TypeMX:
		if len(rdata) < 2 {
			return "", semanticErrorf(Pos{}, "malformed MX rdata")
		}
		pref := uint16(rdata[0])<<8 | uint16(rdata[1])
		name, _, err := readName(rdata, 2)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d %s", pref, decompileName(name)), nil

	case TypeTXT:
		var sb strings.Builder
		off := 0
		for off < len(rdata) {
			l := int(rdata[off])
			off++
			if off+l > len(rdata) {
				return "", semanticErrorf(Pos{}, "malformed TXT rdata")
			}
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('"')
			for _, c := range rdata[off : off+l] {
				switch {
				case c == '"' || c == '\\':
					sb.WriteByte('\\')
					sb.WriteByte(c)
				case c < ' ' || c >= 0x7f:
					fmt.Fprintf(&sb, "\\%03d", c)
				default:
					sb.WriteByte(c)
				}
			}
			sb.WriteByte('"')
			off += l
		}
		return sb.String(), nil

	default:
		return "", semanticErrorf(Pos{}, "no presentation form for type %d", typ)
	}
}

func readName(buf []byte, off int) (Name, int, error) {
	start := off
	for off < len(buf) {
		l := int(buf[off])
		off++
		if l == 0 {
			return Name(buf[start:off]), off, nil
		}
		off += l
	}
	return nil, 0, semanticErrorf(Pos{}, "truncated name in rdata")
}

func readUint32(buf []byte, off int) uint32 {
	return uint32(buf[off])<<24 | uint32(buf[off+1])<<16 | uint32(buf[off+2])<<8 | uint32(buf[off+3])
}

func presentIPv6(b []byte) string {
	words := make([]uint16, 8)
	for i := range words {
		words[i] = uint16(b[i*2])<<8 | uint16(b[i*2+1])
	}

	bestStart, bestLen := -1, 0
	curStart, curLen := -1, 0
	for i, w := range words {
		if w == 0 {
			if curStart == -1 {
				curStart = i
			}
			curLen++
			if curLen > bestLen {
				bestStart, bestLen = curStart, curLen
			}
		} else {
			curStart, curLen = -1, 0
		}
	}

	hexGroup := func(w uint16) string { return fmt.Sprintf("%x", w) }

	if bestLen > 1 {
		var head, tail []string
		for i := 0; i < bestStart; i++ {
			head = append(head, hexGroup(words[i]))
		}
		for i := bestStart + bestLen; i < 8; i++ {
			tail = append(tail, hexGroup(words[i]))
		}
		switch {
		case len(head) == 0 && len(tail) == 0:
			return "::"
		case len(head) == 0:
			return "::" + strings.Join(tail, ":")
		case len(tail) == 0:
			return strings.Join(head, ":") + "::"
		default:
			return strings.Join(head, ":") + "::" + strings.Join(tail, ":")
		}
	}

	var parts []string
	for _, w := range words {
		parts = append(parts, hexGroup(w))
	}
	return strings.Join(parts, ":")
}
