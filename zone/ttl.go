package zone

import "strconv"

// maxTTL is 2^31-1, the upper bound spec §4.4/§6 place on TTL and on the
// SOA timer fields that reuse this same syntax.
const maxTTL = (1 << 31) - 1

// parseTTL accepts a plain decimal or a BIND-style duration like "3h2m1s"
// (case-insensitive units s, m, h, d, w), per spec §4.4.
func parseTTL(text string, pos Pos) (uint32, error) {
	if text == "" {
		return 0, syntaxErrorf(pos, "empty TTL")
	}
	if isAllDigits(text) {
		return parseTTLDigits(text, pos)
	}
	return parseTTLDuration(text, pos)
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDecimalDigit(s[i]) {
			return false
		}
	}
	return true
}

func parseTTLDigits(text string, pos Pos) (uint32, error) {
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil || n > maxTTL {
		return 0, semanticErrorf(pos, "TTL %q out of range", text)
	}
	return uint32(n), nil
}

func parseTTLDuration(text string, pos Pos) (uint32, error) {
	var total uint64
	i := 0
	for i < len(text) {
		start := i
		for i < len(text) && isDecimalDigit(text[i]) {
			i++
		}
		if i == start {
			return 0, syntaxErrorf(pos, "malformed TTL duration %q", text)
		}
		n, err := strconv.ParseUint(text[start:i], 10, 64)
		if err != nil {
			return 0, syntaxErrorf(pos, "malformed TTL duration %q", text)
		}
		if i >= len(text) {
			return 0, syntaxErrorf(pos, "TTL duration %q missing a unit", text)
		}
		unit := text[i]
		i++
		var mult uint64
		switch unit {
		case 's', 'S':
			mult = 1
		case 'm', 'M':
			mult = 60
		case 'h', 'H':
			mult = 3600
		case 'd', 'D':
			mult = 86400
		case 'w', 'W':
			mult = 604800
		default:
			return 0, syntaxErrorf(pos, "unknown TTL unit %q in %q", string(unit), text)
		}
		total += n * mult
	}
	if total > maxTTL {
		return 0, semanticErrorf(pos, "TTL %q out of range", text)
	}
	return uint32(total), nil
}
