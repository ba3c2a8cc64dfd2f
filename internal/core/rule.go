package core

import (
	"strings"

	"github.com/pkg/errors"
)

// Rule is an outer-totalistic birth/survival rule. Bit n of Birth (Survive)
// is set when a dead (live) cell with n live neighbors is alive next generation.
type Rule struct {
	Birth   uint16
	Survive uint16
}

// Conway is the classic B3/S23 rule.
var Conway = Rule{Birth: 1 << 3, Survive: 1<<2 | 1<<3}

// Next reports whether a cell is alive in the next generation.
func (r Rule) Next(alive bool, neighbors int) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	if alive {
		return r.Survive&(1<<neighbors) != 0
	}
	return r.Birth&(1<<neighbors) != 0
}

// String formats the rule in B/S notation, e.g. "B3/S23".
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	writeCounts(&sb, r.Birth)
	sb.WriteString("/S")
	writeCounts(&sb, r.Survive)
	return sb.String()
}

func writeCounts(sb *strings.Builder, mask uint16) {
	for n := 0; n <= 8; n++ {
		if mask&(1<<n) != 0 {
			sb.WriteByte(byte('0' + n))
		}
	}
}

// ParseRule parses B/S notation such as "B3/S23" or "b36/s23".
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return Rule{}, errors.Errorf("rule %q: want B<digits>/S<digits>", s)
	}
	var r Rule
	seen := map[byte]bool{}
	for _, part := range parts {
		if part == "" {
			return Rule{}, errors.Errorf("rule %q: empty section", s)
		}
		if seen[part[0]] {
			return Rule{}, errors.Errorf("rule %q: duplicate section %q", s, part[:1])
		}
		seen[part[0]] = true
		mask, err := parseCounts(part[1:])
		if err != nil {
			return Rule{}, errors.Wrapf(err, "rule %q", s)
		}
		switch part[0] {
		case 'B':
			r.Birth = mask
		case 'S':
			r.Survive = mask
		default:
			return Rule{}, errors.Errorf("rule %q: unknown section %q", s, part[:1])
		}
	}
	if r.Birth&1 != 0 {
		// B0 would light up the whole unbounded plane.
		return Rule{}, errors.Errorf("rule %q: B0 is not supported", s)
	}
	return r, nil
}

func parseCounts(digits string) (uint16, error) {
	var mask uint16
	for _, ch := range digits {
		if ch < '0' || ch > '8' {
			return 0, errors.Errorf("invalid neighbor count %q", ch)
		}
		mask |= 1 << (ch - '0')
	}
	return mask, nil
}
