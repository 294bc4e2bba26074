package eventtree

import (
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// Sentinel parse-error kinds, matched with errors.Is.
var (
	ErrInvalidValue = xerrors.New("eventtree: invalid counter value")
	ErrNoSplit      = xerrors.New("eventtree: malformed node")
	ErrUnknownToken = xerrors.New("eventtree: unrecognized token")
)

// String renders t in the canonical text form: "n" or "(n, L, R)".
func (t EventTree) String() string {
	if t.k == leafKind {
		return strconv.FormatUint(t.v, 10)
	}
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(strconv.FormatUint(t.v, 10))
	b.WriteString(", ")
	b.WriteString(t.l.String())
	b.WriteString(", ")
	b.WriteString(t.r.String())
	b.WriteByte(')')
	return b.String()
}

// Parse reads the canonical text form produced by String.
func Parse(s string) (EventTree, error) {
	t, rest, err := parse(strings.TrimSpace(s))
	if err != nil {
		return EventTree{}, err
	}
	if strings.TrimSpace(rest) != "" {
		return EventTree{}, xerrors.Errorf("eventtree: trailing input %q: %w", rest, ErrUnknownToken)
	}
	return t, nil
}

func parse(s string) (EventTree, string, error) {
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return EventTree{}, "", xerrors.Errorf("eventtree: empty input: %w", ErrUnknownToken)
	}
	if s[0] == '(' {
		v, rest, err := parseUint(s[1:])
		if err != nil {
			return EventTree{}, "", err
		}
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" || rest[0] != ',' {
			return EventTree{}, "", xerrors.Errorf("eventtree: expected ',' after root in %q: %w", s, ErrNoSplit)
		}
		l, rest, err := parse(rest[1:])
		if err != nil {
			return EventTree{}, "", err
		}
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" || rest[0] != ',' {
			return EventTree{}, "", xerrors.Errorf("eventtree: expected ',' after left child in %q: %w", s, ErrNoSplit)
		}
		r, rest, err := parse(rest[1:])
		if err != nil {
			return EventTree{}, "", err
		}
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" || rest[0] != ')' {
			return EventTree{}, "", xerrors.Errorf("eventtree: expected ')' in %q: %w", s, ErrNoSplit)
		}
		return NewNode(v, l, r), rest[1:], nil
	}
	v, rest, err := parseUint(s)
	if err != nil {
		return EventTree{}, "", err
	}
	return Leaf(v), rest, nil
}

func parseUint(s string) (uint64, string, error) {
	s = strings.TrimLeft(s, " \t")
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, "", xerrors.Errorf("eventtree: unrecognized token at %q: %w", s, ErrUnknownToken)
	}
	n, err := strconv.ParseUint(s[:i], 10, 64)
	if err != nil {
		return 0, "", xerrors.Errorf("eventtree: invalid value %q: %w", s[:i], ErrInvalidValue)
	}
	return n, s[i:], nil
}
