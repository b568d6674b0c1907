package mpin

import (
	_ "embed"
	"strings"
)

//go:embed common_pins_4.txt
var commonPins4Raw string

//go:embed common_pins_6.txt
var commonPins6Raw string

// Tables holds the common-PIN lookup sets, one per supported length.
// A Tables value is built once and never mutated afterwards.
type Tables struct {
	four map[string]struct{}
	six  map[string]struct{}
}

// ParseList splits a wordlist into PIN entries. One entry per line;
// blank lines and '#' comments are skipped. Entries are not validated
// here — NewTables drops anything that is not a well-formed PIN.
func ParseList(raw string) []string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		pin := strings.TrimSpace(line)
		if pin == "" || strings.HasPrefix(pin, "#") {
			continue
		}
		out = append(out, pin)
	}
	return out
}

// NewTables builds lookup sets from raw entry lists. Entries that are not
// all-digit strings of the matching length are silently dropped, so a sloppy
// override list cannot poison the tables.
func NewTables(four, six []string) Tables {
	t := Tables{
		four: make(map[string]struct{}, len(four)),
		six:  make(map[string]struct{}, len(six)),
	}
	for _, pin := range four {
		if allDigits(pin) && len(pin) == 4 {
			t.four[pin] = struct{}{}
		}
	}
	for _, pin := range six {
		if allDigits(pin) && len(pin) == 6 {
			t.six[pin] = struct{}{}
		}
	}
	return t
}

// DefaultTables returns the embedded common-PIN tables.
func DefaultTables() Tables {
	return NewTables(ParseList(commonPins4Raw), ParseList(commonPins6Raw))
}

func (t Tables) contains(pin string) bool {
	switch len(pin) {
	case 4:
		_, ok := t.four[pin]
		return ok
	case 6:
		_, ok := t.six[pin]
		return ok
	}
	return false
}

// Len4 reports the size of the 4-digit table.
func (t Tables) Len4() int { return len(t.four) }

// Len6 reports the size of the 6-digit table.
func (t Tables) Len6() int { return len(t.six) }
