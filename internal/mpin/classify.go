// Package mpin classifies short numeric PINs (4 or 6 digits) as STRONG or
// WEAK by checking them against commonly used codes and against codes
// derivable from the holder's personal dates.
package mpin

import (
	"errors"
	"sort"
	"time"
)

// Strength is the classification verdict.
type Strength string

const (
	Strong Strength = "STRONG"
	Weak   Strength = "WEAK"
)

// Reason explains why a PIN was classified WEAK.
type Reason string

const (
	ReasonCommonlyUsed Reason = "COMMONLY_USED"
	ReasonAnniversary  Reason = "DEMOGRAPHIC_ANNIVERSARY"
	ReasonDOBSelf      Reason = "DEMOGRAPHIC_DOB_SELF"
	ReasonDOBSpouse    Reason = "DEMOGRAPHIC_DOB_SPOUSE"
)

// ErrInvalidPIN is returned when the candidate is not a string of 4 or 6
// decimal digits.
var ErrInvalidPIN = errors.New("pin must be 4 or 6 decimal digits")

// Demographics carries the optional personal dates a PIN is checked against.
// A zero time means the date is not known; that is a valid "no signal" case,
// never an error.
type Demographics struct {
	Self        time.Time
	Spouse      time.Time
	Anniversary time.Time
}

// Result is the classification outcome. Reasons is deduplicated and sorted
// lexically; it is empty exactly when Strength is Strong.
type Result struct {
	Strength Strength `json:"strength"`
	Reasons  []Reason `json:"reasons"`
}

// Classifier checks PINs against immutable common-PIN tables. It holds no
// mutable state, so a single instance is safe for concurrent use.
type Classifier struct {
	tables Tables
}

// New builds a Classifier over the given tables.
func New(t Tables) *Classifier {
	return &Classifier{tables: t}
}

var defaultClassifier = New(DefaultTables())

// Default returns the process-wide Classifier over the embedded tables.
func Default() *Classifier { return defaultClassifier }

// Classify validates pin and returns its strength plus the triggered reasons.
// It fails with ErrInvalidPIN before any reason is computed; otherwise the
// result is complete and deterministic.
func (c *Classifier) Classify(pin string, demo Demographics) (Result, error) {
	if !ValidPIN(pin) {
		return Result{}, ErrInvalidPIN
	}

	hits := make(map[Reason]struct{}, 4)
	if c.tables.contains(pin) {
		hits[ReasonCommonlyUsed] = struct{}{}
	}

	probes := []struct {
		date   time.Time
		reason Reason
	}{
		{demo.Self, ReasonDOBSelf},
		{demo.Spouse, ReasonDOBSpouse},
		{demo.Anniversary, ReasonAnniversary},
	}
	for _, p := range probes {
		if p.date.IsZero() {
			continue
		}
		if _, ok := DatePatterns(p.date, len(pin))[pin]; ok {
			hits[p.reason] = struct{}{}
		}
	}

	reasons := make([]Reason, 0, len(hits))
	for r := range hits {
		reasons = append(reasons, r)
	}
	sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })

	strength := Strong
	if len(reasons) > 0 {
		strength = Weak
	}
	return Result{Strength: strength, Reasons: reasons}, nil
}

// Classify runs the default Classifier.
func Classify(pin string, demo Demographics) (Result, error) {
	return defaultClassifier.Classify(pin, demo)
}

// ValidPIN reports whether s is a string of exactly 4 or 6 decimal digits.
func ValidPIN(s string) bool {
	if len(s) != 4 && len(s) != 6 {
		return false
	}
	return allDigits(s)
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
