package mpin

import (
	"errors"
	"reflect"
	"testing"
)

func TestClassify_InvalidInput(t *testing.T) {
	bad := []string{"", "123", "12345", "1234567", "12a4", "12 4", "１２３４", "-123", "12.4"}
	for _, pin := range bad {
		if _, err := Classify(pin, Demographics{}); !errors.Is(err, ErrInvalidPIN) {
			t.Errorf("pin %q: want ErrInvalidPIN, got %v", pin, err)
		}
	}
}

func TestClassify_Scenarios(t *testing.T) {
	full := Demographics{
		Self:        date(1992, 8, 15),
		Spouse:      date(1994, 3, 3),
		Anniversary: date(2018, 11, 20),
	}

	tests := []struct {
		name string
		pin  string
		demo Demographics
		want Result
	}{
		{
			name: "common pin, no demographics",
			pin:  "1234",
			want: Result{Strength: Weak, Reasons: []Reason{ReasonCommonlyUsed}},
		},
		{
			name: "strong pin despite full demographics",
			pin:  "5839",
			demo: full,
			want: Result{Strength: Strong, Reasons: []Reason{}},
		},
		{
			name: "own dob ddmm",
			pin:  "1508",
			demo: Demographics{Self: date(1992, 8, 15)},
			want: Result{Strength: Weak, Reasons: []Reason{ReasonDOBSelf}},
		},
		{
			name: "year is both common and own dob",
			pin:  "1992",
			demo: Demographics{Self: date(1992, 8, 15)},
			want: Result{Strength: Weak, Reasons: []Reason{ReasonCommonlyUsed, ReasonDOBSelf}},
		},
		{
			name: "own dob ddmmyy, 6 digits",
			pin:  "150892",
			demo: Demographics{Self: date(1992, 8, 15)},
			want: Result{Strength: Weak, Reasons: []Reason{ReasonDOBSelf}},
		},
		{
			name: "spouse dob mmdd",
			pin:  "0303",
			demo: full,
			want: Result{Strength: Weak, Reasons: []Reason{ReasonDOBSpouse}},
		},
		{
			name: "anniversary yymmdd",
			pin:  "181120",
			demo: full,
			want: Result{Strength: Weak, Reasons: []Reason{ReasonAnniversary}},
		},
		{
			name: "common 6 digit",
			pin:  "123456",
			want: Result{Strength: Weak, Reasons: []Reason{ReasonCommonlyUsed}},
		},
		{
			name: "strong 6 digit",
			pin:  "837462",
			demo: full,
			want: Result{Strength: Strong, Reasons: []Reason{}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Classify(tc.pin, tc.demo)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got.Strength != tc.want.Strength {
				t.Fatalf("strength: want %s, got %s (reasons %v)", tc.want.Strength, got.Strength, got.Reasons)
			}
			if !reflect.DeepEqual(got.Reasons, tc.want.Reasons) {
				t.Fatalf("reasons: want %v, got %v", tc.want.Reasons, got.Reasons)
			}
		})
	}
}

func TestClassify_ReasonsSorted(t *testing.T) {
	// Same date for everything: a ddmm PIN triggers all three demographic
	// reasons at once; reasons must come back in lexical order.
	d := date(1990, 2, 1)
	demo := Demographics{Self: d, Spouse: d, Anniversary: d}

	got, err := Classify("0102", demo)
	if err != nil {
		t.Fatal(err)
	}
	want := []Reason{ReasonAnniversary, ReasonDOBSelf, ReasonDOBSpouse}
	if !reflect.DeepEqual(got.Reasons, want) {
		t.Fatalf("want %v, got %v", want, got.Reasons)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	demo := Demographics{Self: date(1992, 8, 15)}
	a, err := Classify("1508", demo)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Classify("1508", demo)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("classify is not deterministic: %v vs %v", a, b)
	}
}

func TestClassify_StrongHasEmptyNonNilReasons(t *testing.T) {
	got, err := Classify("8642", Demographics{})
	if err != nil {
		t.Fatal(err)
	}
	if got.Strength != Strong {
		t.Fatalf("want STRONG, got %s (%v)", got.Strength, got.Reasons)
	}
	if got.Reasons == nil || len(got.Reasons) != 0 {
		t.Fatalf("want empty non-nil reasons, got %#v", got.Reasons)
	}
}

func TestClassify_CustomTables(t *testing.T) {
	c := New(NewTables([]string{"8642"}, []string{"864213"}))
	got, err := c.Classify("8642", Demographics{})
	if err != nil {
		t.Fatal(err)
	}
	if got.Strength != Weak {
		t.Fatalf("custom table miss: %v", got)
	}
	got, err = c.Classify("1234", Demographics{})
	if err != nil {
		t.Fatal(err)
	}
	if got.Strength != Strong {
		t.Fatalf("default entries must not leak into custom tables: %v", got)
	}
}
