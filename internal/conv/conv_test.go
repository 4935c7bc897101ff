package conv

import (
	"reflect"
	"testing"
)

func TestRuneOffsets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"empty", "", []int{0}},
		{"ascii", "abc", []int{0, 1, 2, 3}},
		{"two byte", "é1", []int{0, 2, 3}},
		{"mixed", "aπ€b", []int{0, 1, 3, 6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RuneOffsets(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RuneOffsets(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOffsetsSpan(t *testing.T) {
	s := "ünïcode"
	o := Offsets(RuneOffsets(s))

	tests := []struct {
		start, length      int
		wantStart, wantEnd int
	}{
		{1, 2, 2, 5},
		{0, 7, 0, len(s)},
	}

	for _, tt := range tests {
		start, end := o.Span(tt.start, tt.length)
		if start != tt.wantStart || end != tt.wantEnd {
			t.Errorf("Span(%d, %d) = (%d, %d), want (%d, %d)",
				tt.start, tt.length, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}

func TestOffsetsByteUnmatched(t *testing.T) {
	o := Offsets(RuneOffsets("abc"))
	if got := o.Byte(-1); got != -1 {
		t.Errorf("Byte(-1) = %d, want -1", got)
	}
}

func TestOffsetsBytePanicsPastEnd(t *testing.T) {
	o := Offsets(RuneOffsets("ab"))
	defer func() {
		if r := recover(); r == nil {
			t.Error("Byte(4) did not panic")
		}
	}()
	o.Byte(4)
}

func TestASCII(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"dartlang", true},
		{"dart→lang", false},
	}

	for _, tt := range tests {
		if got := ASCII(tt.input); got != tt.want {
			t.Errorf("ASCII(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
