package iarray

import (
	"reflect"
	"testing"
)

func TestDigit(t *testing.T) {
	type args struct {
		p uint64
		s uint
	}
	tests := []struct {
		name string
		args args
		want uint
	}{
		{"low digit of zero", args{0, 0}, 0},
		{"low digit of 31", args{31, 0}, 31},
		{"low digit wraps at 32", args{32, 0}, 0},
		{"second digit of 32", args{32, BranchBits}, 1},
		{"second digit of 1023", args{1023, BranchBits}, 31},
		{"third digit of 1024", args{1024, 2 * BranchBits}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := digit(tt.args.p, tt.args.s); got != tt.want {
				t.Errorf("digit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDigits(t *testing.T) {
	type args struct {
		p uint64
		s uint
	}
	tests := []struct {
		name string
		args args
		want []uint
	}{
		{"single level", args{17, 0}, []uint{17}},
		{"two levels, msb first", args{33, BranchBits}, []uint{1, 1}},
		{"two levels, full low digit", args{1023, BranchBits}, []uint{31, 31}},
		{"three levels", args{1 + 2*32 + 3*32*32, 2 * BranchBits}, []uint{3, 2, 1}},
		{"leading zero digits are kept", args{5, 2 * BranchBits}, []uint{0, 0, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := digits(tt.args.p, tt.args.s)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("digits() = %v, want %v", got, tt.want)
			}
			if len(got) != int(tt.args.s/BranchBits)+1 {
				t.Errorf("digits() length = %d, want %d", len(got), tt.args.s/BranchBits+1)
			}
			if back := undigits(got); back != tt.args.p {
				t.Errorf("undigits(digits()) = %d, want %d", back, tt.args.p)
			}
		})
	}
}

func TestCapacity(t *testing.T) {
	tests := []struct {
		name string
		s    uint
		want uint64
	}{
		{"leaf root", 0, 32},
		{"one branch level", BranchBits, 32 * 32},
		{"two branch levels", 2 * BranchBits, 32 * 32 * 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := capacity(tt.s); got != tt.want {
				t.Errorf("capacity() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Every position addressable under a root must round trip through the
// codec, and the decoded digits must each be in range.
func TestDigitsTotality(t *testing.T) {
	for _, s := range []uint{0, BranchBits, 2 * BranchBits} {
		for p := uint64(0); p < capacity(s); p += 7 {
			ds := digits(p, s)
			for _, d := range ds {
				if d >= BranchFactor {
					t.Fatalf("digit %d out of range for p=%d", d, p)
				}
			}
			if undigits(ds) != p {
				t.Fatalf("round trip failed for p=%d shift=%d", p, s)
			}
		}
	}
}
