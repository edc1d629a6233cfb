package numfmt

import "testing"

func TestFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0000000000"},
		{-0.5, "-0.5000000000"},
		{0, "0.0000000000"},
		{0.1234567890123, "0.1234567890"},
		{0.1234567890987, "0.1234567891"},
		{12345.6789, "12345.6789000000"},
	}

	for _, tt := range tests {
		if got := Fixed10.Float(tt.in); got != tt.want {
			t.Errorf("Float(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTriple(t *testing.T) {
	got := Fixed10.Triple(1, -2, 0.5)
	want := "1.0000000000 -2.0000000000 0.5000000000"
	if got != want {
		t.Errorf("Triple = %q, want %q", got, want)
	}
}

func TestNewClampsPrecision(t *testing.T) {
	f := New(-3)
	if got := f.Float(1.5); got != "2" && got != "1" {
		// 'f' with precision 0 rounds to the nearest integer.
		t.Errorf("Float(1.5) at precision 0 = %q", got)
	}
	if f.Precision() != 0 {
		t.Errorf("Precision() = %d, want 0", f.Precision())
	}
}

func TestAppendFloat(t *testing.T) {
	b := Fixed10.AppendFloat(nil, 0.25)
	if string(b) != "0.2500000000" {
		t.Errorf("AppendFloat = %q", b)
	}
}
