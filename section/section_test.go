package section

import "testing"

func TestBuffer(t *testing.T) {
	var b Buffer

	if b.Populated() {
		t.Error("zero buffer must not be populated")
	}

	b.WriteLine("POINTS 2 DOUBLE")
	b.WriteLinef("%d %d", 1, 2)
	b.Terminate()

	if !b.Populated() {
		t.Error("buffer must be populated after writes")
	}
	if got := b.Lines(); got != 3 {
		t.Errorf("Lines() = %d, want 3", got)
	}

	want := "POINTS 2 DOUBLE\n1 2\n\n"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAssemble(t *testing.T) {
	var header, points, empty Buffer
	header.WriteLine("DATASET POLYDATA")
	points.WriteLine("POINTS 0 DOUBLE")

	got := Assemble(&header, &empty, &points)
	want := "DATASET POLYDATA\nPOINTS 0 DOUBLE\n"
	if got != want {
		t.Errorf("Assemble = %q, want %q", got, want)
	}
}

func TestAssemble_AllEmpty(t *testing.T) {
	var a, b Buffer
	if got := Assemble(&a, &b); got != "" {
		t.Errorf("Assemble of empty buffers = %q, want empty", got)
	}
}
