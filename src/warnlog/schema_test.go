package warnlog

import "testing"

func TestInferLayoutFull(t *testing.T) {
	for _, n := range []int{13, 14, 20} {
		l := InferLayout(n)
		if !l.Full || l.Width != 13 {
			t.Fatalf("count %d: expected Full width 13, got %+v", n, l)
		}
	}
}

func TestInferLayoutBasic(t *testing.T) {
	cases := []struct {
		count, width int
	}{
		{12, 7}, // between the shapes: Basic truncated to the 7-name set
		{8, 7},
		{7, 7},
		{4, 4},
		{3, 3},
		{1, 1},
		{0, 0},
	}
	for _, c := range cases {
		l := InferLayout(c.count)
		if l.Full || l.Width != c.width {
			t.Fatalf("count %d: expected Basic width %d, got %+v", c.count, c.width, l)
		}
	}
}

func TestLayoutNamesOrder(t *testing.T) {
	l := InferLayout(5)
	want := []string{"Timestamp", "Code", "Status", "Subsystem", "Category"}
	names := l.Names()
	if len(names) != len(want) {
		t.Fatalf("expected %d names got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("name %d: got %q want %q", i, names[i], want[i])
		}
	}
	full := InferLayout(13).Names()
	if full[ColFlag2] != "Flag2" || len(full) != 13 {
		t.Fatalf("unexpected full names: %v", full)
	}
}

func TestLayoutHasSubsystem(t *testing.T) {
	if InferLayout(3).HasSubsystem() {
		t.Fatalf("width 3 should not reach Subsystem")
	}
	if !InferLayout(4).HasSubsystem() {
		t.Fatalf("width 4 should include Subsystem")
	}
	if !InferLayout(13).HasSubsystem() {
		t.Fatalf("full layout should include Subsystem")
	}
}
