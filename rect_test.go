package fx

import "testing"

func TestRectEmpty(t *testing.T) {
	if !EmptyRect().IsEmpty() {
		t.Error("EmptyRect() should be empty")
	}
	if NewRect(0, 0, 10, 10).IsEmpty() {
		t.Error("a 10x10 rect should not be empty")
	}
	if !NewRect(5, 5, 0, 0).IsEmpty() {
		t.Error("a zero-size rect should be empty")
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	got := a.Union(b)
	want := NewRect(0, 0, 15, 15)
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}

	// Union with empty is the original rect.
	if got := a.Union(EmptyRect()); got != a {
		t.Errorf("Union with empty = %+v, want %+v", got, a)
	}
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	got := a.Intersect(b)
	want := NewRect(5, 5, 5, 5)
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}

	if !a.Intersect(NewRect(20, 20, 5, 5)).IsEmpty() {
		t.Error("disjoint rects should intersect to empty")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		x, y float64
		want bool
	}{
		{5, 5, true},
		{0, 0, true},
		{10, 5, false}, // max edge is exclusive
		{-1, 5, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectSize(t *testing.T) {
	r := NewRect(2, 3, 7, 9)
	if r.Width() != 7 || r.Height() != 9 {
		t.Errorf("size = %vx%v, want 7x9", r.Width(), r.Height())
	}

	if EmptyRect().Width() != 0 || EmptyRect().Height() != 0 {
		t.Error("empty rect should have zero size")
	}
}

func TestRectTranslate(t *testing.T) {
	got := NewRect(1, 2, 3, 4).Translate(10, -2)
	want := NewRect(11, 0, 3, 4)
	if got != want {
		t.Errorf("Translate = %+v, want %+v", got, want)
	}
}
