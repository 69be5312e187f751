package tilery

import "testing"

func TestElementIDPushDescends(t *testing.T) {
	id := NewElementID(2).Push(0).Push(3)

	if id.Depth() != 3 {
		t.Fatalf("Depth = %d, want 3", id.Depth())
	}
	if got := id.String(); got != "2/0/3" {
		t.Errorf("String = %q, want \"2/0/3\"", got)
	}
}

func TestElementIDPushDoesNotMutate(t *testing.T) {
	base := NewElementID(1)
	deeper := base.Push(5)

	if base.Depth() != 1 {
		t.Errorf("base Depth = %d after Push, want 1", base.Depth())
	}
	if deeper.Equal(base) {
		t.Error("pushed id should not equal its base")
	}

	// Two pushes off the same base must not share a tail.
	left := base.Push(7)
	if got := deeper.String(); got != "1/5" {
		t.Errorf("deeper = %q after sibling push, want \"1/5\"", got)
	}
	if got := left.String(); got != "1/7" {
		t.Errorf("left = %q, want \"1/7\"", got)
	}
}

func TestElementIDEqualIsStructural(t *testing.T) {
	a := NewElementID(0).Push(1).Push(2)
	b := NewElementID(0).Push(1).Push(2)
	c := NewElementID(0).Push(2).Push(1)

	if !a.Equal(b) {
		t.Error("identical paths should be equal")
	}
	if a.Equal(c) {
		t.Error("different index order should not be equal")
	}
	if a.Equal(NewElementID(0).Push(1)) {
		t.Error("prefix should not equal the full path")
	}
}
