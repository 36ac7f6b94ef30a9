package pagerange

import (
	"reflect"
	"testing"
)

func TestResolveAll(t *testing.T) {
	got := Resolve(All(), 4)
	if !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Fatalf("Resolve(All, 4) = %v", got)
	}
	if got := Resolve(All(), 0); len(got) != 0 {
		t.Fatalf("Resolve(All, 0) = %v, want empty", got)
	}
}

func TestResolveExplicitRange(t *testing.T) {
	got := Resolve(Explicit("3-5"), 10)
	if !reflect.DeepEqual(got, []int{2, 3, 4}) {
		t.Fatalf("Resolve(3-5, 10) = %v", got)
	}
}

func TestResolveSinglePage(t *testing.T) {
	got := Resolve(Explicit("5"), 10)
	if !reflect.DeepEqual(got, []int{4}) {
		t.Fatalf("Resolve(5, 10) = %v", got)
	}
}

func TestResolveSinglePageOutOfRange(t *testing.T) {
	if got := Resolve(Explicit("5"), 3); len(got) != 0 {
		t.Fatalf("Resolve(5, 3) = %v, want empty", got)
	}
}

func TestResolveEmptyTextActsAsAll(t *testing.T) {
	got := Resolve(Explicit(""), 3)
	if !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Fatalf("Resolve(Explicit(\"\"), 3) = %v", got)
	}
	got = Resolve(Explicit("   "), 3)
	if !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Fatalf("Resolve(Explicit(whitespace), 3) = %v", got)
	}
}

func TestResolveMalformedTextIsEmpty(t *testing.T) {
	for _, text := range []string{"abc", "1-x", "x-3", "1.5", "2--4"} {
		if got := Resolve(Explicit(text), 5); len(got) != 0 {
			t.Fatalf("Resolve(%q, 5) = %v, want empty", text, got)
		}
	}
}

func TestResolveInvertedRangeIsEmpty(t *testing.T) {
	if got := Resolve(Explicit("2-1"), 5); len(got) != 0 {
		t.Fatalf("Resolve(2-1, 5) = %v, want empty", got)
	}
}

func TestResolveClipsOutOfRangeEndpoints(t *testing.T) {
	// "0-0" means 1-based page zero, which does not exist; it must vanish
	// silently rather than error.
	if got := Resolve(Explicit("0-0"), 1); len(got) != 0 {
		t.Fatalf("Resolve(0-0, 1) = %v, want empty", got)
	}
	got := Resolve(Explicit("8-20"), 10)
	if !reflect.DeepEqual(got, []int{7, 8, 9}) {
		t.Fatalf("Resolve(8-20, 10) = %v", got)
	}
}

func TestResolveIsPure(t *testing.T) {
	a := Resolve(Explicit("3-5"), 10)
	b := Resolve(Explicit("3-5"), 10)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced %v and %v", a, b)
	}
}
