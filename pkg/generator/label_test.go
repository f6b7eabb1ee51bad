package generator

import (
	"strings"
	"testing"
)

func TestRandomLabels(t *testing.T) {
	for _, length := range []int{1, 6, 32} {
		src := NewRandomLabels(length)
		for i := 0; i < 500; i++ {
			label := src.NextLabel()
			if len(label) != length {
				t.Fatalf("length: got %d, want %d (%q)", len(label), length, label)
			}
			for _, c := range label {
				if c < 'A' || c > 'Z' {
					t.Fatalf("label %q contains %q, want only A-Z", label, c)
				}
			}
		}
	}
}

func TestRandomLabelsCoverAlphabet(t *testing.T) {
	src := NewRandomLabels(6)
	seen := make(map[rune]bool)
	for i := 0; i < 2000 && len(seen) < len(Alphabet); i++ {
		for _, c := range src.NextLabel() {
			seen[c] = true
		}
	}
	if len(seen) != len(Alphabet) {
		t.Errorf("expected every letter to appear, saw %d of %d", len(seen), len(Alphabet))
	}
}

func TestSeededLabelsAreReproducible(t *testing.T) {
	a := NewSeededLabels(6, 42)
	b := NewSeededLabels(6, 42)
	c := NewSeededLabels(6, 43)

	var sameAsOther bool
	for i := 0; i < 20; i++ {
		la, lb, lc := a.NextLabel(), b.NextLabel(), c.NextLabel()
		if la != lb {
			t.Fatalf("draw %d: %q != %q for the same seed", i, la, lb)
		}
		if la == lc {
			sameAsOther = true
		}
		if strings.Trim(la, Alphabet) != "" {
			t.Fatalf("label %q has characters outside the alphabet", la)
		}
	}
	if sameAsOther {
		t.Error("expected different seeds to produce different sequences")
	}
}

func TestFixedLabels(t *testing.T) {
	src := NewFixedLabels("ONE", "TWO")
	want := []string{"ONE", "TWO", "ONE", "TWO"}
	for i, w := range want {
		if got := src.NextLabel(); got != w {
			t.Errorf("draw %d: got %q, want %q", i, got, w)
		}
	}

	if got := NewFixedLabels().NextLabel(); got != "" {
		t.Errorf("empty source: got %q, want empty", got)
	}
}
