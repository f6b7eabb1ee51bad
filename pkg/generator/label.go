package generator

import "math/rand/v2"

// Alphabet is the set labels are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomLabels samples each character uniformly from Alphabet, with replacement.
type RandomLabels struct {
	length int
	intn   func(n int) int
}

// NewRandomLabels returns a source backed by the runtime's auto-seeded
// generator, so every run differs.
func NewRandomLabels(length int) *RandomLabels {
	return &RandomLabels{length: length, intn: rand.IntN}
}

// NewSeededLabels returns a source that yields the same sequence for the same seed.
func NewSeededLabels(length int, seed uint64) *RandomLabels {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return &RandomLabels{length: length, intn: r.IntN}
}

func (l *RandomLabels) NextLabel() string {
	b := make([]byte, l.length)
	for i := range b {
		b[i] = Alphabet[l.intn(len(Alphabet))]
	}
	return string(b)
}

// FixedLabels cycles through a caller-supplied list.
type FixedLabels struct {
	labels []string
	next   int
}

func NewFixedLabels(labels ...string) *FixedLabels {
	return &FixedLabels{labels: labels}
}

func (f *FixedLabels) NextLabel() string {
	if len(f.labels) == 0 {
		return ""
	}
	s := f.labels[f.next%len(f.labels)]
	f.next++
	return s
}
