package engine

import "testing"

func TestSessionSeedDeterminism(t *testing.T) {
	s1, _ := NewSessionSeed("alpha-seed")
	s2, _ := NewSessionSeed("alpha-seed")
	a := s1.Stream("computer").Intn(1000000)
	b := s2.Stream("computer").Intn(1000000)
	if a != b {
		t.Fatalf("streams differ: %d vs %d", a, b)
	}
	// child streams
	c1 := s1.Stream("computer").Child("x").Uint64()
	c2 := s2.Stream("computer").Child("x").Uint64()
	if c1 != c2 {
		t.Fatalf("child streams differ: %d vs %d", c1, c2)
	}
	if s1.Stream("computer").Uint64() == s1.Stream("player").Uint64() {
		t.Fatal("labelled streams should not collide")
	}
}

func TestSessionSeedRejectsEmpty(t *testing.T) {
	if _, err := NewSessionSeed(""); err == nil {
		t.Fatal("expected error for empty seed")
	}
}

func TestStreamIntnBounds(t *testing.T) {
	seed, _ := NewSessionSeed("bounds")
	s := seed.Stream("x")
	for i := 0; i < 1000; i++ {
		if v := s.Intn(3); v < 0 || v >= 3 {
			t.Fatalf("Intn(3) out of range: %d", v)
		}
	}
	if v := s.Intn(0); v != 0 {
		t.Fatalf("Intn(0) = %d, want 0", v)
	}
}
