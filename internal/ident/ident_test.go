package ident

import (
	"regexp"
	"testing"
)

func TestSessionID_Deterministic(t *testing.T) {
	seq := []int{0, 0, 42}
	i := 0
	g := New(func(o *Options) {
		o.Intn = func(n int) int {
			v := seq[i%len(seq)]
			i++
			return v % n
		}
	})

	if got := g.SessionID(); got != "brave-falcon-42" {
		t.Fatalf("expected brave-falcon-42, got %s", got)
	}
}

func TestSessionID_Format(t *testing.T) {
	g := New()
	pattern := regexp.MustCompile(`^[a-z]+-[a-z]+-\d{1,3}$`)
	for i := 0; i < 50; i++ {
		id := g.SessionID()
		if !pattern.MatchString(id) {
			t.Fatalf("unexpected id format: %s", id)
		}
	}
}
