package backoff

import "testing"

func TestBackoff_Snooze(t *testing.T) {
	b := New()
	b.Snooze()
	if b.n != 2 {
		t.Fatal("n", b.n, "want", 2)
	}
	for i := 0; i < 10; i++ {
		b.Snooze()
	}
	if b.n != maxBackoff {
		t.Fatal("n", b.n, "want", maxBackoff)
	}
	b.Reset()
	if b.n != 0 {
		t.Fatal("n", b.n, "want", 0)
	}
}
