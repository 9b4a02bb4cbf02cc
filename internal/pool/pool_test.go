package pool

import "testing"

func TestPoolExhaustion(t *testing.T) {
	p := New(3)
	seen := make(map[uint32]bool)
	for i := 0; i < 3; i++ {
		id, ok := p.Get()
		if !ok {
			t.Fatalf("pool empty after %d of 3", i)
		}
		if seen[id] {
			t.Fatalf("duplicate identifier %d", id)
		}
		seen[id] = true
	}
	if _, ok := p.Get(); ok {
		t.Fatal("pool handed out a fourth identifier")
	}
}

func TestPoolReuse(t *testing.T) {
	p := New(2)
	a, _ := p.Get()
	b, _ := p.Get()
	p.Free(a)
	c, ok := p.Get()
	if !ok {
		t.Fatal("freed identifier not reusable")
	}
	if c != a {
		t.Fatalf("got %d, want freed %d", c, a)
	}
	p.Free(b)
	p.Free(c)
}
