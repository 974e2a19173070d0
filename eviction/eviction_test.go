package eviction

import "testing"

func TestLRUOrder(t *testing.T) {
	p := New(LRU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("c")
	p.OnGet("a") // a becomes most recent; b is now the victim

	if k := p.Evict(); k != "b" {
		t.Fatalf("Evict = %q, want b", k)
	}
	if k := p.Evict(); k != "c" {
		t.Fatalf("Evict = %q, want c", k)
	}
	if k := p.Evict(); k != "a" {
		t.Fatalf("Evict = %q, want a", k)
	}
	if k := p.Evict(); k != "" {
		t.Fatalf("Evict on empty = %q, want \"\"", k)
	}
}

func TestLRURemove(t *testing.T) {
	p := New(LRU)

	p.OnPut("a")
	p.OnPut("b")
	p.Remove("a")

	if k := p.Evict(); k != "b" {
		t.Fatalf("Evict = %q, want b", k)
	}
	p.Remove("missing") // no-op
}

func TestLRUDuplicatePut(t *testing.T) {
	p := New(LRU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("a") // already tracked; position unchanged

	if k := p.Evict(); k != "a" {
		t.Fatalf("Evict = %q, want a", k)
	}
}

func TestLFUPrefersColdKeys(t *testing.T) {
	p := New(LFU)

	p.OnPut("hot")
	p.OnPut("cold")
	p.OnGet("hot")
	p.OnGet("hot")

	if k := p.Evict(); k != "cold" {
		t.Fatalf("Evict = %q, want cold", k)
	}
	if k := p.Evict(); k != "hot" {
		t.Fatalf("Evict = %q, want hot", k)
	}
}

func TestLFURemoveThenEvict(t *testing.T) {
	p := New(LFU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnGet("b")
	p.Remove("a") // drains the minimum-frequency bucket

	if k := p.Evict(); k != "b" {
		t.Fatalf("Evict = %q, want b", k)
	}
	if k := p.Evict(); k != "" {
		t.Fatalf("Evict on empty = %q, want \"\"", k)
	}
}

func TestFIFOIgnoresReads(t *testing.T) {
	p := New(FIFO)

	p.OnPut("a")
	p.OnPut("b")
	p.OnGet("a") // reads must not reorder FIFO

	if k := p.Evict(); k != "a" {
		t.Fatalf("Evict = %q, want a", k)
	}
}

func TestFIFORemovePreservesOrder(t *testing.T) {
	p := New(FIFO)

	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("c")
	p.Remove("b")

	if k := p.Evict(); k != "a" {
		t.Fatalf("Evict = %q, want a", k)
	}
	if k := p.Evict(); k != "c" {
		t.Fatalf("Evict = %q, want c", k)
	}
}

func TestNewUnknownPolicyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New with unknown policy did not panic")
		}
	}()
	New(PolicyType("ARC"))
}
