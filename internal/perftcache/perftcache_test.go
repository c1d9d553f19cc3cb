package perftcache

import "testing"

const startHash uint64 = 0x1234567890abcdef

func TestCacheMissThenHit(t *testing.T) {
	c, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	defer c.Close()

	if _, found, err := c.Get(startHash, 4); err != nil {
		t.Fatalf("Get: %v", err)
	} else if found {
		t.Fatal("expected cache miss before any Put")
	}

	if err := c.Put(startHash, 4, 197281); err != nil {
		t.Fatalf("Put: %v", err)
	}

	nodes, found, err := c.Get(startHash, 4)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("expected cache hit after Put")
	}
	if nodes != 197281 {
		t.Errorf("Get returned %d, want 197281", nodes)
	}
}

func TestCacheKeysAreDepthSpecific(t *testing.T) {
	c, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	defer c.Close()

	if err := c.Put(startHash, 3, 8902); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if _, found, err := c.Get(startHash, 4); err != nil {
		t.Fatalf("Get: %v", err)
	} else if found {
		t.Error("depth 4 should not be populated by a depth-3 Put")
	}
}
