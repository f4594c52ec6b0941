package driver

import (
	"os"
	"testing"

	"reef/internal/diag"
	"reef/internal/source"
)

func openTestCache(t *testing.T) *DiskCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("reef")
	if err != nil {
		t.Fatal(err)
	}
	return cache
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache := openTestCache(t)

	content := []byte("let x = oops\n")
	res := ParseBytes("round.rf", content, ParseOptions{})
	if !res.Bag.HasErrors() {
		t.Fatalf("fixture must produce diagnostics")
	}

	key := HashContent(content)
	if err := cache.Store(key, CacheResult(res)); err != nil {
		t.Fatal(err)
	}

	got, ok := cache.Load(key)
	if !ok {
		t.Fatalf("miss after store")
	}
	if got.Path != "round.rf" {
		t.Fatalf("path = %q", got.Path)
	}
	if got.Statements != len(res.Block.Statements) {
		t.Fatalf("statements = %d, want %d", got.Statements, len(res.Block.Statements))
	}
	if len(got.Diagnostics) != res.Bag.Len() {
		t.Fatalf("diagnostics = %d, want %d", len(got.Diagnostics), res.Bag.Len())
	}

	want := res.Bag.First()
	cd := got.Diagnostics[0]
	if diag.Code(cd.Code) != want.Code || cd.Start != want.Primary.Start || cd.End != want.Primary.End {
		t.Fatalf("cached diagnostic = %+v, want %+v", cd, want)
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache := openTestCache(t)
	if _, ok := cache.Load(HashContent([]byte("never stored"))); ok {
		t.Fatalf("hit for unstored key")
	}
}

func TestDiskCacheKeyTracksContent(t *testing.T) {
	a := HashContent([]byte("let x = 1"))
	b := HashContent([]byte("let x = 2"))
	if a == b {
		t.Fatalf("distinct content hashed to the same key")
	}
	if a != HashContent([]byte("let x = 1")) {
		t.Fatalf("same content hashed to different keys")
	}
}

func TestRestoreBagRebindsFile(t *testing.T) {
	cache := openTestCache(t)

	content := []byte("$nope")
	res := ParseBytes("r.rf", content, ParseOptions{})
	key := HashContent(content)
	if err := cache.Store(key, CacheResult(res)); err != nil {
		t.Fatal(err)
	}

	got, ok := cache.Load(key)
	if !ok {
		t.Fatalf("miss after store")
	}

	// a later session registers the same file under a fresh id
	fs := source.NewFileSet()
	fs.Add("other.rf", []byte("padding so ids differ"), 0)
	id := fs.Add("r.rf", content, 0)

	bag := got.RestoreBag(id, 100)
	if bag.Len() != res.Bag.Len() {
		t.Fatalf("restored %d diagnostics, want %d", bag.Len(), res.Bag.Len())
	}
	for _, d := range bag.Items() {
		if d.Primary.File != id {
			t.Fatalf("diagnostic bound to file %d, want %d", d.Primary.File, id)
		}
	}
}

func TestDiskCacheIgnoresCorruptPayload(t *testing.T) {
	cache := openTestCache(t)

	key := HashContent([]byte("x"))
	if err := os.WriteFile(cache.pathFor(key), []byte("not msgpack at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Load(key); ok {
		t.Fatalf("corrupt payload treated as a hit")
	}
}
