package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"reef/internal/diag"
	"reef/internal/source"
)

// Bump when CachedResult changes shape.
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash.
type Digest [32]byte

// HashContent computes the cache key for source bytes.
func HashContent(content []byte) Digest {
	return sha256.Sum256(content)
}

// CachedDiagnostic is one diagnostic flattened for the cache. Spans are
// stored as raw byte offsets; the FileID is rebound on load.
type CachedDiagnostic struct {
	Code     uint16
	Severity uint8
	Start    uint32
	End      uint32
	Message  string
}

// CachedResult stores the outcome of parsing one file, keyed by content
// hash, so `reef check` can skip reparsing unchanged files.
type CachedResult struct {
	Schema      uint16
	Path        string
	Statements  int
	Diagnostics []CachedDiagnostic
}

// DiskCache stores parse results per content hash on disk.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes a disk cache under the XDG cache dir.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "parse")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".msgpack")
}

// Load returns the cached result for key, or (nil, false) on miss, schema
// mismatch, or corruption.
func (c *DiskCache) Load(key Digest) (*CachedResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	var payload CachedResult
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}
	return &payload, true
}

// Store writes the result for key. Writes go through a temp file plus
// rename so concurrent readers never see a torn payload.
func (c *DiskCache) Store(key Digest, result *CachedResult) error {
	if result == nil {
		return errors.New("nil cache payload")
	}
	result.Schema = diskCacheSchemaVersion

	data, err := msgpack.Marshal(result)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	tmp, err := os.CreateTemp(c.dir, "payload-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, c.pathFor(key))
}

// CacheResult flattens a parse result for storage.
func CacheResult(res *ParseResult) *CachedResult {
	out := &CachedResult{
		Path:       res.Path,
		Statements: len(res.Block.Statements),
	}
	for _, d := range res.Bag.Items() {
		out.Diagnostics = append(out.Diagnostics, CachedDiagnostic{
			Code:     uint16(d.Code),
			Severity: uint8(d.Severity),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		})
	}
	return out
}

// RestoreBag rebinds cached diagnostics onto a freshly registered file.
func (r *CachedResult) RestoreBag(fileID source.FileID, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	for _, cd := range r.Diagnostics {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary:  source.Span{File: fileID, Start: cd.Start, End: cd.End},
		})
	}
	return bag
}
