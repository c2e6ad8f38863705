package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"pyfieldlint/internal/diag"
	"pyfieldlint/internal/source"
)

// Increment when the payload format changes.
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash used as a cache key.
type Digest = [32]byte

// DiskCache persists per-file diagnostics keyed by content hash, so
// unchanged files are not re-analyzed across runs. Safe for concurrent
// use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the cached analysis outcome for one file content hash.
type DiskPayload struct {
	Schema uint16
	Diags  []CachedDiag
}

// CachedDiag is one diagnostic with file-relative offsets; the FileID is
// rebound on restore since it differs per run.
type CachedDiag struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
}

// OpenDiskCache initializes the disk cache at the standard location
// ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a disk cache rooted at an explicit
// directory, used by tests.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Put serializes and writes a payload, replacing any existing entry
// atomically.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload if present. A missing entry is (false, nil).
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// restoreFromCache rebuilds the bag from a cached payload when the
// file's content hash has an entry of the current schema.
func restoreFromCache(c *DiskCache, file *source.File, bag *diag.Bag) bool {
	var payload DiskPayload
	ok, err := c.Get(file.Hash, &payload)
	if err != nil || !ok || payload.Schema != diskCacheSchemaVersion {
		return false
	}
	for _, cd := range payload.Diags {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary: source.Span{
				File:  file.ID,
				Start: cd.Start,
				End:   cd.End,
			},
		})
	}
	return true
}

// storeToCache persists the bag for the file's content hash. Cache write
// failures are ignored; the analysis result is already in hand.
func storeToCache(c *DiskCache, file *source.File, bag *diag.Bag) {
	items := bag.Items()
	payload := DiskPayload{
		Schema: diskCacheSchemaVersion,
		Diags:  make([]CachedDiag, 0, len(items)),
	}
	for _, d := range items {
		payload.Diags = append(payload.Diags, CachedDiag{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		})
	}
	_ = c.Put(file.Hash, &payload)
}
