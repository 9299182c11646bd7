package store

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
)

// BlobStore holds large media payloads (photos) outside the entry records.
// Blobs are content addressed: the ref is the sha256 of the bytes, so the
// same photo attached twice is stored once and a record only ever carries
// the small ref string.
type BlobStore interface {
	Put(data []byte) (string, error)
	Get(ref string) ([]byte, error)
	Remove(ref string) error
}

const blobDir = "blobs"

type blobStore struct {
	dir string
}

func newBlobStore(basePath string) *blobStore {
	return &blobStore{dir: filepath.Join(basePath, blobDir)}
}

func (b *blobStore) path(ref string) string {
	prefix := ref
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	return filepath.Join(b.dir, prefix, ref)
}

func (b *blobStore) Put(data []byte) (string, error) {
	sum := sha256.Sum256(data)
	ref := fmt.Sprintf("%x", sum)

	path := b.path(ref)
	if _, err := os.Stat(path); err == nil {
		return ref, nil // already stored, content addressed
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", storagef("ensure blob directory: %v", err)
	}

	// Write-then-rename so a crash mid-write never leaves a ref resolving
	// to truncated bytes.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", storagef("write blob %s: %v", ref, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", storagef("commit blob %s: %v", ref, err)
	}
	return ref, nil
}

func (b *blobStore) Get(ref string) ([]byte, error) {
	if ref == "" {
		return nil, ErrBlobNotFound
	}
	data, err := os.ReadFile(b.path(ref))
	if err != nil {
		if os.IsNotExist(err) {
			// Refs are opaque and the bytes may be gone; missing blobs
			// degrade gracefully rather than failing the record read.
			return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, ref)
		}
		return nil, storagef("read blob %s: %v", ref, err)
	}
	return data, nil
}

func (b *blobStore) Remove(ref string) error {
	if ref == "" {
		return nil
	}
	if err := os.Remove(b.path(ref)); err != nil && !os.IsNotExist(err) {
		return storagef("remove blob %s: %v", ref, err)
	}
	return nil
}
