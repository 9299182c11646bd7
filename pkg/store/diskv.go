package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/loop/pkg/entry"
)

// Persistence is the durable CRUD contract over journal entries. The default
// read order is date descending (newest first). Every successful mutation is
// flushed to the durable medium before the call (or its completion signal)
// returns, so a create observed complete is visible to the next List.
type Persistence interface {
	Create(ctx context.Context, d entry.Draft) (*entry.Entry, error)
	Get(ctx context.Context, id string) (*entry.Entry, error)
	Update(ctx context.Context, id string, p entry.Patch) (*entry.Entry, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entry.Entry, error)

	// CreateAsync and DeleteAsync run the corresponding mutation off the
	// caller's control flow. The effect is observable via List strictly
	// after a value arrives on the returned channel.
	CreateAsync(ctx context.Context, d entry.Draft) <-chan CreateResult
	DeleteAsync(ctx context.Context, id string) <-chan error

	Watch(ctx context.Context) (<-chan Event, error)
	Blobs() BlobStore
}

// CreateResult is the completion signal of CreateAsync.
type CreateResult struct {
	Entry *entry.Entry
	Err   error
}

// Load creates a Persistence backed by diskv using the provided config.
// A nil config falls back to LoadConfig.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	// Records and blobs live in sibling trees so a key scan never walks
	// media payloads. TempDir sits on the same partition, so every record
	// write lands in a temp file and renames into place; a write that dies
	// partway never clobbers the prior record.
	basePath := cfg.BasePath()
	entriesPath := filepath.Join(basePath, entriesDir)
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          entriesPath,
			TempDir:           filepath.Join(basePath, tmpDir),
			AdvancedTransform: idToPathTransform,
			InverseTransform:  pathToIDTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: entriesPath,
		blobs:    newBlobStore(basePath),
		locks:    map[string]*sync.Mutex{},
	}, nil
}

const (
	entriesDir = "entries"
	tmpDir     = "tmp"
)

type persistence struct {
	d        *diskv.Diskv
	basePath string
	blobs    *blobStore

	// locks serializes mutations per entry id so concurrent update/delete on
	// the same record never interleave partially. Different ids proceed
	// concurrently.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (p *persistence) lock(id string) func() {
	p.mu.Lock()
	l, ok := p.locks[id]
	if !ok {
		l = &sync.Mutex{}
		p.locks[id] = l
	}
	p.mu.Unlock()
	l.Lock()
	return l.Unlock
}

func (p *persistence) Create(ctx context.Context, d entry.Draft) (*entry.Entry, error) {
	e := &entry.Entry{
		ID:           uuid.NewString(),
		Date:         entry.Timestamp{Time: time.Now()},
		MoodTokens:   entry.NormalizeTokens(d.MoodTokens),
		Note:         d.Note,
		PhotoRef:     d.PhotoRef,
		VoiceNoteRef: d.VoiceNoteRef,
		LinkURL:      d.LinkURL,
	}
	if d.Date != nil {
		e.Date = entry.Timestamp{Time: *d.Date}
	}

	unlock := p.lock(e.ID)
	defer unlock()
	if err := p.write(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (p *persistence) Get(ctx context.Context, id string) (*entry.Entry, error) {
	return p.read(id)
}

func (p *persistence) Update(ctx context.Context, id string, patch entry.Patch) (*entry.Entry, error) {
	unlock := p.lock(id)
	defer unlock()

	current, err := p.read(id)
	if err != nil {
		return nil, err
	}
	next := current.Apply(patch)
	if err := p.write(next); err != nil {
		return nil, err
	}
	return next, nil
}

func (p *persistence) Delete(ctx context.Context, id string) error {
	unlock := p.lock(id)
	defer unlock()

	if err := p.d.Erase(id); err != nil {
		if os.IsNotExist(err) {
			// Idempotent: deleting an id that was never created or is
			// already gone is success.
			return nil
		}
		return storagef("erase %s: %v", id, err)
	}
	return nil
}

func (p *persistence) List(ctx context.Context) ([]*entry.Entry, error) {
	all := make([]*entry.Entry, 0)
	for key := range p.d.Keys(ctx.Done()) {
		e, err := p.read(key)
		if err != nil {
			if IsNotFound(err) {
				continue // deleted between key scan and read
			}
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	sortEntries(all)
	return all, nil
}

func (p *persistence) CreateAsync(ctx context.Context, d entry.Draft) <-chan CreateResult {
	done := make(chan CreateResult, 1)
	go func() {
		defer close(done)
		e, err := p.Create(ctx, d)
		done <- CreateResult{Entry: e, Err: err}
	}()
	return done
}

func (p *persistence) DeleteAsync(ctx context.Context, id string) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- p.Delete(ctx, id)
	}()
	return done
}

func (p *persistence) Blobs() BlobStore {
	return p.blobs
}

// read returns a fresh copy of the stored record; callers own the result and
// later writes never mutate an already-returned entry.
func (p *persistence) read(id string) (*entry.Entry, error) {
	val, err := p.d.Read(id)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, storagef("read %s: %v", id, err)
	}
	e := &entry.Entry{}
	if err := json.Unmarshal(val, e); err != nil {
		return nil, storagef("decode %s: %v", id, err)
	}
	if e.ID == "" {
		// Imported records may lack the id field; the key is authoritative.
		e.ID = id
	}
	return e, nil
}

// write marshals before touching the medium so an encode failure leaves the
// prior record untouched, then streams the bytes with sync so they are
// flushed to the medium before the temp file renames into place and the
// call returns.
func (p *persistence) write(e *entry.Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return storagef("encode %s: %v", e.ID, err)
	}
	if err := p.d.WriteStream(e.ID, bytes.NewReader(data), true); err != nil {
		return storagef("write %s: %v", e.ID, err)
	}
	return nil
}

func sortEntries(entries []*entry.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		left := entries[i]
		right := entries[j]
		if left == nil || right == nil {
			return left != nil
		}
		lt := left.Date.Time
		rt := right.Date.Time
		switch {
		case lt.IsZero() && rt.IsZero():
			return left.ID < right.ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return left.ID < right.ID
			}
			return lt.After(rt)
		}
	})
}

// idToPathTransform spreads records across two-character prefix directories
// so a long-lived journal does not pile thousands of files into one dir.
func idToPathTransform(id string) *diskv.PathKey {
	prefix := id
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	return &diskv.PathKey{
		Path:     []string{prefix},
		FileName: id,
	}
}

func pathToIDTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
