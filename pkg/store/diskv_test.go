package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"tableflip.dev/loop/pkg/entry"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func (t testConfig) WeekStart() time.Weekday {
	return time.Sunday
}

func load(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestCreateGetRoundTrip(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	then := time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)
	created, err := p.Create(ctx, entry.Draft{
		Date:         &then,
		MoodTokens:   []string{"😄", "calm"},
		Note:         "long walk",
		VoiceNoteRef: "voice/abc.m4a",
		LinkURL:      "https://example.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}

	got, err := p.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected id %s, got %s", created.ID, got.ID)
	}
	if !got.Date.Equal(then) {
		t.Fatalf("expected date %v, got %v", then, got.Date.Time)
	}
	if len(got.MoodTokens) != 2 || got.MoodTokens[0] != "😄" {
		t.Fatalf("unexpected tokens: %v", got.MoodTokens)
	}
	if got.Note != "long walk" || got.VoiceNoteRef != "voice/abc.m4a" || got.LinkURL != "https://example.com" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestCreateDefaultsDate(t *testing.T) {
	p := load(t)
	before := time.Now()
	created, err := p.Create(context.Background(), entry.Draft{MoodTokens: []string{"😄"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Date.Before(before.Add(-time.Second)) {
		t.Fatalf("expected date defaulted to now, got %v", created.Date.Time)
	}
}

func TestGetMissing(t *testing.T) {
	p := load(t)
	if _, err := p.Get(context.Background(), "nope"); !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdatePatchesOnlySuppliedFields(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	created, err := p.Create(ctx, entry.Draft{
		MoodTokens: []string{"😢"},
		Note:       "rough day",
		LinkURL:    "https://example.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	note := "better by evening"
	tokens := []string{"😌"}
	updated, err := p.Update(ctx, created.ID, entry.Patch{
		Note:       &note,
		MoodTokens: &tokens,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Note != note {
		t.Fatalf("expected patched note, got %q", updated.Note)
	}
	if len(updated.MoodTokens) != 1 || updated.MoodTokens[0] != "😌" {
		t.Fatalf("expected patched tokens, got %v", updated.MoodTokens)
	}
	if updated.LinkURL != "https://example.com" {
		t.Fatalf("unsupplied field must survive, got %q", updated.LinkURL)
	}
	if updated.ID != created.ID {
		t.Fatalf("id must be immutable")
	}

	got, err := p.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Note != note {
		t.Fatalf("update not durable, got %q", got.Note)
	}
}

func TestUpdateMissing(t *testing.T) {
	p := load(t)
	note := "whatever"
	if _, err := p.Update(context.Background(), "nope", entry.Patch{Note: &note}); !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	created, err := p.Create(ctx, entry.Draft{MoodTokens: []string{"😄"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := p.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	// Again, and for an id that never existed.
	if err := p.Delete(ctx, created.ID); err != nil {
		t.Fatalf("second delete must succeed: %v", err)
	}
	if err := p.Delete(ctx, "never-created"); err != nil {
		t.Fatalf("deleting unknown id must succeed: %v", err)
	}

	all, err := p.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(all))
	}
}

func TestListDateDescending(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	for _, day := range []int{2, 5, 3} {
		on := time.Date(2026, 1, day, 12, 0, 0, 0, time.Local)
		if _, err := p.Create(ctx, entry.Draft{Date: &on, MoodTokens: []string{"😄"}}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := p.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Date.After(all[i-1].Date.Time) {
			t.Fatalf("expected date-descending order, got %v before %v",
				all[i-1].Date.Time, all[i].Date.Time)
		}
	}
}

func TestListIsSnapshot(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	created, err := p.Create(ctx, entry.Draft{MoodTokens: []string{"😄"}, Note: "before"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := p.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	note := "after"
	if _, err := p.Update(ctx, created.ID, entry.Patch{Note: &note}); err != nil {
		t.Fatalf("update: %v", err)
	}

	// The already-returned snapshot must not see the later mutation.
	if first[0].Note != "before" {
		t.Fatalf("snapshot mutated, got %q", first[0].Note)
	}
}

func TestListIdempotentWithoutMutation(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		on := time.Date(2026, 1, i+1, 12, 0, 0, 0, time.Local)
		if _, err := p.Create(ctx, entry.Draft{Date: &on, MoodTokens: []string{"😄"}}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	first, err := p.List(ctx)
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	second, err := p.List(ctx)
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("expected identical lengths, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("expected identical order, got %s and %s at %d",
				first[i].ID, second[i].ID, i)
		}
	}
}

func TestCreateAsyncReadAfterWrite(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	res := <-p.CreateAsync(ctx, entry.Draft{MoodTokens: []string{"😄"}, Note: "async"})
	if res.Err != nil {
		t.Fatalf("create async: %v", res.Err)
	}

	// Completion observed, so the entry must be visible to the next list.
	all, err := p.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 || all[0].ID != res.Entry.ID {
		t.Fatalf("expected created entry visible after completion, got %v", all)
	}
}

func TestDeleteAsyncReadAfterWrite(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	created, err := p.Create(ctx, entry.Draft{MoodTokens: []string{"😄"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := <-p.DeleteAsync(ctx, created.ID); err != nil {
		t.Fatalf("delete async: %v", err)
	}

	all, err := p.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected entry gone after completion, got %d", len(all))
	}
}

// failingReader yields a few bytes and then errors, the shape of a medium
// dying partway through a record write.
type failingReader struct {
	data []byte
}

func (r *failingReader) Read(b []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, errors.New("medium failure")
	}
	n := copy(b, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestFailedWriteLeavesPriorRecord(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	created, err := p.Create(ctx, entry.Draft{MoodTokens: []string{"😄"}, Note: "keep me"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Drive a write at the same key that dies after a few bytes. The temp
	// file takes the damage; the stored record must not.
	inner := p.(*persistence)
	if err := inner.d.WriteStream(created.ID, &failingReader{data: []byte("ruin")}, false); err == nil {
		t.Fatalf("expected the interrupted write to fail")
	}

	got, err := p.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("prior record must survive a failed write: %v", err)
	}
	if got.Note != "keep me" {
		t.Fatalf("prior record corrupted: %+v", got)
	}
}

func TestConcurrentSameIDUpdates(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	created, err := p.Create(ctx, entry.Draft{
		MoodTokens: []string{"😄"},
		Note:       "v00",
		LinkURL:    "v00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var wg sync.WaitGroup
	for i := 1; i <= 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v := fmt.Sprintf("v%02d", i)
			if _, err := p.Update(ctx, created.ID, entry.Patch{Note: &v, LinkURL: &v}); err != nil {
				t.Errorf("update: %v", err)
			}
		}(i)
	}
	wg.Wait()

	got, err := p.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	// Each patch sets both fields to the same value, so any mismatch means
	// two writers interleaved partially.
	if got.Note != got.LinkURL {
		t.Fatalf("interleaved patch application: note %q link %q", got.Note, got.LinkURL)
	}
}

func TestConcurrentUpdateDeleteSameID(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	created, err := p.Create(ctx, entry.Draft{
		MoodTokens: []string{"😄"},
		Note:       "v00",
		LinkURL:    "v00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v := fmt.Sprintf("v%02d", i)
			if _, err := p.Update(ctx, created.ID, entry.Patch{Note: &v, LinkURL: &v}); err != nil && !IsNotFound(err) {
				t.Errorf("update: %v", err)
			}
		}(i)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := p.Delete(ctx, created.ID); err != nil {
			t.Errorf("delete: %v", err)
		}
	}()
	wg.Wait()

	got, err := p.Get(ctx, created.ID)
	if err != nil {
		if !IsNotFound(err) {
			t.Fatalf("get: %v", err)
		}
		return // the delete landed last, nothing left to check
	}
	if got.Note != got.LinkURL {
		t.Fatalf("interleaved patch application: note %q link %q", got.Note, got.LinkURL)
	}
}

func TestReloadSameBasePath(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	ctx := context.Background()

	created, err := p.Create(ctx, entry.Draft{MoodTokens: []string{"😄"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// A second handle over the same path reads the same records: the store
	// is plain files, not process state.
	p2, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("reload persistence: %v", err)
	}
	got, err := p2.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get from second handle: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected %s, got %s", created.ID, got.ID)
	}
}
