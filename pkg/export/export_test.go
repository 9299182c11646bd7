package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"tableflip.dev/loop/pkg/entry"
)

func mk(day int, note string, tokens ...string) *entry.Entry {
	return &entry.Entry{
		ID:         "id",
		Date:       entry.Timestamp{Time: time.Date(2026, 1, day, 9, 30, 0, 0, time.UTC)},
		MoodTokens: tokens,
		Note:       note,
	}
}

func TestCSVHeader(t *testing.T) {
	out := CSV(nil)
	lines := strings.Split(out, "\n")
	if lines[0] != "date,moodEmojis,note" {
		t.Fatalf("expected exact header, got %q", lines[0])
	}
}

func TestCSVQuoteDoublingRoundTrip(t *testing.T) {
	note := `she said "hello" twice`
	out := CSV([]*entry.Entry{mk(5, note, "😄", "😌")})

	if !strings.Contains(out, `""hello""`) {
		t.Fatalf("expected doubled quotes in output, got %q", out)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header and one row, got %d", len(records))
	}
	row := records[1]
	if row[0] != "2026-01-05T09:30:00Z" {
		t.Fatalf("expected RFC3339 UTC date, got %q", row[0])
	}
	if row[1] != "😄 😌" {
		t.Fatalf("expected space-joined tokens, got %q", row[1])
	}
	if row[2] != note {
		t.Fatalf("note must round trip, got %q", row[2])
	}
}

func TestCSVDeterministicOrder(t *testing.T) {
	entries := []*entry.Entry{mk(3, "c"), mk(1, "a"), mk(2, "b")}
	first := CSV(entries)
	second := CSV(entries)
	if first != second {
		t.Fatalf("csv must be deterministic for the same snapshot")
	}
	lines := strings.Split(strings.TrimRight(first, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got %d", len(lines))
	}
	// Rows follow the given order, no re-sorting here.
	if !strings.HasSuffix(lines[1], ",c") {
		t.Fatalf("expected first given entry first, got %q", lines[1])
	}
}

// mkLocal pins the date in the local calendar, which is what page dates
// render in.
func mkLocal(day int, note string, tokens ...string) *entry.Entry {
	return &entry.Entry{
		ID:         "id",
		Date:       entry.Timestamp{Time: time.Date(2026, 1, day, 12, 0, 0, 0, time.Local)},
		MoodTokens: tokens,
		Note:       note,
	}
}

func TestPagesOnePerEntry(t *testing.T) {
	e := mkLocal(5, "beach day", "😄")
	e.PhotoRef = "ab12"
	pages := Pages([]*entry.Entry{e, mkLocal(4, "quiet", "😌")})

	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	p := pages[0]
	if p.Moods != "😄" {
		t.Fatalf("unexpected moods: %q", p.Moods)
	}
	if p.Date != "Jan 5, 2026" {
		t.Fatalf("unexpected date: %q", p.Date)
	}
	if p.Note != "beach day" || p.PhotoRef != "ab12" {
		t.Fatalf("unexpected page: %+v", p)
	}
	if p.Theme.Start == "" || p.Theme.End == "" {
		t.Fatalf("page must carry the mood theme, got %+v", p.Theme)
	}
	if pages[1].Theme == pages[0].Theme {
		t.Fatalf("different moods must produce different themes")
	}
}

func TestPagesUnknownMoodFallback(t *testing.T) {
	pages := Pages([]*entry.Entry{mkLocal(5, "untagged")})
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if pages[0].Theme.Image != "default" {
		t.Fatalf("unknown mood must fall back to the default image, got %+v", pages[0].Theme)
	}
}

func TestNewDocumentMetadata(t *testing.T) {
	doc := NewDocument(nil)
	if doc.Creator != DocumentCreator || doc.Author != DocumentAuthor {
		t.Fatalf("unexpected metadata: %+v", doc)
	}
	if len(doc.Pages) != 0 {
		t.Fatalf("expected no pages, got %d", len(doc.Pages))
	}
}
