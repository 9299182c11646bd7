package insights

import (
	"testing"
	"time"

	"tableflip.dev/loop/pkg/entry"
	"tableflip.dev/loop/pkg/mood"
)

func on(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 0, 0, 0, time.Local)
}

func mk(date time.Time, tokens ...string) *entry.Entry {
	return &entry.Entry{
		ID:         date.Format("20060102150405.000000000"),
		Date:       entry.Timestamp{Time: date},
		MoodTokens: tokens,
	}
}

func TestDominantMood(t *testing.T) {
	entries := []*entry.Entry{
		mk(on(2026, 1, 3), "😄"),
		mk(on(2026, 1, 2), "😄"),
		mk(on(2026, 1, 1), "😢"),
	}
	if got := DominantMood(entries); got != mood.Happy {
		t.Fatalf("expected happy, got %s", got)
	}
}

func TestDominantMoodEmpty(t *testing.T) {
	if got := DominantMood(nil); got != mood.Unknown {
		t.Fatalf("expected unknown, got %s", got)
	}
}

func TestDominantMoodTieBreaksCanonically(t *testing.T) {
	// One sad, one happy, in sad-first entry order: the tie must break by
	// canonical mood order, not entry order.
	entries := []*entry.Entry{
		mk(on(2026, 1, 2), "😢"),
		mk(on(2026, 1, 1), "😄"),
	}
	if got := DominantMood(entries); got != mood.Happy {
		t.Fatalf("expected happy on tie, got %s", got)
	}
}

func TestDistributionExactFractions(t *testing.T) {
	entries := []*entry.Entry{
		mk(on(2026, 1, 3), "😄"),
		mk(on(2026, 1, 2), "😄"),
		mk(on(2026, 1, 1), "😢"),
	}
	dist := Distribution(entries)
	if len(dist) != 2 {
		t.Fatalf("expected 2 moods, got %v", dist)
	}
	if dist[mood.Happy] != 200.0/3 {
		t.Fatalf("expected exactly 200/3, got %v", dist[mood.Happy])
	}
	if dist[mood.Sad] != 100.0/3 {
		t.Fatalf("expected exactly 100/3, got %v", dist[mood.Sad])
	}
}

func TestDistributionEmpty(t *testing.T) {
	dist := Distribution(nil)
	if len(dist) != 0 {
		t.Fatalf("expected empty map, got %v", dist)
	}
}

func TestDistributionCountsPrimaryOnly(t *testing.T) {
	// Secondary tokens carry no analytics weight.
	entries := []*entry.Entry{
		mk(on(2026, 1, 1), "😄", "😢", "😢"),
	}
	dist := Distribution(entries)
	if dist[mood.Happy] != 100 {
		t.Fatalf("expected happy 100%%, got %v", dist)
	}
	if _, ok := dist[mood.Sad]; ok {
		t.Fatalf("secondary tokens must not appear, got %v", dist)
	}
}

func TestMoodStreakStopsAtFirstMiss(t *testing.T) {
	entries := []*entry.Entry{
		mk(on(2026, 1, 4), "😄"),
		mk(on(2026, 1, 3), "😄"),
		mk(on(2026, 1, 2), "😢"),
		mk(on(2026, 1, 1), "😄"),
	}
	if got := MoodStreak(entries, mood.Happy); got != 2 {
		t.Fatalf("expected streak 2, got %d", got)
	}
	if got := MoodStreak(entries, mood.Sad); got != 0 {
		t.Fatalf("expected streak 0 when newest does not match, got %d", got)
	}
	if got := MoodStreak(nil, mood.Happy); got != 0 {
		t.Fatalf("expected streak 0 for empty entries, got %d", got)
	}
}

func TestMoodStreakUnknownBreaks(t *testing.T) {
	entries := []*entry.Entry{
		mk(on(2026, 1, 3), "😄"),
		mk(on(2026, 1, 2)), // no tokens, unknown
		mk(on(2026, 1, 1), "😄"),
	}
	if got := MoodStreak(entries, mood.Happy); got != 1 {
		t.Fatalf("expected unknown to break the streak, got %d", got)
	}
}

func TestLoggedDaysStreak(t *testing.T) {
	entries := []*entry.Entry{
		mk(on(2026, 1, 3), "😄"),
		mk(on(2026, 1, 3), "😌"), // same day counts once
		mk(on(2026, 1, 2), "😄"),
		mk(on(2026, 1, 1), "😄"),
		mk(on(2025, 12, 29), "😄"), // gap, chain breaks
	}
	if got := LoggedDaysStreak(entries); got != 3 {
		t.Fatalf("expected streak 3, got %d", got)
	}
	if got := LoggedDaysStreak(nil); got != 0 {
		t.Fatalf("expected 0 for empty entries, got %d", got)
	}
}

func TestWeeklyTimeline(t *testing.T) {
	entries := []*entry.Entry{
		mk(on(2026, 1, 5), "😌"),
	}
	days := WeeklyTimeline(entries, on(2026, 1, 7), 7)
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if !days[0].Date.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("expected oldest day Jan 1, got %v", days[0].Date)
	}
	if !days[6].Date.Equal(time.Date(2026, 1, 7, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("expected newest day Jan 7, got %v", days[6].Date)
	}
	for i, d := range days {
		if i == 4 {
			if !d.Logged || d.Mood != mood.Calm {
				t.Fatalf("expected Jan 5 calm, got %+v", d)
			}
			continue
		}
		if d.Logged {
			t.Fatalf("expected day %d absent, got %+v", i, d)
		}
		if d.Mood != mood.Unknown {
			t.Fatalf("absent day must read unknown, got %+v", d)
		}
	}
}

func TestWeeklyTimelineFirstEntryInGivenOrderWins(t *testing.T) {
	entries := []*entry.Entry{
		mk(on(2026, 1, 5), "😄"),
		mk(on(2026, 1, 5), "😢"),
	}
	days := WeeklyTimeline(entries, on(2026, 1, 5), 1)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if days[0].Mood != mood.Happy {
		t.Fatalf("first entry in given order must win, got %s", days[0].Mood)
	}
}

func TestWeeklyTimelineEmptyEntries(t *testing.T) {
	days := WeeklyTimeline(nil, on(2026, 1, 7), 7)
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	for _, d := range days {
		if d.Logged {
			t.Fatalf("expected all days absent, got %+v", d)
		}
	}
}
