// Package insights computes derived mood statistics over a snapshot of
// journal entries. Every function is a pure function of its inputs: the
// package holds no state and may be called repeatedly as the underlying
// store changes, always against the snapshot List returned.
package insights

import (
	"sort"
	"time"

	"tableflip.dev/loop/pkg/entry"
	"tableflip.dev/loop/pkg/mood"
	"tableflip.dev/loop/pkg/timeutil"
)

// DominantMood returns the mood with the highest primary-mood occurrence
// count. Ties break by canonical mood order, never by entry order, so the
// result is reproducible for any permutation of the same snapshot.
func DominantMood(entries []*entry.Entry) mood.Mood {
	if len(entries) == 0 {
		return mood.Unknown
	}

	counts := primaryCounts(entries)
	best := mood.Unknown
	bestCount := -1
	for _, m := range mood.Canonical() {
		if c := counts[m]; c > bestCount {
			best = m
			bestCount = c
		}
	}
	return best
}

// Distribution returns, for every mood appearing at least once as an entry's
// primary mood, the exact percentage of entries it accounts for. No rounding
// is applied; display rounding is the caller's concern. An empty snapshot
// yields an empty map.
func Distribution(entries []*entry.Entry) map[mood.Mood]float64 {
	out := make(map[mood.Mood]float64)
	if len(entries) == 0 {
		return out
	}

	total := float64(len(entries))
	for m, c := range primaryCounts(entries) {
		if c == 0 {
			continue
		}
		out[m] = 100 * float64(c) / total
	}
	return out
}

// TimelineDay is one calendar day in a timeline: the day, whether anything
// was logged on it, and the representative mood when something was.
type TimelineDay struct {
	Date   time.Time
	Logged bool
	Mood   mood.Mood
}

// WeeklyTimeline produces exactly days consecutive local calendar days
// ending at ref (inclusive), oldest first. Each day takes the primary mood
// of the first entry in the given order that falls on it; days with no
// entry are marked not logged. Callers pass entries in the order they want
// first-match resolved (List's date-descending order picks the newest entry
// of each day).
func WeeklyTimeline(entries []*entry.Entry, ref time.Time, days int) []TimelineDay {
	if days <= 0 {
		return nil
	}

	out := make([]TimelineDay, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := timeutil.StartOfDay(ref.AddDate(0, 0, -i))
		td := TimelineDay{Date: day}
		for _, e := range entries {
			if e == nil {
				continue
			}
			if e.Date.SameDay(day) {
				td.Logged = true
				td.Mood = e.Mood()
				break
			}
		}
		if !td.Logged {
			td.Mood = mood.Unknown
		}
		out = append(out, td)
	}
	return out
}

// MoodStreak counts consecutive entries, newest first, whose primary mood
// equals target. The streak stops at the first entry with any other mood,
// unknown included.
func MoodStreak(entries []*entry.Entry, target mood.Mood) int {
	sorted := sortedByDateDesc(entries)
	streak := 0
	for _, e := range sorted {
		if e.Mood() != target {
			break
		}
		streak++
	}
	return streak
}

// LoggedDaysStreak counts consecutive distinct local calendar days, ending
// at the most recent entry's day, on which at least one entry was logged.
// Multiple entries on one day count once; the chain breaks at the first gap
// of more than one day.
func LoggedDaysStreak(entries []*entry.Entry) int {
	seen := make(map[time.Time]struct{})
	days := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		day := timeutil.StartOfDay(e.Date.Time)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 1
	current := days[0]
	for _, day := range days[1:] {
		if !timeutil.StartOfDay(current.AddDate(0, 0, -1)).Equal(day) {
			break
		}
		streak++
		current = day
	}
	return streak
}

func primaryCounts(entries []*entry.Entry) map[mood.Mood]int {
	counts := make(map[mood.Mood]int)
	for _, e := range entries {
		if e == nil {
			continue
		}
		counts[e.Mood()]++
	}
	return counts
}

func sortedByDateDesc(entries []*entry.Entry) []*entry.Entry {
	sorted := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			sorted = append(sorted, e)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Time.After(sorted[j].Date.Time)
	})
	return sorted
}
