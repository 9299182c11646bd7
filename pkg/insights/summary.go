package insights

import (
	"time"

	"tableflip.dev/loop/pkg/entry"
	"tableflip.dev/loop/pkg/mood"
)

// Summary is the headline card data for an insights view.
type Summary struct {
	Total int

	// MostFrequent counts every classified token across all entries, not
	// just primaries. This is the one surface that weights secondary
	// tokens; all other statistics use the primary mood only.
	MostFrequent mood.Mood

	// BestWeekday is the weekday with the most entries. HasBestWeekday is
	// false on an empty snapshot.
	BestWeekday    time.Weekday
	HasBestWeekday bool
}

func Summarize(entries []*entry.Entry) Summary {
	s := Summary{Total: 0, MostFrequent: mood.Unknown}

	tokenCounts := make(map[mood.Mood]int)
	weekdayCounts := make(map[time.Weekday]int)
	for _, e := range entries {
		if e == nil {
			continue
		}
		s.Total++
		weekdayCounts[e.Date.Local().Weekday()]++
		for _, tok := range e.MoodTokens {
			if m := mood.Classify(tok); m != mood.Unknown {
				tokenCounts[m]++
			}
		}
	}

	best := -1
	for _, m := range mood.Canonical() {
		if c := tokenCounts[m]; c > best && c > 0 {
			s.MostFrequent = m
			best = c
		}
	}

	if s.Total > 0 {
		bestCount := -1
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if c := weekdayCounts[wd]; c > bestCount {
				s.BestWeekday = wd
				s.HasBestWeekday = true
				bestCount = c
			}
		}
	}
	return s
}
