package printers

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/loop/pkg/insights"
	"tableflip.dev/loop/pkg/mood"
	"tableflip.dev/loop/pkg/timeutil"
)

const barWidth = 24

// Timeline renders one row per calendar day, oldest first, with the day's
// mood glyph or a faint absent marker.
func (pp *PrettyPrint) Timeline(days []insights.TimelineDay) {
	if len(days) == 0 {
		pp.none()
		return
	}

	f := color.New(color.Faint, color.Italic)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, d := range days {
		label := fmt.Sprintf("%s %s", timeutil.DayLabel(d.Date.Weekday()), d.Date.Format("01-02"))
		if !d.Logged {
			tbl.AddRow(label, f.Sprint("·"), f.Sprint("no entry"))
			continue
		}
		tbl.AddRow(label, d.Mood.Emoji(), d.Mood.Title())
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Distribution renders a horizontal bar per mood, largest share first,
// canonical order on equal shares.
func (pp *PrettyPrint) Distribution(dist map[mood.Mood]float64) {
	if len(dist) == 0 {
		pp.none()
		return
	}

	moods := make([]mood.Mood, 0, len(dist))
	for _, m := range mood.Canonical() {
		if _, ok := dist[m]; ok {
			moods = append(moods, m)
		}
	}
	sort.SliceStable(moods, func(i, j int) bool {
		return dist[moods[i]] > dist[moods[j]]
	})

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, m := range moods {
		pct := dist[m]
		filled := int(pct/100*barWidth + 0.5)
		if filled > barWidth {
			filled = barWidth
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		tbl.AddRow(m.Emoji(), m.Title(), bar, fmt.Sprintf("%.0f%%", pct))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// StreakCard prints a single labeled streak count.
func (pp *PrettyPrint) StreakCard(title string, days int) {
	t := color.New()
	c := color.New(color.Faint)
	_, _ = t.Printf("%s: %d", title, days)
	switch days {
	case 1:
		_, _ = c.Println(" day")
	default:
		_, _ = c.Println(" days")
	}
}

// Summary prints the headline cards: entry count, most frequent mood, best
// weekday.
func (pp *PrettyPrint) Summary(s insights.Summary) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Entries", "📝", fmt.Sprintf("%d total", s.Total))
	tbl.AddRow("Average", s.MostFrequent.Emoji(), s.MostFrequent.Title())
	if s.HasBestWeekday {
		tbl.AddRow("Best Day", "🏆", s.BestWeekday.String())
	} else {
		tbl.AddRow("Best Day", "🏆", "N/A")
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// WeekHeader prints the seven weekday labels starting at the configured
// week start.
func (pp *PrettyPrint) WeekHeader(start time.Weekday) {
	f := color.New(color.Faint)
	_, _ = f.Println(strings.Join(timeutil.WeekdayLabels(start), " "))
}
