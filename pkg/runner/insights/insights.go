package insights

import (
	"context"
	"errors"
	"fmt"
	"time"

	stats "tableflip.dev/loop/pkg/insights"
	"tableflip.dev/loop/pkg/mood"
	"tableflip.dev/loop/pkg/printers"
	"tableflip.dev/loop/pkg/store"
)

// Insights computes and prints mood analytics over the journal: summary
// cards, the day-by-day mood timeline, the distribution bars, and streaks.
type Insights struct {
	Days      int
	WeekStart time.Weekday

	Persistence store.Persistence
}

func (n *Insights) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not compute insights, no persistence")
	}

	all, err := n.Persistence.List(ctx)
	if err != nil {
		return err
	}

	days := n.Days
	if days <= 0 {
		days = 7
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	pp.Title("This Week")
	pp.Summary(stats.Summarize(all))
	pp.NewLine()

	pp.Title("Mood Timeline")
	pp.WeekHeader(n.WeekStart)
	pp.Timeline(stats.WeeklyTimeline(all, time.Now(), days))
	pp.NewLine()

	pp.Title("Mood Distribution")
	pp.Distribution(stats.Distribution(all))
	pp.NewLine()

	pp.Title("Streaks")
	pp.StreakCard("Happy Streak", stats.MoodStreak(all, mood.Happy))
	pp.StreakCard("Calm Streak", stats.MoodStreak(all, mood.Calm))
	pp.StreakCard("Logged Days", stats.LoggedDaysStreak(all))
	pp.NewLine()

	return nil
}
