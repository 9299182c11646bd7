package options

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// InsightsOptions
type InsightsOptions struct {
	Window    string
	WeekStart string
}

func AddInsightsArgs(cmd *cobra.Command, o *InsightsOptions) {
	cmd.Flags().StringVarP(&o.Window, "window", "w", "",
		`Analytics window, example: "1w", "14d". Defaults to one week.`)
	cmd.Flags().StringVar(&o.WeekStart, "week-start", "",
		`Weekday labels start on "sunday" or "monday". Overrides the configured value.`)
}

// GetWeekStart resolves the flag against the configured fallback.
func (o *InsightsOptions) GetWeekStart(fallback time.Weekday) time.Weekday {
	switch strings.ToLower(strings.TrimSpace(o.WeekStart)) {
	case "monday":
		return time.Monday
	case "sunday":
		return time.Sunday
	default:
		return fallback
	}
}
