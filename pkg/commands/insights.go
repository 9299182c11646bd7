package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/loop/pkg/commands/options"
	"tableflip.dev/loop/pkg/runner/insights"
	"tableflip.dev/loop/pkg/store"
	"tableflip.dev/loop/pkg/timeutil"
)

func addInsights(topLevel *cobra.Command) {
	no := &options.InsightsOptions{}
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "insights",
		Aliases: []string{"stats"},
		Short:   "Show mood analytics over the journal",
		Example: `
loop insights
loop insights -w 2w
loop insights --week-start=monday
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, _, err := timeutil.ParseWindow(no.Window)
			if err != nil {
				return err
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			s := insights.Insights{
				Days:        timeutil.WindowDays(window),
				WeekStart:   no.GetWeekStart(cfg.WeekStart()),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return out.HandleError(err)
		},
	}

	options.AddInsightsArgs(cmd, no)
	options.AddOutputArg(cmd, out)

	topLevel.AddCommand(cmd)
}
