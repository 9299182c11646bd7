package commands

import (
	"context"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/loop/pkg/commands/options"
	"tableflip.dev/loop/pkg/runner/get"
	"tableflip.dev/loop/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	out := &options.OutputOptions{}
	days := 0
	watch := false

	cmd := &cobra.Command{
		Use:     "get [days]",
		Aliases: []string{"list", "ls"},
		Short:   "List journal entries, newest first",
		Example: `
loop get
loop get 7
loop get --id=171dff69-f8b9-9dca
loop get --watch
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			d, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			days = d
			return cobra.MaximumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if watch {
				var stop context.CancelFunc
				ctx, stop = signal.NotifyContext(ctx, os.Interrupt)
				defer stop()
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				ID:          io.ID,
				Days:        days,
				Watch:       watch,
				Persistence: p,
			}
			err = s.Do(ctx)
			return out.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddIDArgs(cmd, io)
	options.AddOutputArg(cmd, out)
	cmd.Flags().BoolVar(&watch, "watch", false,
		"Stay running and re-list when the journal changes. Ctrl-C to stop.")

	topLevel.AddCommand(cmd)
}
