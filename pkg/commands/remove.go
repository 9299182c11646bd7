package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/loop/pkg/commands/options"
	"tableflip.dev/loop/pkg/runner/remove"
	"tableflip.dev/loop/pkg/store"
)

func addRemove(topLevel *cobra.Command) {
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove an entry",
		Example: `
loop remove 171dff69-f8b9-9dca
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := remove.Remove{
				ID:          args[0],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return out.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, out)

	topLevel.AddCommand(cmd)
}
