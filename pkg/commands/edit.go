package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/loop/pkg/commands/options"
	"tableflip.dev/loop/pkg/runner/edit"
	"tableflip.dev/loop/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	ao := &options.AddOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id> [note]",
		Short: "Edit an existing entry",
		Long: "Edit an existing entry. Only the fields you pass change; " +
			"everything else stays as it was.",
		Example: `
loop edit 171dff69-f8b9-9dca "actually a good day" -m 😄
loop edit 171dff69-f8b9-9dca --on="2026-2-27"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:          args[0],
				On:          on,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			if len(args) > 1 {
				note := strings.Join(args[1:], " ")
				s.Note = &note
			}
			if cmd.Flags().Changed("mood") {
				s.MoodTokens = &ao.Moods
			}
			if cmd.Flags().Changed("link") {
				s.LinkURL = &ao.Link
			}
			err = s.Do(context.Background())
			return out.HandleError(err)
		},
	}

	options.AddEntryArgs(cmd, ao)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, out)

	topLevel.AddCommand(cmd)
}
