package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/loop/pkg/commands/options"
	"tableflip.dev/loop/pkg/runner/add"
	"tableflip.dev/loop/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add [note]",
		Short: "Add a journal entry",
		Example: `
loop add "walked the long way home" -m 😄
loop add "rough standup" -m 😰 -m 🤔 --on="2/28"
loop add "beach day" -m happy --photo=./beach.jpg
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				MoodTokens:   ao.Moods,
				Note:         strings.Join(args, " "),
				On:           on,
				PhotoPath:    ao.Photo,
				VoiceNoteRef: ao.Voice,
				LinkURL:      ao.Link,
				ShowID:       io.ShowID,
				Persistence:  p,
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
