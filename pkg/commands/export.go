package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/loop/pkg/commands/options"
	"tableflip.dev/loop/pkg/runner/export"
	"tableflip.dev/loop/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	eo := &options.ExportOptions{}
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal as CSV or page descriptors",
		Long: "Export the journal. CSV is one quoted row per entry; pages is " +
			"the JSON document model a PDF renderer consumes.",
		Example: `
loop export
loop export -f csv -o journal.csv
loop export -f pages -o journal.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := export.Export{
				Format:      eo.Format,
				Path:        eo.Path,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return out.HandleError(err)
		},
	}

	options.AddExportArgs(cmd, eo)
	options.AddOutputArg(cmd, out)

	topLevel.AddCommand(cmd)
}
