package options

import (
	"github.com/spf13/cobra"
)

// ExportOptions
type ExportOptions struct {
	Format string
	Path   string
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVarP(&o.Format, "format", "f", "csv",
		`Export format. One of "csv" or "pages".`)
	cmd.Flags().StringVarP(&o.Path, "output", "o", "",
		"Write to a file instead of stdout.")
}
