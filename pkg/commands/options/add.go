package options

import (
	"github.com/spf13/cobra"
)

// AddOptions
type AddOptions struct {
	Moods []string
	Photo string
	Voice string
	Link  string
}

func AddEntryArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringSliceVarP(&o.Moods, "mood", "m", nil,
		"Mood tokens for the entry (emoji or words), up to three. First one is primary.")
	cmd.Flags().StringVar(&o.Photo, "photo", "",
		"Path to a photo to attach. The bytes are stored in the blob store.")
	cmd.Flags().StringVar(&o.Voice, "voice", "",
		"Reference to a recorded voice note.")
	cmd.Flags().StringVar(&o.Link, "link", "",
		"URL to attach to the entry.")
}
