package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-2-28" or --on="2/28".`)
}

func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.Parse(layoutISO, o.OnString)
	if err != nil {
		t, err = time.Parse(layoutISOShort, o.OnString)
		if err != nil {
			return nil, err
		}
		// Short form carries no year; journaling is about the recent past,
		// so resolve into the current year.
		t = t.AddDate(time.Now().Year(), 0, 0)
	}
	return &t, nil
}
