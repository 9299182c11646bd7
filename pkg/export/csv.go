// Package export turns an entry snapshot into portable representations: CSV
// text and a render-agnostic document model. Both transformations are pure;
// writing the result anywhere is the caller's concern.
package export

import (
	"encoding/csv"
	"strings"

	"tableflip.dev/loop/pkg/entry"
)

// csvHeader is the fixed first row of every export.
var csvHeader = []string{"date", "moodEmojis", "note"}

// CSV renders the snapshot as CSV text: the fixed header, then one row per
// entry in the order given. Dates are RFC3339 in UTC, mood tokens are space
// joined, and notes with embedded quotes come out with the quotes doubled,
// so the text round-trips through any CSV reader.
func CSV(entries []*entry.Entry) string {
	var b strings.Builder
	w := csv.NewWriter(&b)

	_ = w.Write(csvHeader)
	for _, e := range entries {
		if e == nil {
			continue
		}
		_ = w.Write([]string{
			e.Date.String(),
			e.TokenString(),
			e.Note,
		})
	}
	w.Flush()
	return b.String()
}
