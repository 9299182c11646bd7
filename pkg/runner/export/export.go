package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	formats "tableflip.dev/loop/pkg/export"
	"tableflip.dev/loop/pkg/store"
)

const (
	FormatCSV   = "csv"
	FormatPages = "pages"
)

// Export serializes the journal snapshot to a portable format. The
// formatter itself is pure; this runner owns the I/O and surfaces any write
// failure to the caller untouched.
type Export struct {
	Format string
	Path   string
	Out    io.Writer

	Persistence store.Persistence
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	all, err := n.Persistence.List(ctx)
	if err != nil {
		return err
	}

	out := n.Out
	if out == nil {
		out = os.Stdout
	}
	if n.Path != "" {
		f, err := os.Create(n.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch n.Format {
	case FormatCSV, "":
		_, err = io.WriteString(out, formats.CSV(all))
		return err
	case FormatPages:
		doc := formats.NewDocument(all)
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unknown export format %q", n.Format)
	}
}
