package add

import (
	"context"
	"errors"
	"os"
	"time"

	"tableflip.dev/loop/pkg/entry"
	"tableflip.dev/loop/pkg/printers"
	"tableflip.dev/loop/pkg/store"
)

// Add captures a new journal entry. A photo path, when given, is read here
// (the CLI owns file access) and stored through the blob store; the entry
// keeps only the returned ref.
type Add struct {
	MoodTokens   []string
	Note         string
	On           *time.Time
	PhotoPath    string
	VoiceNoteRef string
	LinkURL      string

	ShowID      bool
	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	d := entry.Draft{
		Date:         n.On,
		MoodTokens:   n.MoodTokens,
		Note:         n.Note,
		VoiceNoteRef: n.VoiceNoteRef,
		LinkURL:      n.LinkURL,
	}

	if n.PhotoPath != "" {
		data, err := os.ReadFile(n.PhotoPath)
		if err != nil {
			return err
		}
		ref, err := n.Persistence.Blobs().Put(data)
		if err != nil {
			return err
		}
		d.PhotoRef = ref
	}

	e, err := n.Persistence.Create(ctx, d)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title(e.Date.Local().Format("January 2, 2006"))
	pp.Entries(e)

	return nil
}
