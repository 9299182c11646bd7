package edit

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/loop/pkg/entry"
	"tableflip.dev/loop/pkg/printers"
	"tableflip.dev/loop/pkg/store"
)

// Edit applies a partial patch to an existing entry. Only set fields are
// changed; the patch lands whole or not at all.
type Edit struct {
	ID         string
	MoodTokens *[]string
	Note       *string
	On         *time.Time
	LinkURL    *string

	ShowID      bool
	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}
	if n.ID == "" {
		return errors.New("can not edit, no id")
	}

	p := entry.Patch{
		Date:       n.On,
		MoodTokens: n.MoodTokens,
		Note:       n.Note,
		LinkURL:    n.LinkURL,
	}

	e, err := n.Persistence.Update(ctx, n.ID, p)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title(e.Date.Local().Format("January 2, 2006"))
	pp.Entries(e)

	return nil
}
