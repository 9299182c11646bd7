package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/loop/pkg/entry"
	"tableflip.dev/loop/pkg/printers"
	"tableflip.dev/loop/pkg/store"
)

// Get lists journal entries, newest first, optionally limited to a window
// of recent days or to a single id. With Watch set it stays running and
// re-lists whenever the store changes, until ctx is cancelled.
type Get struct {
	ShowID      bool
	ID          string
	Days        int
	Watch       bool
	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	fmt.Println("")

	pp := printers.PrettyPrint{ShowID: n.ShowID}

	if n.ID != "" {
		e, err := n.Persistence.Get(ctx, n.ID)
		if err != nil {
			return err
		}
		pp.Title(e.Date.Local().Format("January 2, 2006"))
		pp.Entries(e)
		return nil
	}

	if err := n.list(ctx, &pp); err != nil {
		return err
	}
	if !n.Watch {
		return nil
	}

	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	for range events {
		// Absorb the rest of the burst before redrawing.
		for len(events) > 0 {
			<-events
		}
		pp.NewLine()
		if err := n.list(ctx, &pp); err != nil {
			return err
		}
	}
	return nil
}

func (n *Get) list(ctx context.Context, pp *printers.PrettyPrint) error {
	all, err := n.Persistence.List(ctx)
	if err != nil {
		return err
	}
	all = n.filtered(all)

	pp.TitleWithCount("Journal", len(all))
	pp.Entries(all...)
	return nil
}

func (n *Get) filtered(all []*entry.Entry) []*entry.Entry {
	if n.Days <= 0 {
		return all
	}
	cutoff := time.Now().AddDate(0, 0, -n.Days)
	c := make([]*entry.Entry, 0, len(all))
	for _, e := range all {
		if e.Date.After(cutoff) {
			c = append(c, e)
		}
	}
	return c
}
