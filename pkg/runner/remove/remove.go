package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/loop/pkg/store"
)

// Remove deletes an entry by id. Deleting is idempotent: an id that was
// never created, or was already removed, is not an error.
type Remove struct {
	ID          string
	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}
	if n.ID == "" {
		return errors.New("can not remove, no id")
	}

	if err := n.Persistence.Delete(ctx, n.ID); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", n.ID)
	return nil
}
