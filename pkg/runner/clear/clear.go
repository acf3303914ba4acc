package clear

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/controller"
	"tableflip.dev/agenda/pkg/store"
)

// Clear wipes the whole collection. Destructive and irreversible, so it
// refuses to run without explicit confirmation.
type Clear struct {
	Confirmed bool
	Store     *store.Store
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not clear, no store")
	}
	if !n.Confirmed {
		return errors.New("clearing deletes every event and cannot be undone, re-run with --yes")
	}

	count := n.Store.Len()
	controller.New(n.Store).ClearAll()
	fmt.Printf("cleared %d events\n", count)
	return nil
}
