package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/agenda/pkg/controller"
	"tableflip.dev/agenda/pkg/store"
)

type Remove struct {
	ID    string
	Store *store.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove, no store")
	}

	ctrl := controller.New(n.Store)
	if !ctrl.DeleteEvent(n.ID) {
		// Deleting a stale id is a no-op, not an error.
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("no event with id %s\n", n.ID)
		return nil
	}
	fmt.Printf("removed %s\n", n.ID)
	return nil
}
