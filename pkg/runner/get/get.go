package get

import (
	"context"
	"errors"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

type Get struct {
	ShowID bool
	Table  bool
	On     *event.Date
	Store  *store.Store
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}

	all := n.Store.Events()
	all = n.filtered(all)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	if n.Table {
		pp.Table(all...)
		return nil
	}
	pp.Events(all...)
	return nil
}

func (n *Get) filtered(all []*event.Event) []*event.Event {
	if n.On == nil {
		return all
	}
	c := make([]*event.Event, 0, len(all))
	for _, a := range all {
		if a.Date.Equal(*n.On) {
			c = append(c, a)
		}
	}
	return c
}
