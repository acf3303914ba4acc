package cal

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/agenda/pkg/controller"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

// Cal prints a month grid, current month unless --month is given, with
// the month's events listed below it.
type Cal struct {
	Year   int
	Month  time.Month
	ShowID bool
	Store  *store.Store
}

func (n *Cal) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not show calendar, no store")
	}

	ctrl := controller.New(n.Store)
	if n.Month != 0 {
		ctrl.ShowMonth(n.Year, n.Month)
	}
	view := ctrl.View()

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Month(view.Year, view.Month, ctrl.HasEventsOn, time.Now())

	month := make([]*event.Event, 0)
	for _, e := range ctrl.SortedEvents() {
		if e.Date.Year == view.Year && e.Date.Month == view.Month {
			month = append(month, e)
		}
	}
	pp.Events(month...)
	return nil
}
