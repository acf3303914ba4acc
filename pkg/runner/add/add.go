package add

import (
	"context"
	"errors"

	"tableflip.dev/agenda/pkg/controller"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

type Add struct {
	Text     string
	On       *event.Date
	Hours    string
	Minutes  string
	Category string
	Priority string
	ShowID   bool

	Store *store.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}

	ctrl := controller.New(n.Store)
	date := ctrl.Today()
	if n.On != nil {
		date = *n.On
	}

	// Scheduling goes through the day-click transition so past dates
	// are refused the same way a calendar click would be.
	ctrl.ShowMonth(date.Year, date.Month)
	if err := ctrl.DayClick(date.Day); err != nil {
		return err
	}

	e, err := ctrl.SubmitEvent(controller.Form{
		Text:     n.Text,
		Hours:    n.Hours,
		Minutes:  n.Minutes,
		Category: n.Category,
		Priority: n.Priority,
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	day := make([]*event.Event, 0, 1)
	for _, stored := range ctrl.SortedEvents() {
		if stored.Date.Equal(e.Date) {
			day = append(day, stored)
		}
	}
	pp.Events(day...)

	return nil
}
