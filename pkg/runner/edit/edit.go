package edit

import (
	"context"
	"errors"

	"tableflip.dev/agenda/pkg/controller"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

// Edit replaces fields of an existing event. Unset fields keep their
// current values; --on moves the event to another date.
type Edit struct {
	ID       string
	Text     string
	On       *event.Date
	Hours    string
	Minutes  string
	Category string
	Priority string
	ShowID   bool

	Store *store.Store
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit, no store")
	}

	ctrl := controller.New(n.Store)
	if err := ctrl.EditEvent(n.ID); err != nil {
		return err
	}
	current := ctrl.View().Editing

	form := controller.Form{
		Text:     current.Text,
		Hours:    current.Time.Hours,
		Minutes:  current.Time.Minutes,
		Category: string(current.Category),
		Priority: string(current.Priority),
		Date:     n.On,
	}
	if n.Text != "" {
		form.Text = n.Text
	}
	if n.Hours != "" {
		form.Hours = n.Hours
	}
	if n.Minutes != "" {
		form.Minutes = n.Minutes
	}
	if n.Category != "" {
		form.Category = n.Category
	}
	if n.Priority != "" {
		form.Priority = n.Priority
	}

	e, err := ctrl.SubmitEvent(form)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Events(e)
	return nil
}
