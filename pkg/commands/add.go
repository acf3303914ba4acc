package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/add"
	"tableflip.dev/agenda/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	eo := &options.EventOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add an event",
		Example: `
agenda add lunch with sam --at=12:30 --category=social
agenda add dentist --on=2026-9-14 --at=9:00 --priority=high
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires the event text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := on.GetOn()
			if err != nil {
				return err
			}
			s, err := store.Open(nil)
			if err != nil {
				return err
			}
			hours, minutes := eo.GetAt()
			a := add.Add{
				Text:     strings.Join(args, " "),
				On:       date,
				Hours:    hours,
				Minutes:  minutes,
				Category: eo.Category,
				Priority: eo.Priority,
				ShowID:   io.ShowID,
				Store:    s,
			}
			err = a.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddEventArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
