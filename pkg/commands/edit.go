package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/edit"
	"tableflip.dev/agenda/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	eo := &options.EventOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id> [text]",
		Short: "Edit an event by id, unset fields keep their values",
		Example: `
agenda edit 1757000000000 lunch moved to one --at=13:00
agenda edit 1757000000000 --on=2026-9-15
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires the event id")
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
			e := edit.Edit{
				ID:       args[0],
				Text:     strings.Join(args[1:], " "),
				On:       date,
				Hours:    hours,
				Minutes:  minutes,
				Category: eo.Category,
				Priority: eo.Priority,
				ShowID:   io.ShowID,
				Store:    s,
			}
			err = e.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddEventArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
