package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/get"
	"tableflip.dev/agenda/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	io := &options.IDOptions{}
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List events, sorted by date, priority, and time",
		Example: `
agenda get
agenda get --on=2026-9-14
agenda get --table --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := on.GetOn()
			if err != nil {
				return err
			}
			s, err := store.Open(nil)
			if err != nil {
				return err
			}
			g := get.Get{
				ShowID: io.ShowID,
				Table:  out.Table,
				On:     date,
				Store:  s,
			}
			err = g.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	options.AddTableArg(cmd, out)

	topLevel.AddCommand(cmd)
}
