package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/cal"
	"tableflip.dev/agenda/pkg/store"
)

func addCal(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "cal",
		Short: "Print a month grid with its events",
		Example: `
agenda cal
agenda cal --month=2026-10
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := mo.GetMonth()
			if err != nil {
				return err
			}
			s, err := store.Open(nil)
			if err != nil {
				return err
			}
			c := cal.Cal{
				Year:   year,
				Month:  month,
				ShowID: io.ShowID,
				Store:  s,
			}
			err = c.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
