package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/runner/export"
	"tableflip.dev/agenda/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all events to a JSON file",
		Example: `
agenda export
agenda export --out=backup.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(nil)
			if err != nil {
				return err
			}
			e := export.Export{
				Out:   out,
				Store: s,
			}
			err = e.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "",
		"Destination file or directory. Defaults to calendar_events_<date>.json here.")

	topLevel.AddCommand(cmd)
}
