package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/runner/ui"
	"tableflip.dev/agenda/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive calendar",
		Example: `
agenda ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(nil)
			if err != nil {
				return err
			}
			return ui.Run(s)
		},
	}

	topLevel.AddCommand(cmd)
}
