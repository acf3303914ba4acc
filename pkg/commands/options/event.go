package options

import (
	"strings"

	"github.com/spf13/cobra"
)

// EventOptions
type EventOptions struct {
	At       string
	Category string
	Priority string
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVar(&o.At, "at", "",
		`Specify a time of day, example: --at="14:30". Out-of-range values are clamped.`)
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"One of work, personal, family, health, social. Unknown values fall back to work.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"One of high, medium, low. Unknown values fall back to medium.")
}

// GetAt splits the --at value into hour and minute fields. Clamping and
// zero-padding happen downstream.
func (o *EventOptions) GetAt() (hours, minutes string) {
	if o.At == "" {
		return "", ""
	}
	h, m, _ := strings.Cut(o.At, ":")
	return h, m
}
