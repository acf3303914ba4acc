package options

import (
	"time"

	"github.com/spf13/cobra"
)

const layoutMonth = "2006-1"

// MonthOptions
type MonthOptions struct {
	MonthString string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.MonthString, "month", "m", "",
		`Specify a month, example: --month="2026-2". Defaults to the current month.`)
}

func (o *MonthOptions) GetMonth() (int, time.Month, error) {
	if o.MonthString == "" {
		return 0, 0, nil
	}
	t, err := time.Parse(layoutMonth, o.MonthString)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}
