package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/plouvier/facture/pkg/entity"
	"github.com/plouvier/facture/pkg/stats"
)

var (
	statsDay   int
	statsMonth int
	statsYear  int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show revenue statistics",
}

var statsDayCmd = &cobra.Command{
	Use:   "day",
	Short: "Revenue for one day",
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()
		day, month, year := statsPeriod()

		invoices, err := st.InvoicesByDay(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
		exitOnError(err)

		fmt.Printf("Get %d invoice%s for %s/%s/%d\n\n",
			len(invoices), plural(len(invoices)), entity.MonthOf(month), entity.DayOf(day), year)
		printStats(invoices)
	},
}

var statsMonthCmd = &cobra.Command{
	Use:   "month",
	Short: "Revenue for one month",
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()
		_, month, year := statsPeriod()

		invoices, err := st.InvoicesByMonth(year, time.Month(month))
		exitOnError(err)

		fmt.Printf("Get %d invoice%s for %s/%d\n\n",
			len(invoices), plural(len(invoices)), entity.MonthOf(month), year)
		printStats(invoices)
	},
}

var statsYearCmd = &cobra.Command{
	Use:   "year",
	Short: "Revenue for one year",
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()
		_, _, year := statsPeriod()

		invoices, err := st.InvoicesByYear(year)
		exitOnError(err)

		fmt.Printf("Get %d invoice%s for %d\n\n", len(invoices), plural(len(invoices)), year)
		printStats(invoices)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{statsDayCmd, statsMonthCmd, statsYearCmd} {
		cmd.Flags().IntVar(&statsYear, "year", 0, "year (default is the current year)")
	}
	for _, cmd := range []*cobra.Command{statsDayCmd, statsMonthCmd} {
		cmd.Flags().IntVar(&statsMonth, "month", 0, "month (default is the current month)")
	}
	statsDayCmd.Flags().IntVar(&statsDay, "day", 0, "day of month (default is today)")

	statsCmd.AddCommand(statsDayCmd)
	statsCmd.AddCommand(statsMonthCmd)
	statsCmd.AddCommand(statsYearCmd)
}

// statsPeriod fills unset period flags with today's components.
func statsPeriod() (day, month, year int) {
	now := time.Now()
	day, month, year = statsDay, statsMonth, statsYear
	if day == 0 {
		day = now.Day()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return day, month, year
}

func printStats(invoices []entity.Invoice) {
	for _, inv := range invoices {
		fmt.Println(inv)
	}

	summary := stats.Summarize(invoices)
	fmt.Printf("Total : %s €\n", summary.Total)
}
