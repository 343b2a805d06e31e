// Package output provides utilities for formatting and exporting schedules.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/amortization"
	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/datetime"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// csvHeader is the column layout of the exported report.
var csvHeader = []string{"Period", "Date", "Payment", "Principal", "Interest", "Balance"}

// PrettyFormat writes a human-readable rather than machine-readable table,
// preceded by a summary of the loan.
func PrettyFormat(w io.Writer, schedule *amortization.Schedule) {
	p := message.NewPrinter(language.English)
	params := schedule.Parameters
	summary := schedule.Summary

	_, _ = p.Fprintf(w, "--- Loan summary ---\n")
	_, _ = p.Fprintf(w, "Principal:        $%.2f\n", params.Principal)
	_, _ = p.Fprintf(w, "Annual rate:      %.2f%%\n", params.AnnualInterestRate*100)
	_, _ = p.Fprintf(w, "Term:             %d years (%s)\n", params.TermYears, params.Frequency)
	if params.ExtraPayment > 0 {
		_, _ = p.Fprintf(w, "Extra payment:    $%.2f\n", params.ExtraPayment)
	}
	_, _ = p.Fprintf(w, "Payment amount:   $%.2f\n", summary.BasePayment)
	_, _ = p.Fprintf(w, "Total interest:   $%.2f\n", summary.TotalInterest)
	_, _ = p.Fprintf(w, "Total cost:       $%.2f\n", summary.TotalPaid)
	_, _ = p.Fprintf(w, "Payments:         %d\n", summary.PeriodCount)
	_, _ = p.Fprintf(w, "Payoff date:      %s\n", datetime.FormatDate(summary.PayoffDate))
	_, _ = fmt.Fprintf(w, "\n")

	_, _ = fmt.Fprintf(w, "Period | Date       | Payment       | Principal     | Interest      | Balance\n")
	_, _ = fmt.Fprintf(w, "______ | ____       | _______       | _________     | ________      | _______\n")
	for _, period := range schedule.Periods {
		_, _ = p.Fprintf(w, "%6d | %s | $%.2f | $%.2f | $%.2f | $%.2f\n",
			period.Index, datetime.FormatDate(period.Date),
			period.Payment, period.Principal, period.Interest, period.RemainingBalance)
	}
}

// CsvFormat writes the schedule in comma-separated value format with one row
// per period under a Period,Date,Payment,Principal,Interest,Balance header.
func CsvFormat(w io.Writer, schedule *amortization.Schedule) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, period := range schedule.Periods {
		record := []string{
			strconv.Itoa(period.Index),
			datetime.FormatDate(period.Date),
			fmt.Sprintf("%.2f", period.Payment),
			fmt.Sprintf("%.2f", period.Principal),
			fmt.Sprintf("%.2f", period.Interest),
			fmt.Sprintf("%.2f", period.RemainingBalance),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", period.Index, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// CsvString renders the schedule as a CSV document in memory.
func CsvString(schedule *amortization.Schedule) (string, error) {
	var builder strings.Builder
	if err := CsvFormat(&builder, schedule); err != nil {
		return "", err
	}
	return builder.String(), nil
}
