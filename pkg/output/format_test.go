package output

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/amortization"
	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/datetime"
)

func testSchedule(t *testing.T) *amortization.Schedule {
	t.Helper()
	schedule, err := amortization.ComputeSchedule(amortization.LoanParameters{
		Principal:          12000,
		AnnualInterestRate: 0.05,
		TermYears:          1,
		Frequency:          amortization.Monthly,
		StartDate:          datetime.MustParseTime(datetime.DateTimeLayout, "2025-01-01"),
	})
	if err != nil {
		t.Fatalf("ComputeSchedule() error = %v", err)
	}
	return schedule
}

func TestCsvFormat(t *testing.T) {
	schedule := testSchedule(t)

	csvText, err := CsvString(schedule)
	if err != nil {
		t.Fatalf("CsvString() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(csvText)).ReadAll()
	if err != nil {
		t.Fatalf("exported CSV failed to parse: %v", err)
	}

	if len(records) != schedule.Summary.PeriodCount+1 {
		t.Fatalf("CSV has %d rows, expected %d periods plus header", len(records), schedule.Summary.PeriodCount)
	}

	header := strings.Join(records[0], ",")
	if header != "Period,Date,Payment,Principal,Interest,Balance" {
		t.Errorf("unexpected header: %s", header)
	}

	firstRow := records[1]
	if firstRow[0] != "1" {
		t.Errorf("first period index = %s, expected 1", firstRow[0])
	}
	if firstRow[1] != "2025-01-01" {
		t.Errorf("first period date = %s, expected 2025-01-01", firstRow[1])
	}

	lastRow := records[len(records)-1]
	if lastRow[5] != "0.00" {
		t.Errorf("final balance column = %s, expected 0.00", lastRow[5])
	}
}

func TestPrettyFormat(t *testing.T) {
	schedule := testSchedule(t)

	var builder strings.Builder
	PrettyFormat(&builder, schedule)
	rendered := builder.String()

	for _, expected := range []string{
		"--- Loan summary ---",
		"Principal:        $12,000.00",
		"Annual rate:      5.00%",
		"Payments:         12",
		"Period | Date",
		"2025-12-01",
	} {
		if !strings.Contains(rendered, expected) {
			t.Errorf("pretty output missing %q", expected)
		}
	}

	lines := strings.Count(rendered, "\n")
	// Summary block, table header, and one line per period.
	if lines < schedule.Summary.PeriodCount+10 {
		t.Errorf("pretty output has %d lines, expected at least %d", lines, schedule.Summary.PeriodCount+10)
	}
}

func TestChartSeries(t *testing.T) {
	schedule := testSchedule(t)

	chart := ChartSeries(schedule)
	count := schedule.Summary.PeriodCount

	if len(chart.Labels) != count || len(chart.Dates) != count ||
		len(chart.Principal) != count || len(chart.Interest) != count ||
		len(chart.Balance) != count || len(chart.CumulativeInterest) != count {
		t.Fatalf("chart series lengths do not all equal period count %d", count)
	}

	if chart.Labels[0] != 1 || chart.Labels[count-1] != count {
		t.Errorf("labels run %d..%d, expected 1..%d", chart.Labels[0], chart.Labels[count-1], count)
	}
	if chart.Balance[count-1] != 0 {
		t.Errorf("final balance in series = %.2f, expected 0", chart.Balance[count-1])
	}
	if chart.PrincipalTotal != 12000 {
		t.Errorf("PrincipalTotal = %.2f, expected 12000", chart.PrincipalTotal)
	}
	if chart.InterestTotal != schedule.Summary.TotalInterest {
		t.Errorf("InterestTotal = %.2f, expected %.2f", chart.InterestTotal, schedule.Summary.TotalInterest)
	}
}
