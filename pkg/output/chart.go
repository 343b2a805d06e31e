package output

import (
	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/amortization"
	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/datetime"
	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/mathutil"
)

// ChartData holds the per-period series consumed by the chart renderer plus
// the principal-versus-interest totals for the composition pie chart.
type ChartData struct {
	Labels             []int     `json:"labels"`
	Dates              []string  `json:"dates"`
	Principal          []float64 `json:"principal"`
	Interest           []float64 `json:"interest"`
	Balance            []float64 `json:"balance"`
	CumulativeInterest []float64 `json:"cumulativeInterest"`
	PrincipalTotal     float64   `json:"principalTotal"`
	InterestTotal      float64   `json:"interestTotal"`
}

// ChartSeries flattens a schedule into the series the charts plot.
func ChartSeries(schedule *amortization.Schedule) ChartData {
	count := len(schedule.Periods)
	data := ChartData{
		Labels:             make([]int, count),
		Dates:              make([]string, count),
		Principal:          make([]float64, count),
		Interest:           make([]float64, count),
		Balance:            make([]float64, count),
		CumulativeInterest: make([]float64, count),
		PrincipalTotal:     mathutil.Round(schedule.Parameters.Principal),
		InterestTotal:      schedule.Summary.TotalInterest,
	}

	for i, period := range schedule.Periods {
		data.Labels[i] = period.Index
		data.Dates[i] = datetime.FormatDate(period.Date)
		data.Principal[i] = period.Principal
		data.Interest[i] = period.Interest
		data.Balance[i] = period.RemainingBalance
		data.CumulativeInterest[i] = period.CumulativeInterest
	}

	return data
}
