package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/domain"
)

// CSVFormatter emits one row per projected year.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(trajectory *domain.Trajectory) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"Year", "Age", "GrossIncome", "NetIncome", "FederalTax", "StateTax",
		"FICATax", "EffectiveRate", "TotalDebt", "TotalAssets", "NetWorth",
		"Obligations", "DebtPayments", "Contributions", "DiscretionaryIncome",
		"SavingsRate", "HomeEquity", "LTV", "PayingPMI",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, year := range trajectory.Years {
		row := []string{
			strconv.Itoa(year.Year),
			strconv.Itoa(year.Age),
			year.GrossIncome.StringFixed(2),
			year.NetIncome.StringFixed(2),
			year.FederalTax.StringFixed(2),
			year.StateTax.StringFixed(2),
			year.FICATax.StringFixed(2),
			year.EffectiveRate.StringFixed(4),
			year.TotalDebt.StringFixed(2),
			year.TotalAssets.StringFixed(2),
			year.NetWorth.StringFixed(2),
			year.Obligations.StringFixed(2),
			year.DebtPayments.StringFixed(2),
			year.Contributions.StringFixed(2),
			year.DiscretionaryIncome.StringFixed(2),
			year.SavingsRate.StringFixed(4),
			year.HomeEquity.StringFixed(2),
			year.LTV.StringFixed(4),
			strconv.FormatBool(year.PayingPMI),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
