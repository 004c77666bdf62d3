package calculation

import (
	"fmt"
	"strings"

	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/domain"
	"github.com/kase1111-hash/Financial-Path-Visualizer/pkg/moneyutil"
	"github.com/shopspring/decimal"
)

// Materiality thresholds for the key-insight sentence.
var (
	insightNetWorthFloor = decimal.NewFromInt(100_000)
	insightInterestFloor = decimal.NewFromInt(1_000)
	insightWorkYearHours = decimal.NewFromInt(2_080)
)

// CompareTrajectories aligns two trajectories by year and quantifies the
// lifetime impact of the changes between their profiles. Both trajectories
// must share a starting year and age; differing lengths compare only the
// overlapping range.
func CompareTrajectories(baseline, alternate *domain.Trajectory, changes []domain.Change, name string) (*domain.Comparison, error) {
	if baseline == nil || alternate == nil {
		return nil, fmt.Errorf("both baseline and alternate trajectories are required")
	}
	if len(baseline.Years) == 0 || len(alternate.Years) == 0 {
		return nil, fmt.Errorf("trajectories must contain at least one year")
	}
	if baseline.Years[0].Year != alternate.Years[0].Year {
		return nil, fmt.Errorf("trajectories must share a starting year: baseline %d, alternate %d",
			baseline.Years[0].Year, alternate.Years[0].Year)
	}
	if baseline.Years[0].Age != alternate.Years[0].Age {
		return nil, fmt.Errorf("trajectories must share a starting age: baseline %d, alternate %d",
			baseline.Years[0].Age, alternate.Years[0].Age)
	}

	overlap := len(baseline.Years)
	if len(alternate.Years) < overlap {
		overlap = len(alternate.Years)
	}

	deltas := make([]domain.YearDelta, overlap)
	for i := 0; i < overlap; i++ {
		b, alt := baseline.Years[i], alternate.Years[i]
		deltas[i] = domain.YearDelta{
			Year:          b.Year,
			NetWorthDelta: alt.NetWorth.Sub(b.NetWorth),
			IncomeDelta:   alt.GrossIncome.Sub(b.GrossIncome),
			DebtDelta:     alt.TotalDebt.Sub(b.TotalDebt),
			AssetsDelta:   alt.TotalAssets.Sub(b.TotalAssets),
		}
	}

	summary := domain.ComparisonSummary{
		Retirement:                retirementShift(baseline.Summary, alternate.Summary),
		LifetimeInterestDelta:     alternate.Summary.LifetimeInterest.Sub(baseline.Summary.LifetimeInterest),
		NetWorthAtRetirementDelta: alternate.Summary.NetWorthAtRetirement.Sub(baseline.Summary.NetWorthAtRetirement),
		NetWorthAtEndDelta:        alternate.Summary.NetWorthAtEnd.Sub(baseline.Summary.NetWorthAtEnd),
		WorkHoursDelta:            alternate.Summary.TotalWorkHours.Sub(baseline.Summary.TotalWorkHours),
	}
	summary.KeyInsight = GenerateKeyInsight(summary)

	return &domain.Comparison{
		Name:       name,
		Baseline:   baseline,
		Alternate:  alternate,
		Changes:    changes,
		YearDeltas: deltas,
		Summary:    summary,
	}, nil
}

// retirementShift derives the tri-state retirement comparison: a months delta
// only exists when both trajectories reach readiness; the enable/disable
// cases are distinct outcomes, not numeric sentinels.
func retirementShift(baseline, alternate domain.TrajectorySummary) domain.RetirementShift {
	switch {
	case baseline.RetirementYear == nil && alternate.RetirementYear == nil:
		return domain.RetirementShift{Kind: domain.RetirementUnchanged}
	case baseline.RetirementYear == nil:
		return domain.RetirementShift{Kind: domain.RetirementEnabledByChange}
	case alternate.RetirementYear == nil:
		return domain.RetirementShift{Kind: domain.RetirementDisabledByChange}
	}

	months := (*baseline.RetirementYear - *alternate.RetirementYear) * 12
	if months == 0 {
		return domain.RetirementShift{Kind: domain.RetirementUnchanged}
	}
	return domain.RetirementShift{Kind: domain.RetirementShifted, MonthsEarlier: months}
}

// GenerateKeyInsight composes a one-sentence summary from whichever deltas
// cross the materiality thresholds, falling back to a minimal-difference
// statement when none qualify.
func GenerateKeyInsight(summary domain.ComparisonSummary) string {
	var parts []string

	switch summary.Retirement.Kind {
	case domain.RetirementEnabledByChange:
		parts = append(parts, "makes retirement reachable")
	case domain.RetirementDisabledByChange:
		parts = append(parts, "puts retirement out of reach")
	case domain.RetirementShifted:
		months := summary.Retirement.MonthsEarlier
		if months > 0 {
			parts = append(parts, fmt.Sprintf("retires %s earlier", formatMonths(months)))
		} else {
			parts = append(parts, fmt.Sprintf("retires %s later", formatMonths(-months)))
		}
	}

	if summary.NetWorthAtEndDelta.Abs().GreaterThanOrEqual(insightNetWorthFloor) {
		direction := "adds"
		if summary.NetWorthAtEndDelta.IsNegative() {
			direction = "costs"
		}
		parts = append(parts, fmt.Sprintf("%s %s in final net worth", direction, moneyutil.FormatCompact(summary.NetWorthAtEndDelta.Abs())))
	}

	if summary.LifetimeInterestDelta.Abs().GreaterThanOrEqual(insightInterestFloor) {
		if summary.LifetimeInterestDelta.IsNegative() {
			parts = append(parts, fmt.Sprintf("saves %s in interest", moneyutil.FormatCompact(summary.LifetimeInterestDelta.Abs())))
		} else {
			parts = append(parts, fmt.Sprintf("pays %s more interest", moneyutil.FormatCompact(summary.LifetimeInterestDelta)))
		}
	}

	if summary.WorkHoursDelta.Abs().GreaterThanOrEqual(insightWorkYearHours) {
		years := summary.WorkHoursDelta.Abs().Div(insightWorkYearHours).Round(1)
		if summary.WorkHoursDelta.IsNegative() {
			parts = append(parts, fmt.Sprintf("works %s fewer years", years))
		} else {
			parts = append(parts, fmt.Sprintf("works %s more years", years))
		}
	}

	if len(parts) == 0 {
		return "Minimal difference between scenarios"
	}
	return "This change " + strings.Join(parts, ", ")
}

func formatMonths(months int) string {
	if months >= 12 && months%12 == 0 {
		years := months / 12
		if years == 1 {
			return "1 year"
		}
		return fmt.Sprintf("%d years", years)
	}
	if months == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", months)
}

// FindMaxDivergenceYear returns the year with the largest absolute net-worth
// delta, or false for an empty comparison.
func FindMaxDivergenceYear(deltas []domain.YearDelta) (domain.YearDelta, bool) {
	if len(deltas) == 0 {
		return domain.YearDelta{}, false
	}
	max := deltas[0]
	for _, d := range deltas[1:] {
		if d.NetWorthDelta.Abs().GreaterThan(max.NetWorthDelta.Abs()) {
			max = d
		}
	}
	return max, true
}

// FindCrossoverYear returns the first year whose net-worth delta changes sign
// relative to the previous year, or false when the trajectories never cross.
func FindCrossoverYear(deltas []domain.YearDelta) (int, bool) {
	for i := 1; i < len(deltas); i++ {
		prev, curr := deltas[i-1].NetWorthDelta, deltas[i].NetWorthDelta
		if prev.IsZero() || curr.IsZero() {
			continue
		}
		if prev.Sign() != curr.Sign() {
			return deltas[i].Year, true
		}
	}
	return 0, false
}

// FindBreakEvenYear returns the first year at which the cumulative net-worth
// delta turns positive. Useful for decisions with an up-front cost and a
// long-term benefit.
func FindBreakEvenYear(deltas []domain.YearDelta) (int, bool) {
	var cumulative decimal.Decimal
	for _, d := range deltas {
		cumulative = cumulative.Add(d.NetWorthDelta)
		if cumulative.IsPositive() {
			return d.Year, true
		}
	}
	return 0, false
}

// CalculateCumulativeImpact sums the net-worth deltas over [fromYear, toYear]
// inclusive.
func CalculateCumulativeImpact(deltas []domain.YearDelta, fromYear, toYear int) decimal.Decimal {
	var total decimal.Decimal
	for _, d := range deltas {
		if d.Year >= fromYear && d.Year <= toYear {
			total = total.Add(d.NetWorthDelta)
		}
	}
	return total
}
