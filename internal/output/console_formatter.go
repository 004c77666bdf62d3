package output

import (
	"bytes"
	"fmt"

	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/domain"
	"github.com/kase1111-hash/Financial-Path-Visualizer/pkg/moneyutil"
)

// ConsoleFormatter renders a compact human-readable summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "summary" }

func (c ConsoleFormatter) Format(trajectory *domain.Trajectory) ([]byte, error) {
	buf := &bytes.Buffer{}
	s := trajectory.Summary

	fmt.Fprintf(buf, "Projection: %d years\n", s.TotalYears)
	if s.RetirementYear != nil {
		fmt.Fprintf(buf, "Retirement ready: %d (age %d)\n", *s.RetirementYear, *s.RetirementAge)
		fmt.Fprintf(buf, "Net worth at retirement: %s\n", moneyutil.FormatUSD(s.NetWorthAtRetirement))
	} else {
		fmt.Fprintln(buf, "Retirement ready: not within projection")
	}
	fmt.Fprintf(buf, "Net worth at end: %s\n", moneyutil.FormatUSD(s.NetWorthAtEnd))
	fmt.Fprintf(buf, "Lifetime income: %s\n", moneyutil.FormatUSD(s.LifetimeIncome))
	fmt.Fprintf(buf, "Lifetime taxes: %s\n", moneyutil.FormatUSD(s.LifetimeTaxes))
	fmt.Fprintf(buf, "Lifetime interest: %s\n", moneyutil.FormatUSD(s.LifetimeInterest))
	fmt.Fprintf(buf, "Work hours: %s (avg %s/hr net)\n", s.TotalWorkHours.StringFixed(0), moneyutil.FormatUSD(s.AvgEffectiveHourly))
	if s.GoalsAchieved+s.GoalsMissed > 0 {
		fmt.Fprintf(buf, "Goals: %d achieved, %d missed\n", s.GoalsAchieved, s.GoalsMissed)
	}

	if len(trajectory.Milestones) > 0 {
		fmt.Fprintln(buf, "\nMilestones:")
		for _, m := range trajectory.Milestones {
			fmt.Fprintf(buf, "  %d  %s\n", m.Year, m.Description)
		}
	}

	return buf.Bytes(), nil
}

func (c ConsoleFormatter) FormatComparison(comparison *domain.Comparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	s := comparison.Summary

	fmt.Fprintf(buf, "Comparison: %s\n", comparison.Name)
	fmt.Fprintf(buf, "Key insight: %s\n\n", s.KeyInsight)

	switch s.Retirement.Kind {
	case domain.RetirementEnabledByChange:
		fmt.Fprintln(buf, "Retirement: newly reachable under the alternate scenario")
	case domain.RetirementDisabledByChange:
		fmt.Fprintln(buf, "Retirement: no longer reachable under the alternate scenario")
	case domain.RetirementShifted:
		fmt.Fprintf(buf, "Retirement: shifted %d months\n", s.Retirement.MonthsEarlier)
	default:
		fmt.Fprintln(buf, "Retirement: unchanged")
	}

	fmt.Fprintf(buf, "Lifetime interest delta: %s\n", moneyutil.FormatUSD(s.LifetimeInterestDelta))
	fmt.Fprintf(buf, "Net worth at retirement delta: %s\n", moneyutil.FormatUSD(s.NetWorthAtRetirementDelta))
	fmt.Fprintf(buf, "Net worth at end delta: %s\n", moneyutil.FormatUSD(s.NetWorthAtEndDelta))
	fmt.Fprintf(buf, "Work hours delta: %s\n", s.WorkHoursDelta.StringFixed(0))

	return buf.Bytes(), nil
}
