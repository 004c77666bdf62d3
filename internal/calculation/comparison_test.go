package calculation

import (
	"testing"

	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

// syntheticTrajectory builds a minimal trajectory for comparison unit tests
// without running the projection engine.
func syntheticTrajectory(startYear, startAge int, netWorths []int64, summary domain.TrajectorySummary) *domain.Trajectory {
	years := make([]domain.TrajectoryYear, len(netWorths))
	for i, nw := range netWorths {
		years[i] = domain.TrajectoryYear{
			Year:     startYear + i,
			Age:      startAge + i,
			NetWorth: decimal.NewFromInt(nw),
		}
	}
	return &domain.Trajectory{ID: "synthetic", Years: years, Summary: summary}
}

func TestCompareIdenticalTrajectories(t *testing.T) {
	engine := NewEngine()
	profile := testProfile()

	baseline, err := engine.GenerateTrajectory(profile)
	require.NoError(t, err)
	alternate, err := engine.GenerateTrajectory(profile)
	require.NoError(t, err)

	comparison, err := CompareTrajectories(baseline, alternate, nil, "no-op")
	require.NoError(t, err)

	for _, d := range comparison.YearDeltas {
		assert.True(t, d.NetWorthDelta.IsZero(), "year %d: %s", d.Year, d.NetWorthDelta)
		assert.True(t, d.IncomeDelta.IsZero())
		assert.True(t, d.DebtDelta.IsZero())
		assert.True(t, d.AssetsDelta.IsZero())
	}
	assert.Equal(t, domain.RetirementUnchanged, comparison.Summary.Retirement.Kind)
	assert.True(t, comparison.Summary.NetWorthAtEndDelta.IsZero())
	assert.True(t, comparison.Summary.LifetimeInterestDelta.IsZero())
	assert.True(t, comparison.Summary.WorkHoursDelta.IsZero())
	assert.Equal(t, "Minimal difference between scenarios", comparison.Summary.KeyInsight)
}

func TestCompareTrajectoriesValidation(t *testing.T) {
	valid := syntheticTrajectory(2025, 30, []int64{100, 200}, domain.TrajectorySummary{})

	t.Run("Nil trajectories", func(t *testing.T) {
		_, err := CompareTrajectories(nil, valid, nil, "")
		assert.Error(t, err)
		_, err = CompareTrajectories(valid, nil, nil, "")
		assert.Error(t, err)
	})

	t.Run("Empty years", func(t *testing.T) {
		empty := &domain.Trajectory{}
		_, err := CompareTrajectories(empty, valid, nil, "")
		assert.ErrorContains(t, err, "at least one year")
	})

	t.Run("Mismatched start year", func(t *testing.T) {
		other := syntheticTrajectory(2026, 30, []int64{100}, domain.TrajectorySummary{})
		_, err := CompareTrajectories(valid, other, nil, "")
		assert.ErrorContains(t, err, "starting year")
	})

	t.Run("Mismatched start age", func(t *testing.T) {
		other := syntheticTrajectory(2025, 31, []int64{100}, domain.TrajectorySummary{})
		_, err := CompareTrajectories(valid, other, nil, "")
		assert.ErrorContains(t, err, "starting age")
	})
}

func TestCompareOverlapsDifferingLengths(t *testing.T) {
	baseline := syntheticTrajectory(2025, 30, []int64{100, 200, 300}, domain.TrajectorySummary{})
	alternate := syntheticTrajectory(2025, 30, []int64{150, 260}, domain.TrajectorySummary{})

	comparison, err := CompareTrajectories(baseline, alternate, nil, "short")
	require.NoError(t, err)

	require.Len(t, comparison.YearDeltas, 2, "only the overlapping range is compared")
	assert.True(t, comparison.YearDeltas[0].NetWorthDelta.Equal(decimal.NewFromInt(50)))
	assert.True(t, comparison.YearDeltas[1].NetWorthDelta.Equal(decimal.NewFromInt(60)))
}

func TestRetirementShift(t *testing.T) {
	tests := []struct {
		name           string
		baseline       *int
		alternate      *int
		expectedKind   domain.RetirementShiftKind
		expectedMonths int
	}{
		{
			name:         "Neither retires",
			expectedKind: domain.RetirementUnchanged,
		},
		{
			name:         "Change enables retirement",
			alternate:    intPtr(2040),
			expectedKind: domain.RetirementEnabledByChange,
		},
		{
			name:         "Change disables retirement",
			baseline:     intPtr(2040),
			expectedKind: domain.RetirementDisabledByChange,
		},
		{
			name:           "Retires five years earlier",
			baseline:       intPtr(2040),
			alternate:      intPtr(2035),
			expectedKind:   domain.RetirementShifted,
			expectedMonths: 60,
		},
		{
			name:           "Retires two years later",
			baseline:       intPtr(2035),
			alternate:      intPtr(2037),
			expectedKind:   domain.RetirementShifted,
			expectedMonths: -24,
		},
		{
			name:         "Same year is unchanged",
			baseline:     intPtr(2040),
			alternate:    intPtr(2040),
			expectedKind: domain.RetirementUnchanged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shift := retirementShift(
				domain.TrajectorySummary{RetirementYear: tt.baseline},
				domain.TrajectorySummary{RetirementYear: tt.alternate},
			)
			assert.Equal(t, tt.expectedKind, shift.Kind)
			assert.Equal(t, tt.expectedMonths, shift.MonthsEarlier)
		})
	}
}

func TestGenerateKeyInsight(t *testing.T) {
	tests := []struct {
		name     string
		summary  domain.ComparisonSummary
		contains string
	}{
		{
			name: "Large net worth gain",
			summary: domain.ComparisonSummary{
				Retirement:         domain.RetirementShift{Kind: domain.RetirementUnchanged},
				NetWorthAtEndDelta: decimal.NewFromInt(250000),
			},
			contains: "adds $250K in final net worth",
		},
		{
			name: "Large net worth loss",
			summary: domain.ComparisonSummary{
				Retirement:         domain.RetirementShift{Kind: domain.RetirementUnchanged},
				NetWorthAtEndDelta: decimal.NewFromInt(-1500000),
			},
			contains: "costs $1.5M in final net worth",
		},
		{
			name: "Interest savings",
			summary: domain.ComparisonSummary{
				Retirement:            domain.RetirementShift{Kind: domain.RetirementUnchanged},
				LifetimeInterestDelta: decimal.NewFromInt(-42000),
			},
			contains: "saves $42K in interest",
		},
		{
			name: "Earlier retirement",
			summary: domain.ComparisonSummary{
				Retirement: domain.RetirementShift{Kind: domain.RetirementShifted, MonthsEarlier: 24},
			},
			contains: "retires 2 years earlier",
		},
		{
			name: "Later retirement",
			summary: domain.ComparisonSummary{
				Retirement: domain.RetirementShift{Kind: domain.RetirementShifted, MonthsEarlier: -6},
			},
			contains: "retires 6 months later",
		},
		{
			name: "Retirement made possible",
			summary: domain.ComparisonSummary{
				Retirement: domain.RetirementShift{Kind: domain.RetirementEnabledByChange},
			},
			contains: "makes retirement reachable",
		},
		{
			name: "Fewer work years",
			summary: domain.ComparisonSummary{
				Retirement:     domain.RetirementShift{Kind: domain.RetirementUnchanged},
				WorkHoursDelta: decimal.NewFromInt(-4160),
			},
			contains: "works 2 fewer years",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight := GenerateKeyInsight(tt.summary)
			assert.Contains(t, insight, tt.contains)
		})
	}

	t.Run("Nothing material", func(t *testing.T) {
		insight := GenerateKeyInsight(domain.ComparisonSummary{
			Retirement:         domain.RetirementShift{Kind: domain.RetirementUnchanged},
			NetWorthAtEndDelta: decimal.NewFromInt(500),
		})
		assert.Equal(t, "Minimal difference between scenarios", insight)
	})
}

func TestFindCrossoverYear(t *testing.T) {
	deltas := []domain.YearDelta{
		{Year: 2025, NetWorthDelta: decimal.NewFromInt(-10)},
		{Year: 2026, NetWorthDelta: decimal.NewFromInt(-5)},
		{Year: 2027, NetWorthDelta: decimal.NewFromInt(3)},
		{Year: 2028, NetWorthDelta: decimal.NewFromInt(8)},
	}
	year, ok := FindCrossoverYear(deltas)
	require.True(t, ok)
	assert.Equal(t, 2027, year)

	samesign := []domain.YearDelta{
		{Year: 2025, NetWorthDelta: decimal.NewFromInt(1)},
		{Year: 2026, NetWorthDelta: decimal.NewFromInt(2)},
	}
	_, ok = FindCrossoverYear(samesign)
	assert.False(t, ok)

	withZero := []domain.YearDelta{
		{Year: 2025, NetWorthDelta: decimal.NewFromInt(-1)},
		{Year: 2026, NetWorthDelta: decimal.Zero},
		{Year: 2027, NetWorthDelta: decimal.NewFromInt(-2)},
	}
	_, ok = FindCrossoverYear(withZero)
	assert.False(t, ok, "zero deltas are not sign changes")
}

func TestFindBreakEvenYear(t *testing.T) {
	deltas := []domain.YearDelta{
		{Year: 2025, NetWorthDelta: decimal.NewFromInt(-100)},
		{Year: 2026, NetWorthDelta: decimal.NewFromInt(-50)},
		{Year: 2027, NetWorthDelta: decimal.NewFromInt(60)},
		{Year: 2028, NetWorthDelta: decimal.NewFromInt(120)},
	}
	year, ok := FindBreakEvenYear(deltas)
	require.True(t, ok)
	assert.Equal(t, 2028, year, "cumulative sum first turns positive in 2028")

	sunk := []domain.YearDelta{
		{Year: 2025, NetWorthDelta: decimal.NewFromInt(-100)},
		{Year: 2026, NetWorthDelta: decimal.NewFromInt(50)},
	}
	_, ok = FindBreakEvenYear(sunk)
	assert.False(t, ok)
}

func TestFindMaxDivergenceYear(t *testing.T) {
	deltas := []domain.YearDelta{
		{Year: 2025, NetWorthDelta: decimal.NewFromInt(10)},
		{Year: 2026, NetWorthDelta: decimal.NewFromInt(-40)},
		{Year: 2027, NetWorthDelta: decimal.NewFromInt(25)},
	}
	max, ok := FindMaxDivergenceYear(deltas)
	require.True(t, ok)
	assert.Equal(t, 2026, max.Year, "largest by absolute value")

	_, ok = FindMaxDivergenceYear(nil)
	assert.False(t, ok)
}

func TestCalculateCumulativeImpact(t *testing.T) {
	deltas := []domain.YearDelta{
		{Year: 2025, NetWorthDelta: decimal.NewFromInt(10)},
		{Year: 2026, NetWorthDelta: decimal.NewFromInt(20)},
		{Year: 2027, NetWorthDelta: decimal.NewFromInt(30)},
	}
	total := CalculateCumulativeImpact(deltas, 2026, 2027)
	assert.True(t, total.Equal(decimal.NewFromInt(50)))

	outside := CalculateCumulativeImpact(deltas, 2030, 2035)
	assert.True(t, outside.IsZero())
}

// TestCompareScenarioEndToEnd runs two real projections through the full
// diff-compare pipeline.
func TestCompareScenarioEndToEnd(t *testing.T) {
	engine := NewEngine()
	baseProfile := testProfile()
	altProfile := testProfile()
	altProfile.Assets[0].MonthlyContribution = decimal.NewFromInt(1200)

	baseline, err := engine.GenerateTrajectory(baseProfile)
	require.NoError(t, err)
	alternate, err := engine.GenerateTrajectory(altProfile)
	require.NoError(t, err)

	changes := DiffProfiles(baseProfile, altProfile)
	require.Len(t, changes, 1)
	assert.Equal(t, domain.ChangeAssetContribution, changes[0].Kind)
	assert.Equal(t, "asset-1", changes[0].EntityID)

	comparison, err := CompareTrajectories(baseline, alternate, changes, "save more")
	require.NoError(t, err)

	assert.Equal(t, "save more", comparison.Name)
	require.Len(t, comparison.YearDeltas, 30)
	last := comparison.YearDeltas[len(comparison.YearDeltas)-1]
	assert.True(t, last.NetWorthDelta.GreaterThan(decimal.Zero),
		"an extra $400/month must raise final net worth, delta %s", last.NetWorthDelta)
	assert.True(t, comparison.Summary.NetWorthAtEndDelta.GreaterThan(decimal.Zero))
}

func TestDiffProfiles(t *testing.T) {
	t.Run("Identical profiles produce no changes", func(t *testing.T) {
		assert.Empty(t, DiffProfiles(testProfile(), testProfile()))
	})

	t.Run("Field changes are typed and described", func(t *testing.T) {
		baseline := testProfile()
		alternate := testProfile()
		alternate.Incomes[0].Amount = decimal.NewFromInt(100000)
		alternate.Debts[0].AnnualRate = decimal.NewFromFloat(0.03)
		alternate.Assumptions.MarketReturn = decimal.NewFromFloat(0.05)

		changes := DiffProfiles(baseline, alternate)
		require.Len(t, changes, 3)

		kinds := make(map[domain.ChangeKind]domain.Change)
		for _, c := range changes {
			kinds[c.Kind] = c
		}

		income, ok := kinds[domain.ChangeIncomeAmount]
		require.True(t, ok)
		assert.Equal(t, "income-1", income.EntityID)
		assert.True(t, income.OldValue.Equal(decimal.NewFromInt(90000)))
		assert.True(t, income.NewValue.Equal(decimal.NewFromInt(100000)))

		debt, ok := kinds[domain.ChangeDebtRate]
		require.True(t, ok)
		assert.Equal(t, "annual_rate", debt.Field)

		assumption, ok := kinds[domain.ChangeAssumption]
		require.True(t, ok)
		assert.Equal(t, "market_return", assumption.Field)
		assert.Empty(t, assumption.EntityID)
	})

	t.Run("Entities missing from the alternate are skipped", func(t *testing.T) {
		baseline := testProfile()
		alternate := testProfile()
		alternate.Debts = nil

		changes := DiffProfiles(baseline, alternate)
		assert.Empty(t, changes)
	})
}
