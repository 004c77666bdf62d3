package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestYearlyGrowth(t *testing.T) {
	t.Run("Zero return accumulates contributions only", func(t *testing.T) {
		result := YearlyGrowth(decimal.Zero, decimal.NewFromInt(100), decimal.Zero)
		assert.True(t, result.EndBalance.Equal(decimal.NewFromInt(1200)))
		assert.True(t, result.Growth.IsZero())
		assert.True(t, result.Contributions.Equal(decimal.NewFromInt(1200)))
	})

	t.Run("Monthly compounding at 12 percent", func(t *testing.T) {
		result := YearlyGrowth(decimal.Zero, decimal.NewFromInt(100), decimal.NewFromFloat(0.12))
		// Annuity-due at 1% per month: 100 * ((1.01^12 - 1) / 0.01) * 1.01.
		expected := decimal.NewFromFloat(1280.93)
		difference := result.EndBalance.Sub(expected).Abs()
		assert.True(t, difference.LessThan(decimal.NewFromFloat(0.10)),
			"expected about %s, got %s", expected, result.EndBalance)
		assert.True(t, result.Growth.GreaterThan(decimal.Zero))
	})

	t.Run("Growth plus contributions reconciles to the end balance", func(t *testing.T) {
		start := decimal.NewFromInt(50000)
		result := YearlyGrowth(start, decimal.NewFromInt(500), decimal.NewFromFloat(0.07))
		reconstructed := start.Add(result.Contributions).Add(result.Growth)
		assert.True(t, reconstructed.Equal(result.EndBalance))
	})

	t.Run("Balance floors at zero under extreme negative returns", func(t *testing.T) {
		result := YearlyGrowth(decimal.NewFromInt(100), decimal.Zero, decimal.NewFromInt(-24))
		assert.True(t, result.EndBalance.IsZero(),
			"balance must floor at zero, got %s", result.EndBalance)
	})

	t.Run("Empty account with no contributions stays empty", func(t *testing.T) {
		result := YearlyGrowth(decimal.Zero, decimal.Zero, decimal.NewFromFloat(0.07))
		assert.True(t, result.EndBalance.IsZero())
	})
}

func TestEmployerMatch(t *testing.T) {
	salary := decimal.NewFromInt(100000)
	halfMatch := decimal.NewFromFloat(0.5)
	sixPercent := decimal.NewFromFloat(0.06)

	tests := []struct {
		name         string
		contribution decimal.Decimal
		rate         decimal.Decimal
		limit        decimal.Decimal
		expected     decimal.Decimal
		description  string
	}{
		{
			name:         "Contribution at the match limit",
			contribution: decimal.NewFromInt(500),
			rate:         halfMatch,
			limit:        sixPercent,
			expected:     decimal.NewFromInt(3000),
			description:  "50% match on $6,000 of contributions",
		},
		{
			name:         "Contribution above the match limit",
			contribution: decimal.NewFromInt(1000),
			rate:         halfMatch,
			limit:        sixPercent,
			expected:     decimal.NewFromInt(3000),
			description:  "Match is capped at 6% of salary regardless of contributions",
		},
		{
			name:         "No match configured",
			contribution: decimal.NewFromInt(500),
			rate:         decimal.Zero,
			limit:        sixPercent,
			expected:     decimal.Zero,
			description:  "Zero match rate earns nothing",
		},
		{
			name:         "No contributions",
			contribution: decimal.Zero,
			rate:         halfMatch,
			limit:        sixPercent,
			expected:     decimal.Zero,
			description:  "Match requires employee contributions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := EmployerMatch(tt.contribution, salary, tt.rate, tt.limit)
			assert.True(t, match.Equal(tt.expected),
				"%s: expected %s, got %s", tt.description, tt.expected, match)
		})
	}
}

func TestFutureValue(t *testing.T) {
	fv := FutureValue(decimal.NewFromInt(1000), decimal.NewFromFloat(0.07), 10)
	expected := decimal.NewFromFloat(1967.15)
	difference := fv.Sub(expected).Abs()
	assert.True(t, difference.LessThan(decimal.NewFromFloat(0.01)),
		"expected %s, got %s", expected, fv.StringFixed(2))

	same := FutureValue(decimal.NewFromInt(1000), decimal.NewFromFloat(0.07), 0)
	assert.True(t, same.Equal(decimal.NewFromInt(1000)), "zero years is the identity")
}

// TestFutureValuePresentValueRoundTrip pins the inversion property across the
// full supported rate range out to 75 years.
func TestFutureValuePresentValueRoundTrip(t *testing.T) {
	value := decimal.NewFromFloat(123456.78)
	rates := []decimal.Decimal{
		decimal.NewFromFloat(-0.5),
		decimal.NewFromFloat(-0.25),
		decimal.Zero,
		decimal.NewFromFloat(0.07),
		decimal.NewFromFloat(0.5),
	}
	years := []int{0, 1, 10, 75}

	tolerance := decimal.NewFromInt(1)
	for _, rate := range rates {
		for _, n := range years {
			back := PresentValue(FutureValue(value, rate, n), rate, n)
			difference := back.Sub(value).Abs()
			assert.True(t, difference.LessThanOrEqual(tolerance),
				"rate %s over %d years: recovered %s from %s", rate, n, back, value)
		}
	}
}

func TestYearsToTarget(t *testing.T) {
	tests := []struct {
		name          string
		start         decimal.Decimal
		contribution  decimal.Decimal
		annualReturn  decimal.Decimal
		target        decimal.Decimal
		maxYears      int
		expectedYears int
		reached       bool
	}{
		{
			name:          "Already at target",
			start:         decimal.NewFromInt(5000),
			target:        decimal.NewFromInt(5000),
			maxYears:      10,
			expectedYears: 0,
			reached:       true,
		},
		{
			name:          "One year of flat contributions",
			contribution:  decimal.NewFromInt(100),
			target:        decimal.NewFromInt(1200),
			maxYears:      10,
			expectedYears: 1,
			reached:       true,
		},
		{
			name:     "Unreachable without contributions or growth",
			target:   decimal.NewFromInt(1000),
			maxYears: 10,
			reached:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years, ok := YearsToTarget(tt.start, tt.contribution, tt.annualReturn, tt.target, tt.maxYears)
			assert.Equal(t, tt.reached, ok)
			if tt.reached {
				assert.Equal(t, tt.expectedYears, years)
			}
		})
	}
}

func TestRequiredMonthlySavings(t *testing.T) {
	t.Run("Zero rate is a straight division", func(t *testing.T) {
		required := RequiredMonthlySavings(decimal.Zero, decimal.NewFromInt(12000), decimal.Zero, 1)
		assert.True(t, required.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("Starting balance already covers the target", func(t *testing.T) {
		required := RequiredMonthlySavings(decimal.NewFromInt(20000), decimal.NewFromInt(10000), decimal.NewFromFloat(0.05), 5)
		assert.True(t, required.IsZero(), "never negative, got %s", required)
	})

	t.Run("Annuity inversion at 6 percent", func(t *testing.T) {
		required := RequiredMonthlySavings(decimal.Zero, decimal.NewFromInt(100000), decimal.NewFromFloat(0.06), 10)
		// ((1.005^120 - 1) / 0.005) = 163.879; 100000 / 163.879.
		expected := decimal.NewFromFloat(610.21)
		difference := required.Sub(expected).Abs()
		assert.True(t, difference.LessThan(decimal.NewFromFloat(0.05)),
			"expected about %s, got %s", expected, required)
	})
}

func TestRetirementReadiness(t *testing.T) {
	income := decimal.NewFromInt(40000)
	fourPercent := decimal.NewFromFloat(0.04)

	t.Run("Exactly funded", func(t *testing.T) {
		r := RetirementReadiness(decimal.NewFromInt(1000000), income, fourPercent)
		assert.True(t, r.RequiredNestEgg.Equal(decimal.NewFromInt(1000000)))
		assert.True(t, r.IsReady)
		assert.True(t, r.PercentComplete.Equal(decimal.NewFromInt(1)))
	})

	t.Run("Halfway there", func(t *testing.T) {
		r := RetirementReadiness(decimal.NewFromInt(500000), income, fourPercent)
		assert.False(t, r.IsReady)
		assert.True(t, r.PercentComplete.Equal(decimal.NewFromFloat(0.5)))
	})

	t.Run("Zero withdrawal rate requires nothing", func(t *testing.T) {
		r := RetirementReadiness(decimal.NewFromInt(100), income, decimal.Zero)
		assert.True(t, r.RequiredNestEgg.IsZero())
		assert.True(t, r.IsReady)
		assert.True(t, r.PercentComplete.Equal(decimal.NewFromInt(1)))
	})
}
