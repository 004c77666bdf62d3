package calculation

import (
	"testing"

	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAnnualBase(t *testing.T) {
	tests := []struct {
		name        string
		income      domain.Income
		expected    decimal.Decimal
		description string
	}{
		{
			name:        "Salary passes through",
			income:      domain.Income{Kind: domain.IncomeSalary, Amount: decimal.NewFromInt(80000)},
			expected:    decimal.NewFromInt(80000),
			description: "Salary amount is already annual",
		},
		{
			name: "Hourly annualizes",
			income: domain.Income{
				Kind:        domain.IncomeHourly,
				Amount:      decimal.NewFromInt(25),
				WeeklyHours: decimal.NewFromInt(40),
			},
			expected:    decimal.NewFromInt(52000),
			description: "$25/hr at 40 hours over 52 weeks",
		},
		{
			name:        "Hourly defaults to a 40 hour week",
			income:      domain.Income{Kind: domain.IncomeHourly, Amount: decimal.NewFromInt(25)},
			expected:    decimal.NewFromInt(52000),
			description: "Unset weekly hours default to 40",
		},
		{
			name: "Variable income is discounted",
			income: domain.Income{
				Kind:        domain.IncomeVariable,
				Amount:      decimal.NewFromInt(60000),
				Variability: decimal.NewFromFloat(0.4),
			},
			expected:    decimal.NewFromInt(48000),
			description: "60000 * (1 - 0.4/2)",
		},
		{
			name:        "Passive passes through",
			income:      domain.Income{Kind: domain.IncomePassive, Amount: decimal.NewFromInt(12000)},
			expected:    decimal.NewFromInt(12000),
			description: "Passive amount is already annual",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := AnnualBase(tt.income)
			assert.True(t, base.Equal(tt.expected),
				"%s: expected %s, got %s", tt.description, tt.expected, base)
		})
	}
}

func TestIncomeForYearGrowth(t *testing.T) {
	defaultGrowth := decimal.NewFromFloat(0.03)

	t.Run("Salary falls back to the profile growth rate", func(t *testing.T) {
		income := domain.Income{Kind: domain.IncomeSalary, Amount: decimal.NewFromInt(80000)}
		year1 := IncomeForYear(income, 1, 2025, defaultGrowth)
		assert.True(t, year1.Equal(decimal.NewFromInt(82400)),
			"expected 80000 * 1.03, got %s", year1)
	})

	t.Run("Explicit growth rate wins", func(t *testing.T) {
		income := domain.Income{
			Kind:       domain.IncomeSalary,
			Amount:     decimal.NewFromInt(80000),
			GrowthRate: decimal.NewFromFloat(0.05),
		}
		year1 := IncomeForYear(income, 1, 2025, defaultGrowth)
		assert.True(t, year1.Equal(decimal.NewFromInt(84000)))
	})

	t.Run("Passive income stays flat by default", func(t *testing.T) {
		income := domain.Income{Kind: domain.IncomePassive, Amount: decimal.NewFromInt(12000)}
		year5 := IncomeForYear(income, 5, 2025, defaultGrowth)
		assert.True(t, year5.Equal(decimal.NewFromInt(12000)),
			"profile salary growth must not leak into passive income, got %s", year5)
	})

	t.Run("Year zero is the base amount", func(t *testing.T) {
		income := domain.Income{Kind: domain.IncomeSalary, Amount: decimal.NewFromInt(80000)}
		year0 := IncomeForYear(income, 0, 2025, defaultGrowth)
		assert.True(t, year0.Equal(decimal.NewFromInt(80000)))
	})
}

func TestIncomeForYearEndDating(t *testing.T) {
	income := domain.Income{
		Kind:     domain.IncomeSalary,
		Amount:   decimal.NewFromInt(80000),
		EndYear:  2026,
		EndMonth: 6,
	}
	growth := decimal.NewFromFloat(0.03)

	full := IncomeForYear(income, 0, 2025, growth)
	assert.True(t, full.Equal(decimal.NewFromInt(80000)), "active all of 2025")

	partial := IncomeForYear(income, 1, 2025, growth)
	assert.True(t, partial.Equal(decimal.NewFromInt(41200)),
		"half of the grown 82400 in the end year, got %s", partial)

	after := IncomeForYear(income, 2, 2025, growth)
	assert.True(t, after.IsZero(), "nothing after the end year, got %s", after)

	// An end year with no end month runs through December.
	income.EndMonth = 0
	december := IncomeForYear(income, 1, 2025, growth)
	assert.True(t, december.Equal(decimal.NewFromInt(82400)),
		"unset end month keeps the full end year, got %s", december)
}

func TestWorkHoursForYear(t *testing.T) {
	tests := []struct {
		name     string
		income   domain.Income
		yearIdx  int
		expected decimal.Decimal
	}{
		{
			name:     "Salary defaults to 2080 hours",
			income:   domain.Income{Kind: domain.IncomeSalary, Amount: decimal.NewFromInt(80000)},
			expected: decimal.NewFromInt(2080),
		},
		{
			name: "Hourly uses configured hours",
			income: domain.Income{
				Kind:        domain.IncomeHourly,
				Amount:      decimal.NewFromInt(30),
				WeeklyHours: decimal.NewFromInt(30),
			},
			expected: decimal.NewFromInt(1560),
		},
		{
			name:     "Passive earns zero hours",
			income:   domain.Income{Kind: domain.IncomePassive, Amount: decimal.NewFromInt(12000)},
			expected: decimal.Zero,
		},
		{
			name:     "Variable without hours earns zero hours",
			income:   domain.Income{Kind: domain.IncomeVariable, Amount: decimal.NewFromInt(30000)},
			expected: decimal.Zero,
		},
		{
			name: "Ended income earns zero hours",
			income: domain.Income{
				Kind:    domain.IncomeSalary,
				Amount:  decimal.NewFromInt(80000),
				EndYear: 2025, EndMonth: 12,
			},
			yearIdx:  1,
			expected: decimal.Zero,
		},
		{
			name: "Half year prorates hours",
			income: domain.Income{
				Kind:    domain.IncomeSalary,
				Amount:  decimal.NewFromInt(80000),
				EndYear: 2025, EndMonth: 6,
			},
			expected: decimal.NewFromInt(1040),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours := WorkHoursForYear(tt.income, tt.yearIdx, 2025)
			assert.True(t, hours.Equal(tt.expected),
				"expected %s hours, got %s", tt.expected, hours)
		})
	}
}
